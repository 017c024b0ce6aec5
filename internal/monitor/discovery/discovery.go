package discovery

import (
	"context"
	"errors"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/model"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// LabelProtocol marks the protocol a fleet pod serves (ftp, sftp, s3, ...).
const LabelProtocol = "fleetwatch/protocol"

type Discoverer interface {
	Discover(ctx context.Context) ([]model.ServerDescriptor, error)
}

type podDiscoverer struct {
	client        kubernetes.Interface
	namespace     string
	labelSelector string
	selfName      string
}

// Discover lists fleet pods by label selector and maps them to server
// descriptors. An unreachable platform API surfaces as
// ErrPlatformUnavailable; an empty fleet is a valid empty result. The
// monitor's own pod is excluded by name. Ordering follows the platform
// response and callers must not depend on it.
func (d *podDiscoverer) Discover(ctx context.Context) ([]model.ServerDescriptor, error) {
	if d.client == nil {
		return nil, fmt.Errorf("PodDiscoverer.Discover: %w", apperrors.NewPlatformError("build client", errors.New("no platform credentials")))
	}
	pods, err := d.client.CoreV1().Pods(d.namespace).List(ctx, metav1.ListOptions{LabelSelector: d.labelSelector})
	if err != nil {
		return nil, fmt.Errorf("PodDiscoverer.Discover: %w", apperrors.NewPlatformError("list pods", err))
	}

	descriptors := make([]model.ServerDescriptor, 0, len(pods.Items))
	for _, pod := range pods.Items {
		if pod.Name == d.selfName {
			continue
		}
		descriptors = append(descriptors, describePod(pod))
	}
	return descriptors, nil
}

func describePod(pod corev1.Pod) model.ServerDescriptor {
	protocol := pod.Labels[LabelProtocol]
	if protocol == "" {
		protocol = "unknown"
	}
	return model.ServerDescriptor{
		Name:           pod.Name,
		ProtocolKind:   protocol,
		Host:           pod.Status.PodIP,
		Port:           firstContainerPort(pod),
		LifecycleState: lifecycleState(pod),
	}
}

func firstContainerPort(pod corev1.Pod) int {
	for _, container := range pod.Spec.Containers {
		for _, port := range container.Ports {
			return int(port.ContainerPort)
		}
	}
	return 0
}

func lifecycleState(pod corev1.Pod) string {
	switch pod.Status.Phase {
	case corev1.PodRunning:
		for _, containerStatus := range pod.Status.ContainerStatuses {
			if !containerStatus.Ready {
				return model.LifecyclePending
			}
		}
		return model.LifecycleRunning
	case corev1.PodPending:
		return model.LifecyclePending
	case corev1.PodSucceeded:
		return model.LifecycleSucceeded
	case corev1.PodFailed:
		return model.LifecycleFailed
	default:
		return model.LifecycleUnknown
	}
}

func NewPodDiscoverer(client kubernetes.Interface, namespace string, labelSelector string, selfName string) Discoverer {
	return &podDiscoverer{
		client:        client,
		namespace:     namespace,
		labelSelector: labelSelector,
		selfName:      selfName,
	}
}
