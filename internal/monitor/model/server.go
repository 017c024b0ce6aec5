package model

const (
	LifecycleRunning   = "running"
	LifecyclePending   = "pending"
	LifecycleSucceeded = "succeeded"
	LifecycleFailed    = "failed"
	LifecycleUnknown   = "unknown"
)

// ServerDescriptor is built fresh from the platform on every discovery
// pass and is never persisted.
type ServerDescriptor struct {
	Name           string
	ProtocolKind   string
	Host           string
	Port           int
	LifecycleState string
}
