package probe

import (
	"context"
	"errors"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/model"
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"
)

const defaultTimeout = 5 * time.Second

type Prober interface {
	Probe(ctx context.Context, servers []model.ServerDescriptor) []model.ProbeResult
}

type tcpProber struct {
	timeout time.Duration
}

// Probe checks every server concurrently and always returns one result per
// descriptor. A slow or dead server costs at most the probe timeout and
// never stalls the other probes. Failures are folded into the result,
// never returned as errors.
func (p *tcpProber) Probe(ctx context.Context, servers []model.ServerDescriptor) []model.ProbeResult {
	results := make([]model.ProbeResult, len(servers))
	var wg sync.WaitGroup
	for i, server := range servers {
		wg.Add(1)
		go func(i int, server model.ServerDescriptor) {
			defer wg.Done()
			results[i] = p.probeOne(ctx, server)
		}(i, server)
	}
	wg.Wait()
	return results
}

// probeOne measures wall-clock time to establish TCP connectivity. No
// protocol handshake is attempted on the open connection.
func (p *tcpProber) probeOne(ctx context.Context, server model.ServerDescriptor) model.ProbeResult {
	address := net.JoinHostPort(server.Host, strconv.Itoa(server.Port))
	dialer := &net.Dialer{
		Timeout: p.timeout,
	}

	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return model.ProbeResult{
			ServerName:  server.Name,
			IsReachable: false,
			Message:     classifyDialError(err),
		}
	}
	defer conn.Close()

	latency := time.Since(start).Milliseconds()
	return model.ProbeResult{
		ServerName:    server.Name,
		IsReachable:   true,
		LatencyMillis: &latency,
	}
}

func classifyDialError(err error) string {
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return apperrors.ErrProbeRefused.Error()
	case os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded):
		return apperrors.ErrProbeTimeout.Error()
	default:
		return fmt.Sprintf("connection failed: %v", err)
	}
}

func NewTCPProber(timeout time.Duration) Prober {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &tcpProber{
		timeout: timeout,
	}
}
