package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrPlatformUnavailable = errors.New("orchestration platform unavailable")
	ErrProbeTimeout        = errors.New("probe timed out")
	ErrProbeRefused        = errors.New("probe connection refused")
	ErrStoreUnavailable    = errors.New("metrics store unavailable")
	ErrAggregationSkipped  = errors.New("aggregation run skipped")
	ErrSnapshotNotReady    = errors.New("no status snapshot available yet")
	ErrServerNotFound      = errors.New("server not found")
	ErrNoSamples           = errors.New("no samples stored")
	ErrNoRollups           = errors.New("no rollups stored")
)

// PlatformError carries the platform API failure that made discovery skip
// a cycle. It matches ErrPlatformUnavailable under errors.Is.
type PlatformError struct {
	Op    string
	Cause error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform %s: %v", e.Op, e.Cause)
}

func (e *PlatformError) Unwrap() error {
	return e.Cause
}

func (e *PlatformError) Is(target error) bool {
	return target == ErrPlatformUnavailable
}

func NewPlatformError(op string, cause error) error {
	return &PlatformError{
		Op:    op,
		Cause: cause,
	}
}
