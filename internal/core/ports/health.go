package ports

import "context"

// HealthChecker probes one dependency of the service (currently the cache store).
// Check returns a non-nil error when the dependency is unreachable.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
