package ports

// IdleScheduler defers low-priority work to moments when no higher-priority
// work is pending. Environments without a native idle hook substitute a
// short fixed-delay timer.
//
//go:generate mockgen -source=idle.go -destination=mocks/mock_idle.go -package=mocks
type IdleScheduler interface {
	// Schedule queues fn for execution during the next idle window. fn runs
	// at most once. Schedule never blocks the caller.
	Schedule(fn func())
}
