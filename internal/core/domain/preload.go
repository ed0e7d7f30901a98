package domain

// Preload priority tiers for routes that have no usage history yet.
// Usage-derived priorities grow with visit counts, so they dominate both
// tiers once a route has been visited even a handful of times.
const (
	// PriorityPermissionSeed is the flat priority for routes enqueued just
	// because the current user may access them.
	PriorityPermissionSeed = 1.0
	// PriorityRelated is the priority for routes enqueued because they are
	// commonly visited together with the current one.
	PriorityRelated = 2.0
)

// PreloadEntry is a queued preload candidate.
type PreloadEntry struct {
	Path     string
	Priority float64
}
