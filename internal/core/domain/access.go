package domain

import (
	"math"
	"time"
)

// decayDivisorDays controls how quickly access recency loses weight in the
// preload priority. With e as the decay base the effective half-life is just
// under five days.
const decayDivisorDays = 7.0

// AccessRecord tracks how often and how recently a route was visited. Count
// and LastAccess are monotonically non-decreasing for a given route.
type AccessRecord struct {
	Count      int64     `json:"count"`
	LastAccess time.Time `json:"lastAccess"`
}

// PriorityAt computes the preload priority of the record at the given
// instant: count weighted by an exponential decay of the days since the last
// access. A zero record has priority 0.
func (r AccessRecord) PriorityAt(now time.Time) float64 {
	if r.Count <= 0 {
		return 0
	}
	days := now.Sub(r.LastAccess).Hours() / 24
	if days < 0 {
		days = 0
	}
	return float64(r.Count) * math.Exp(-days/decayDivisorDays)
}
