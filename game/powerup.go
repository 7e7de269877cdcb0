package game

import (
	"sort"
	"time"
)

// PowerUp is a timed, non-stacking gameplay effect with an absolute
// expiry timestamp.
type PowerUp struct {
	ID        string
	Name      string
	ExpiresAt time.Time
}

// PowerUpSet holds the currently active power-ups, at most one instance
// per id. Expired entries are removed by Sweep, which the scheduler polls
// on a fixed real-time interval independent of the simulation tick.
type PowerUpSet struct {
	active map[string]PowerUp
}

// NewPowerUpSet returns an empty set
func NewPowerUpSet() *PowerUpSet {
	return &PowerUpSet{active: make(map[string]PowerUp)}
}

// Activate starts the power-up, or refreshes its expiry to now+duration
// if one with the same id is already active. Never stacks.
func (s *PowerUpSet) Activate(id, name string, duration time.Duration, now time.Time) {
	s.active[id] = PowerUp{ID: id, Name: name, ExpiresAt: now.Add(duration)}
}

// IsActive reports whether a power-up with the given id is live
func (s *PowerUpSet) IsActive(id string) bool {
	_, ok := s.active[id]
	return ok
}

// Sweep removes entries whose expiry has passed and returns their ids
func (s *PowerUpSet) Sweep(now time.Time) []string {
	var expired []string
	for id, p := range s.active {
		if !p.ExpiresAt.After(now) {
			expired = append(expired, id)
			delete(s.active, id)
		}
	}
	sort.Strings(expired)
	return expired
}

// Defer shifts every expiry forward by d. Called on resume so paused
// wall-clock time does not burn power-up duration.
func (s *PowerUpSet) Defer(d time.Duration) {
	for id, p := range s.active {
		p.ExpiresAt = p.ExpiresAt.Add(d)
		s.active[id] = p
	}
}

// Snapshot returns the active power-ups sorted by id for stable display
func (s *PowerUpSet) Snapshot() []PowerUp {
	out := make([]PowerUp, 0, len(s.active))
	for _, p := range s.active {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
