package game

import "errors"

// SessionState is the life-cycle state of one run
type SessionState int

const (
	StateNotStarted SessionState = iota
	StateActive
	StatePaused
	StateEnded
)

// String returns the state name
func (s SessionState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "not-started"
	}
}

// ErrNoLives is returned when a restart is attempted with an empty life pool
var ErrNoLives = errors.New("no lives remaining")

// ErrNotEnded is returned when a restart is attempted mid-run
var ErrNotEnded = errors.New("run has not ended")

// Session wraps one play-through: the NotStarted → Active ⇄ Paused →
// Ended state machine, the run-local score, and the single-use auto
// revive. All profile mutations go out as delta events on the store.
type Session struct {
	State    SessionState
	Profile  ProfileStore
	RunScore int
	Won      bool

	reviveUsed bool
}

// NewSession creates a session bound to a profile store
func NewSession(profile ProfileStore) *Session {
	return &Session{State: StateNotStarted, Profile: profile}
}

// Start moves NotStarted to Active
func (s *Session) Start() {
	if s.State == StateNotStarted {
		s.State = StateActive
	}
}

// Pause suspends an active run
func (s *Session) Pause() {
	if s.State == StateActive {
		s.State = StatePaused
	}
}

// Resume reactivates a paused run
func (s *Session) Resume() {
	if s.State == StatePaused {
		s.State = StateActive
	}
}

// AddPoints credits run points and reports the delta to the profile
func (s *Session) AddPoints(points int) {
	if points <= 0 {
		return
	}
	s.RunScore += points
	s.Profile.OnScoreDelta(points)
}

// HandlePlayerDeath resolves the player being consumed. With the auto
// revive upgrade owned and unused this run, the death is absorbed: the
// run stays active and no life is consumed. Revive is single use per
// run; it re-arms on restart. Returns true when the run continues.
func (s *Session) HandlePlayerDeath() bool {
	if !s.reviveUsed && s.Profile.IsUpgradeOwned(UpgradeAutoRevive) {
		s.reviveUsed = true
		return true
	}
	s.EndRun(false)
	return false
}

// EndRun finishes the run. The final score is the run score multiplied by
// the permanent point multiplier, folded into the profile's totals and
// high score. A loss consumes one life (a no-op on an empty pool); a win
// never does.
func (s *Session) EndRun(won bool) {
	if s.State == StateEnded {
		return
	}
	s.State = StateEnded
	s.Won = won
	final := s.RunScore * pointMultiplier(s.Profile)
	s.Profile.OnRunEnded(final, won)
	if !won {
		s.Profile.OnLifeConsumed()
	}
}

// Restart arms the session for a fresh run. Only permitted from Ended and
// with a nonzero life pool; the caller rebuilds the World.
func (s *Session) Restart() error {
	if s.State != StateEnded {
		return ErrNotEnded
	}
	if s.Profile.LivesRemaining() <= 0 {
		return ErrNoLives
	}
	s.State = StateActive
	s.RunScore = 0
	s.Won = false
	s.reviveUsed = false
	return nil
}

func pointMultiplier(p ProfileStore) int {
	if p.IsUpgradeOwned(UpgradePointMultiplier) {
		return 2
	}
	return 1
}

// Modifiers assembles the player's collision modifiers for this tick
func (s *Session) Modifiers() PlayerModifiers {
	mods := PlayerModifiers{
		InstantKill:  s.Profile.IsUpgradeOwned(UpgradeInstantKill),
		Shielded:     s.Profile.IsPowerUpActive(PowerUpShield),
		PointMult:    pointMultiplier(s.Profile),
		DoublePoints: 1,
	}
	if s.Profile.IsPowerUpActive(PowerUpDoublePoints) {
		mods.DoublePoints = 2
	}
	return mods
}
