package game

import (
	"errors"
	"image/color"
	"time"
)

// ProfileStore is the boundary to the long-lived player profile. The
// simulation core only reads flags and multipliers through the query
// methods and reports everything it changes as named delta events; it
// never touches persisted state directly.
type ProfileStore interface {
	// Read-only queries issued by the core
	IsUpgradeOwned(id string) bool
	IsPowerUpActive(id string) bool
	ActivePowerUps() []PowerUp
	LivesRemaining() int
	SelectedTeam() Team
	SelectedColor() color.RGBA

	// Delta events fired by the core
	OnScoreDelta(points int)
	OnChallengeProgress(kind string, amount int)
	OnRunEnded(finalScore int, won bool)
	OnLifeConsumed()

	// Power-up expiry bookkeeping driven by the scheduler's sweep timer
	SweepPowerUps(now time.Time) []string
	DeferPowerUps(d time.Duration)
}

// ErrInsufficientPoints is returned when a purchase costs more than the
// profile's point balance.
var ErrInsufficientPoints = errors.New("not enough points")

// ErrUnknownUpgrade is returned for a purchase of an id not in the catalog
var ErrUnknownUpgrade = errors.New("unknown upgrade")

// MemoryProfile is the in-process ProfileStore. Persistence lives outside
// this module; everything here is run-of-the-app state.
type MemoryProfile struct {
	Lives       int
	TotalPoints int
	GamesPlayed int
	HighScore   int
	LoginStreak int

	lastLoginDay  time.Time // truncated to local midnight
	owned         map[string]bool
	powerUps      *PowerUpSet
	Challenges    map[string]int
	team          Team
	cosmeticColor color.RGBA
}

// NewMemoryProfile returns a fresh profile with a full life pool
func NewMemoryProfile() *MemoryProfile {
	return &MemoryProfile{
		Lives:         MaxLives,
		owned:         make(map[string]bool),
		powerUps:      NewPowerUpSet(),
		Challenges:    make(map[string]int),
		team:          TeamRed,
		cosmeticColor: color.RGBA{R: 0, G: 200, B: 120, A: 255},
	}
}

// RecordLogin applies the daily bookkeeping for a login at now: lives
// reset to the full pool on the first login of a day, and the login
// streak advances when the previous login was exactly one calendar day
// earlier. A streak of n credits min(n*5, 50) points, once per day; any
// other gap resets the streak to 1.
func (m *MemoryProfile) RecordLogin(now time.Time) {
	today := midnight(now)
	if m.lastLoginDay.Equal(today) {
		return // already logged in today
	}
	m.Lives = MaxLives
	if !m.lastLoginDay.IsZero() && m.lastLoginDay.AddDate(0, 0, 1).Equal(today) {
		m.LoginStreak++
	} else {
		m.LoginStreak = 1
	}
	bonus := m.LoginStreak * StreakPointStep
	if bonus > StreakPointCap {
		bonus = StreakPointCap
	}
	m.TotalPoints += bonus
	m.lastLoginDay = today
}

func midnight(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

// SetTeam selects the player's side for team mode
func (m *MemoryProfile) SetTeam(t Team) { m.team = t }

// SetColor selects the player's cosmetic color
func (m *MemoryProfile) SetColor(c color.RGBA) { m.cosmeticColor = c }

// Purchase buys an upgrade from the catalog, deducting its price from the
// point balance. Permanent upgrades are idempotent; buying a consumable
// that is already active refreshes its expiry rather than stacking.
func (m *MemoryProfile) Purchase(id string, now time.Time) error {
	u, ok := FindUpgrade(id)
	if !ok {
		return ErrUnknownUpgrade
	}
	if u.Kind == UpgradePermanent && m.owned[id] {
		return nil // monotone: already owned
	}
	if m.TotalPoints < u.Price {
		return ErrInsufficientPoints
	}
	m.TotalPoints -= u.Price
	switch u.Kind {
	case UpgradePermanent:
		m.owned[id] = true
	case UpgradeConsumable:
		m.powerUps.Activate(u.ID, u.Name, u.Duration, now)
	case UpgradeUtility:
		if u.ID == UpgradeLifeRefill {
			m.Lives = MaxLives
		}
	}
	return nil
}

// IsUpgradeOwned reports whether a permanent upgrade is owned
func (m *MemoryProfile) IsUpgradeOwned(id string) bool { return m.owned[id] }

// IsPowerUpActive reports whether the power-up with the given id is live
func (m *MemoryProfile) IsPowerUpActive(id string) bool { return m.powerUps.IsActive(id) }

// ActivePowerUps returns the live power-ups sorted by id
func (m *MemoryProfile) ActivePowerUps() []PowerUp { return m.powerUps.Snapshot() }

// LivesRemaining returns the current life pool
func (m *MemoryProfile) LivesRemaining() int { return m.Lives }

// SelectedTeam returns the player's chosen side
func (m *MemoryProfile) SelectedTeam() Team { return m.team }

// SelectedColor returns the player's cosmetic color
func (m *MemoryProfile) SelectedColor() color.RGBA { return m.cosmeticColor }

// OnScoreDelta folds earned run points into the cumulative total
func (m *MemoryProfile) OnScoreDelta(points int) {
	m.TotalPoints += points
}

// OnChallengeProgress accumulates challenge counters by kind
func (m *MemoryProfile) OnChallengeProgress(kind string, amount int) {
	m.Challenges[kind] += amount
}

// OnRunEnded records the end of a run for stats. Wins and losses count
// identically here; only the life pool treats them differently.
func (m *MemoryProfile) OnRunEnded(finalScore int, won bool) {
	m.GamesPlayed++
	if finalScore > m.HighScore {
		m.HighScore = finalScore
	}
}

// OnLifeConsumed decrements the life pool, never below zero
func (m *MemoryProfile) OnLifeConsumed() {
	if m.Lives > 0 {
		m.Lives--
	}
}

// SweepPowerUps removes expired power-ups
func (m *MemoryProfile) SweepPowerUps(now time.Time) []string {
	return m.powerUps.Sweep(now)
}

// DeferPowerUps shifts power-up expiries after a pause
func (m *MemoryProfile) DeferPowerUps(d time.Duration) {
	m.powerUps.Defer(d)
}
