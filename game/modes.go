package game

import "math"

// Mode selects the rule variant for a run. It is chosen before the run
// starts and immutable until the run ends.
type Mode int

const (
	ModeClassic Mode = iota
	ModeTimeAttack
	ModeBattleRoyale
	ModeTeam
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeTimeAttack:
		return "timeAttack"
	case ModeBattleRoyale:
		return "battleRoyale"
	case ModeTeam:
		return "team"
	default:
		return "classic"
	}
}

// ParseMode maps a mode name to a Mode. Unknown names fall back to
// classic rather than failing; this is a local interactive game.
func ParseMode(s string) Mode {
	switch s {
	case "timeAttack":
		return ModeTimeAttack
	case "battleRoyale":
		return ModeBattleRoyale
	case "team":
		return ModeTeam
	default:
		return ModeClassic
	}
}

// ReplacesBots reports whether eaten bots are replaced to hold the
// population constant. Battle royale is an elimination mode and never
// replaces.
func (m Mode) ReplacesBots() bool {
	return m != ModeBattleRoyale
}

// WanderScale scales the initial bot wander velocity per variant
func (m Mode) WanderScale() float64 {
	switch m {
	case ModeTimeAttack:
		return 1.2
	case ModeBattleRoyale:
		return BattleRoyaleSpeedFactor
	default:
		return 1.0
	}
}

// SpeedMultiplier returns the mode-wide bot speed multiplier.
// elapsedFrac is the elapsed fraction of the time-attack timer, zero in
// other modes; time-attack bots get linearly more aggressive as the
// timer runs down.
func (m Mode) SpeedMultiplier(elapsedFrac float64) float64 {
	switch m {
	case ModeTimeAttack:
		return 1 + elapsedFrac
	case ModeBattleRoyale:
		return BattleRoyaleSpeedFactor
	default:
		return 1.0
	}
}

// TimeAttackClock counts down whole real seconds while the run is active
// and unpaused. Reaching zero ends the run as a loss through the normal
// game-over path.
type TimeAttackClock struct {
	Remaining float64 // whole seconds left
	Duration  float64
	acc       float64
}

// NewTimeAttackClock creates a clock with the given duration in seconds
func NewTimeAttackClock(duration float64) *TimeAttackClock {
	if duration <= 0 {
		duration = TimeAttackDuration
	}
	return &TimeAttackClock{Remaining: duration, Duration: duration}
}

// Advance accumulates real unpaused time and decrements the countdown
// once per whole second. Returns true when the timer has expired.
func (c *TimeAttackClock) Advance(dt float64) bool {
	c.acc += dt
	for c.acc >= 1 && c.Remaining > 0 {
		c.acc--
		c.Remaining--
	}
	return c.Remaining <= 0
}

// ElapsedFrac returns the elapsed fraction of the countdown in [0, 1]
func (c *TimeAttackClock) ElapsedFrac() float64 {
	if c.Duration <= 0 {
		return 0
	}
	return Clamp(1-c.Remaining/c.Duration, 0, 1)
}

// SafeZone is the shrinking battle-royale circle. Entities outside it
// take continuous shrink damage instead of idle decay.
type SafeZone struct {
	CX, CY float64
	Radius float64
	Floor  float64
	Rate   float64 // units per second
}

// NewSafeZone creates a zone centered on the world, starting at half the
// smaller world dimension.
func NewSafeZone(cfg Config) *SafeZone {
	return &SafeZone{
		CX:     cfg.WorldWidth / 2,
		CY:     cfg.WorldHeight / 2,
		Radius: math.Min(cfg.WorldWidth, cfg.WorldHeight) / 2,
		Floor:  ZoneMinRadius,
		Rate:   ZoneShrinkRate,
	}
}

// Shrink advances the zone by dt seconds. The radius is monotonically
// non-increasing and never drops below the floor.
func (z *SafeZone) Shrink(dt float64) {
	z.Radius = math.Max(z.Floor, z.Radius-z.Rate*dt)
}

// Contains reports whether a point is inside the safe zone
func (z *SafeZone) Contains(x, y float64) bool {
	return DistSq(x, y, z.CX, z.CY) <= z.Radius*z.Radius
}
