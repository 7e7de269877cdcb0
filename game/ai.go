package game

import "math"

// SteerKind names the AI decision that produced an intent
type SteerKind int

const (
	SteerWander SteerKind = iota
	SteerChaseTeam
	SteerAvoidBot
	SteerAvoidPlayer
	SteerChaseBot
	SteerChaseFood
)

// SteerIntent is the desired movement for one bot this tick: a unit
// direction and a behavior speed factor on top of the bot's base speed.
type SteerIntent struct {
	Kind        SteerKind
	DX, DY      float64
	SpeedFactor float64
}

// BotBaseSpeed is the per-tick base speed for a bot of the given size.
// Bigger bots move slower, floored at 0.5.
func BotBaseSpeed(size float64) float64 {
	return math.Max(0.5, 1.5-(size-10)/100)
}

// DecideSteer evaluates the bot decision cascade fresh for this tick and
// returns the chosen intent. Priority is strict, first match wins:
// team chase, avoid larger bot, avoid larger player, chase smaller bot,
// chase food, wander. The only state carried between ticks is the bot's
// wander velocity, re-rolled with a small per-tick probability.
func DecideSteer(bot *Blob, w *World, playerShielded bool) SteerIntent {
	// 1. Team mode: hunt opposing smaller entities before anything else.
	if w.Mode == ModeTeam {
		if tx, ty, ok := nearestOpponent(bot, w); ok {
			dx, dy := Normalize(tx-bot.X, ty-bot.Y)
			return SteerIntent{Kind: SteerChaseTeam, DX: dx, DY: dy, SpeedFactor: ChaseSpeedFactor}
		}
	}

	// 2. Flee the nearest clearly larger bot.
	if threat, dsq := nearestBot(bot, w, AvoidRange, func(o *Blob) bool {
		return o.Size > bot.Size*AvoidSizeRatio
	}); threat != nil && dsq < AvoidTrigger*AvoidTrigger {
		dx, dy := Normalize(bot.X-threat.X, bot.Y-threat.Y)
		return SteerIntent{Kind: SteerAvoidBot, DX: dx, DY: dy, SpeedFactor: AvoidSpeedFactor}
	}

	// 3. Flee a clearly larger, unshielded player.
	p := w.Player
	if p != nil && !playerShielded && p.Size > bot.Size*AvoidSizeRatio &&
		DistSq(bot.X, bot.Y, p.X, p.Y) < AvoidPlayerRange*AvoidPlayerRange {
		dx, dy := Normalize(bot.X-p.X, bot.Y-p.Y)
		return SteerIntent{Kind: SteerAvoidPlayer, DX: dx, DY: dy, SpeedFactor: AvoidSpeedFactor}
	}

	// 4. Chase the nearest clearly smaller bot.
	if prey, dsq := nearestBot(bot, w, ChaseRange, func(o *Blob) bool {
		return o.Size < bot.Size*ChaseSizeRatio
	}); prey != nil && dsq < ChaseTrigger*ChaseTrigger {
		dx, dy := Normalize(prey.X-bot.X, prey.Y-bot.Y)
		return SteerIntent{Kind: SteerChaseBot, DX: dx, DY: dy, SpeedFactor: ChaseSpeedFactor}
	}

	// 5. Chase the nearest food in detection range.
	if f := nearestFood(bot, w, DetectionRange); f != nil {
		dx, dy := Normalize(f.X-bot.X, f.Y-bot.Y)
		return SteerIntent{Kind: SteerChaseFood, DX: dx, DY: dy, SpeedFactor: 1}
	}

	// 6. Wander on the stored velocity, occasionally re-rolled.
	if w.rng.Float64() < WanderRerollChance {
		bot.VX = w.rng.Float64()*2 - 1
		bot.VY = w.rng.Float64()*2 - 1
	}
	return SteerIntent{Kind: SteerWander, DX: bot.VX, DY: bot.VY, SpeedFactor: 1}
}

// nearestBot returns the nearest other bot within searchRange satisfying
// pred, with its squared distance. Ties keep the first-encountered bot so
// the scan is stable across ticks.
func nearestBot(bot *Blob, w *World, searchRange float64, pred func(*Blob) bool) (*Blob, float64) {
	var best *Blob
	bestSq := searchRange * searchRange
	for _, o := range w.Bots {
		if o.ID == bot.ID || !pred(o) {
			continue
		}
		if dsq := DistSq(bot.X, bot.Y, o.X, o.Y); dsq < bestSq {
			best = o
			bestSq = dsq
		}
	}
	return best, bestSq
}

// nearestFood returns the nearest food within searchRange, or nil
func nearestFood(bot *Blob, w *World, searchRange float64) *Food {
	var best *Food
	bestSq := searchRange * searchRange
	for _, f := range w.Food {
		if dsq := DistSq(bot.X, bot.Y, f.X, f.Y); dsq < bestSq {
			best = f
			bestSq = dsq
		}
	}
	return best
}

// nearestOpponent returns the position of the nearest strictly smaller
// opposing-team entity (bot or player) within ChaseTeamRange.
func nearestOpponent(bot *Blob, w *World) (float64, float64, bool) {
	var tx, ty float64
	found := false
	bestSq := ChaseTeamRange * ChaseTeamRange
	for _, o := range w.Bots {
		if o.ID == bot.ID || o.Team == bot.Team || o.Size >= bot.Size {
			continue
		}
		if dsq := DistSq(bot.X, bot.Y, o.X, o.Y); dsq < bestSq {
			tx, ty = o.X, o.Y
			bestSq = dsq
			found = true
		}
	}
	if p := w.Player; p != nil && p.Team != bot.Team && p.Size < bot.Size {
		if dsq := DistSq(bot.X, bot.Y, p.X, p.Y); dsq < bestSq {
			tx, ty = p.X, p.Y
			found = true
		}
	}
	return tx, ty, found
}

// MoveBot applies a steer intent, clamps the bot to world bounds and
// bounces the stored wander velocity off walls.
func MoveBot(bot *Blob, intent SteerIntent, w *World, elapsedFrac float64) {
	speed := BotBaseSpeed(bot.Size) * w.Mode.SpeedMultiplier(elapsedFrac) * intent.SpeedFactor
	bot.X += intent.DX * speed
	bot.Y += intent.DY * speed

	r := bot.Radius()
	if clamped := Clamp(bot.X, r, w.Config.WorldWidth-r); clamped != bot.X {
		bot.X = clamped
		bot.VX = -bot.VX
	}
	if clamped := Clamp(bot.Y, r, w.Config.WorldHeight-r); clamped != bot.Y {
		bot.Y = clamped
		bot.VY = -bot.VY
	}
}
