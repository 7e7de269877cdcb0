package game

import "math"

// ConsumedSet tracks entity ids consumed during one resolver stage of one
// tick. Each stage uses its own set so a single entity can neither be
// eaten twice nor eat while being eaten within the same tick.
type ConsumedSet map[int]struct{}

// NewConsumedSet returns an empty set
func NewConsumedSet() ConsumedSet {
	return make(ConsumedSet)
}

// Has reports whether id was already consumed this stage
func (s ConsumedSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Add marks id as consumed
func (s ConsumedSet) Add(id int) {
	s[id] = struct{}{}
}

// PlayerModifiers captures the upgrade and power-up flags the resolver
// reads for the player this tick.
type PlayerModifiers struct {
	InstantKill  bool // bypass the size-comparison rule entirely
	Shielded     bool // cannot be consumed
	PointMult    int  // 2 with the permanent point-multiplier upgrade, else 1
	DoublePoints int  // 2 while the double-points power-up is active, else 1
}

// CanConsume is the strict consumption rule: the strictly larger blob
// eats the strictly smaller one. Equal sizes never consume each other.
func CanConsume(predatorSize, preySize float64) bool {
	return predatorSize > preySize
}

// ResolvePlayerFood removes food the player overlaps and grows the player
// by a fixed increment per item. Returns the number eaten.
func ResolvePlayerFood(w *World) int {
	p := w.Player
	eaten := 0
	for i := 0; i < len(w.Food); {
		f := w.Food[i]
		if p.Overlaps(f.X, f.Y, f.Size) {
			w.RemoveFoodAt(i)
			p.Grow(PlayerFoodGrowth)
			eaten++
			continue
		}
		i++
	}
	return eaten
}

// ResolveBotFood removes food each bot overlaps, growing that bot by a
// smaller fixed increment than the player's.
func ResolveBotFood(w *World) int {
	eaten := 0
	for _, b := range w.Bots {
		for i := 0; i < len(w.Food); {
			f := w.Food[i]
			if b.Overlaps(f.X, f.Y, f.Size) {
				w.RemoveFoodAt(i)
				b.Grow(BotFoodGrowth)
				eaten++
				continue
			}
			i++
		}
	}
	return eaten
}

// ResolveBotBot resolves bot-versus-bot consumption. A bot consumed this
// stage is skipped as both predator and prey. The predator gains 10% of
// the victim's size. Victims are removed and, when the mode replaces
// bots, respawned one-for-one. Returns the number of bots eaten.
func ResolveBotBot(w *World) int {
	consumed := NewConsumedSet()
	for _, a := range w.Bots {
		if consumed.Has(a.ID) {
			continue
		}
		for _, b := range w.Bots {
			if a.ID == b.ID || consumed.Has(a.ID) || consumed.Has(b.ID) {
				continue
			}
			if !a.Overlaps(b.X, b.Y, b.Size) {
				continue
			}
			switch {
			case CanConsume(a.Size, b.Size):
				a.Grow(b.Size * KillGrowthRatio)
				consumed.Add(b.ID)
			case CanConsume(b.Size, a.Size):
				b.Grow(a.Size * KillGrowthRatio)
				consumed.Add(a.ID)
			}
		}
	}
	for id := range consumed {
		w.RemoveBot(id)
	}
	if w.Mode.ReplacesBots() {
		w.SpawnBots(len(consumed), w.Mode)
	}
	return len(consumed)
}

// PlayerBotResult is the outcome of the player-versus-bot stage
type PlayerBotResult struct {
	Points     int
	BotsEaten  int
	PlayerDied bool
}

// ResolvePlayerBot resolves overlaps between the player and every bot.
// The player eats strictly smaller bots (or any overlapping bot with the
// instant-kill upgrade), gaining 10% of the victim's size and scoring
// floor(victimSize/2) times the active multipliers. A strictly larger
// bot consumes an unshielded player.
func ResolvePlayerBot(w *World, mods PlayerModifiers) PlayerBotResult {
	p := w.Player
	consumed := NewConsumedSet()
	res := PlayerBotResult{}
	for _, b := range w.Bots {
		if res.PlayerDied {
			break
		}
		if consumed.Has(b.ID) || !p.Overlaps(b.X, b.Y, b.Size) {
			continue
		}
		if mods.InstantKill || CanConsume(p.Size, b.Size) {
			p.Grow(b.Size * KillGrowthRatio)
			res.Points += int(math.Floor(b.Size/2)) * mods.PointMult * mods.DoublePoints
			res.BotsEaten++
			consumed.Add(b.ID)
			continue
		}
		if CanConsume(b.Size, p.Size) && !mods.Shielded {
			res.PlayerDied = true
		}
	}
	for id := range consumed {
		w.RemoveBot(id)
	}
	if w.Mode.ReplacesBots() {
		w.SpawnBots(res.BotsEaten, w.Mode)
	}
	return res
}
