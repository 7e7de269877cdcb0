package game

import (
	"math"
	"testing"
)

func TestPlayerEatsOverlappingFood(t *testing.T) {
	w := newTestWorld(ModeClassic)
	addFood(w, w.Player.X+1, w.Player.Y, 4)
	addFood(w, 10, 10, 4) // far away, survives

	eaten := ResolvePlayerFood(w)

	if eaten != 1 {
		t.Fatalf("food eaten = %d, want 1", eaten)
	}
	if math.Abs(w.Player.Size-20.3) > 1e-9 {
		t.Fatalf("player size = %f, want 20.3", w.Player.Size)
	}
	if len(w.Food) != 1 {
		t.Fatalf("food count = %d, want exactly one removed", len(w.Food))
	}
}

func TestBotEatsFoodSmallerIncrement(t *testing.T) {
	w := newTestWorld(ModeClassic)
	b := addBot(w, 500, 500, 20)
	addFood(w, 502, 500, 4)

	eaten := ResolveBotFood(w)

	if eaten != 1 {
		t.Fatalf("food eaten = %d, want 1", eaten)
	}
	if math.Abs(b.Size-20.2) > 1e-9 {
		t.Fatalf("bot size = %f, want 20.2", b.Size)
	}
}

func TestBotBotConsumptionWithReplacement(t *testing.T) {
	w := newTestWorld(ModeClassic)
	a := addBot(w, 500, 500, 30)
	b := addBot(w, 510, 500, 24)

	eaten := ResolveBotBot(w)

	if eaten != 1 {
		t.Fatalf("bots eaten = %d, want 1", eaten)
	}
	if a.Size < 32.4-1e-9 {
		t.Fatalf("predator size = %f, want at least 32.4", a.Size)
	}
	if len(w.Bots) != 2 {
		t.Fatalf("bot count = %d, want victim replaced in classic mode", len(w.Bots))
	}
	for _, bot := range w.Bots {
		if bot.ID == b.ID {
			t.Fatalf("victim %d still present", b.ID)
		}
	}
}

func TestBattleRoyaleNeverReplacesBots(t *testing.T) {
	w := newTestWorld(ModeBattleRoyale)
	addBot(w, 500, 500, 30)
	addBot(w, 510, 500, 20)

	ResolveBotBot(w)

	if len(w.Bots) != 1 {
		t.Fatalf("bot count = %d, want 1 with no replacement", len(w.Bots))
	}
}

func TestEqualSizesNeverConsume(t *testing.T) {
	w := newTestWorld(ModeClassic)
	addBot(w, 500, 500, 25)
	addBot(w, 505, 500, 25)

	if eaten := ResolveBotBot(w); eaten != 0 {
		t.Fatalf("bots eaten = %d, want 0 for equal sizes", eaten)
	}
}

func TestConsumedBotCannotEatSameTick(t *testing.T) {
	// A eats B; B overlaps C but, being consumed, must not eat it.
	w := newTestWorld(ModeBattleRoyale)
	a := addBot(w, 0, 500, 30)
	addBot(w, 25, 500, 24)
	c := addBot(w, 45, 500, 18)

	eaten := ResolveBotBot(w)

	if eaten != 1 {
		t.Fatalf("bots eaten = %d, want only the middle bot", eaten)
	}
	if math.Abs(a.Size-32.4) > 1e-9 {
		t.Fatalf("predator size = %f, want 32.4", a.Size)
	}
	found := false
	for _, bot := range w.Bots {
		if bot.ID == c.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("bot consumed by an already-consumed predator")
	}
}

func TestPlayerEatsSmallerBotScores(t *testing.T) {
	w := newTestWorld(ModeClassic)
	addBot(w, w.Player.X+5, w.Player.Y, 15)
	w.Player.Size = 24

	res := ResolvePlayerBot(w, PlayerModifiers{PointMult: 1, DoublePoints: 1})

	if res.BotsEaten != 1 {
		t.Fatalf("bots eaten = %d, want 1", res.BotsEaten)
	}
	if res.Points != 7 { // floor(15/2)
		t.Fatalf("points = %d, want 7", res.Points)
	}
	if math.Abs(w.Player.Size-25.5) > 1e-9 {
		t.Fatalf("player size = %f, want 24 + 1.5", w.Player.Size)
	}
	if len(w.Bots) != 1 {
		t.Fatalf("bot count = %d, want replacement spawned", len(w.Bots))
	}
}

func TestScoringMultipliersStack(t *testing.T) {
	w := newTestWorld(ModeClassic)
	addBot(w, w.Player.X+5, w.Player.Y, 15)
	w.Player.Size = 24

	res := ResolvePlayerBot(w, PlayerModifiers{PointMult: 2, DoublePoints: 2})

	if res.Points != 28 { // floor(15/2) * 2 * 2
		t.Fatalf("points = %d, want 28", res.Points)
	}
}

func TestLargerBotConsumesPlayer(t *testing.T) {
	w := newTestWorld(ModeClassic)
	addBot(w, w.Player.X+5, w.Player.Y, 50)

	res := ResolvePlayerBot(w, PlayerModifiers{PointMult: 1, DoublePoints: 1})

	if !res.PlayerDied {
		t.Fatalf("player survived a strictly larger overlapping bot")
	}
}

func TestShieldBlocksConsumption(t *testing.T) {
	w := newTestWorld(ModeClassic)
	addBot(w, w.Player.X+5, w.Player.Y, 50)

	res := ResolvePlayerBot(w, PlayerModifiers{Shielded: true, PointMult: 1, DoublePoints: 1})

	if res.PlayerDied {
		t.Fatalf("shielded player was consumed")
	}
}

func TestInstantKillBypassesSizeRule(t *testing.T) {
	w := newTestWorld(ModeClassic)
	addBot(w, w.Player.X+5, w.Player.Y, 50)

	res := ResolvePlayerBot(w, PlayerModifiers{InstantKill: true, PointMult: 1, DoublePoints: 1})

	if res.PlayerDied {
		t.Fatalf("player died with instant kill active")
	}
	if res.BotsEaten != 1 {
		t.Fatalf("bots eaten = %d, want larger bot consumed via instant kill", res.BotsEaten)
	}
	if res.Points != 25 { // floor(50/2)
		t.Fatalf("points = %d, want 25", res.Points)
	}
}

func TestEqualSizePlayerBotNoConsumption(t *testing.T) {
	w := newTestWorld(ModeClassic)
	addBot(w, w.Player.X+5, w.Player.Y, 20)

	res := ResolvePlayerBot(w, PlayerModifiers{PointMult: 1, DoublePoints: 1})

	if res.PlayerDied || res.BotsEaten != 0 {
		t.Fatalf("equal sizes consumed each other: died=%v eaten=%d", res.PlayerDied, res.BotsEaten)
	}
}
