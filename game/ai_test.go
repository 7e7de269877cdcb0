package game

import (
	"math"
	"testing"
)

func addBot(w *World, x, y, size float64) *Blob {
	b := &Blob{ID: w.newID(), Kind: KindBot, X: x, Y: y, Size: size}
	w.Bots = append(w.Bots, b)
	return b
}

func addFood(w *World, x, y, size float64) *Food {
	f := &Food{ID: w.newID(), X: x, Y: y, Size: size}
	w.Food = append(w.Food, f)
	return f
}

func TestAvoidLargerBotBeatsChaseFood(t *testing.T) {
	w := newTestWorld(ModeClassic)
	w.Player.X, w.Player.Y = 10, 10 // keep the player out of range
	bot := addBot(w, 500, 500, 20)
	addBot(w, 550, 500, 30) // >1.2x and within the 60 steer trigger
	addFood(w, 470, 500, 4) // qualifying food at the same time

	intent := DecideSteer(bot, w, false)

	if intent.Kind != SteerAvoidBot {
		t.Fatalf("decision = %v, want avoid-larger-bot to win over food", intent.Kind)
	}
	if intent.DX >= 0 {
		t.Fatalf("avoid direction dx = %f, want away from threat (negative)", intent.DX)
	}
	if intent.SpeedFactor != AvoidSpeedFactor {
		t.Fatalf("avoid speed factor = %f, want %f", intent.SpeedFactor, AvoidSpeedFactor)
	}
}

func TestAvoidNotTriggeredOutsideSteerRange(t *testing.T) {
	w := newTestWorld(ModeClassic)
	w.Player.X, w.Player.Y = 10, 10
	bot := addBot(w, 500, 500, 20)
	addBot(w, 570, 500, 30) // selected at 70 but outside the 60 trigger
	addFood(w, 470, 500, 4)

	intent := DecideSteer(bot, w, false)

	if intent.Kind != SteerChaseFood {
		t.Fatalf("decision = %v, want fall-through to chase-food", intent.Kind)
	}
}

func TestAvoidLargerPlayer(t *testing.T) {
	w := newTestWorld(ModeClassic)
	bot := addBot(w, w.Player.X+50, w.Player.Y, 10)
	w.Player.Size = 30 // >1.2x the bot

	intent := DecideSteer(bot, w, false)
	if intent.Kind != SteerAvoidPlayer {
		t.Fatalf("decision = %v, want avoid-player", intent.Kind)
	}
	if intent.DX <= 0 {
		t.Fatalf("avoid direction dx = %f, want away from player (positive)", intent.DX)
	}

	// A shielded player is not avoided.
	intent = DecideSteer(bot, w, true)
	if intent.Kind == SteerAvoidPlayer {
		t.Fatalf("bot avoided a shielded player")
	}
}

func TestChaseSmallerBot(t *testing.T) {
	w := newTestWorld(ModeClassic)
	w.Player.X, w.Player.Y = 10, 10
	bot := addBot(w, 500, 500, 30)
	prey := addBot(w, 560, 500, 20) // <0.8x, within the 80 trigger

	intent := DecideSteer(bot, w, false)
	if intent.Kind != SteerChaseBot {
		t.Fatalf("decision = %v, want chase-smaller-bot", intent.Kind)
	}
	if intent.DX <= 0 {
		t.Fatalf("chase direction dx = %f, want toward prey at %f", intent.DX, prey.X)
	}
}

func TestTeamChaseBeatsEverything(t *testing.T) {
	w := newTestWorld(ModeTeam)
	w.Player.X, w.Player.Y = 10, 10
	w.Player.Team = TeamRed
	bot := addBot(w, 500, 500, 20)
	bot.Team = TeamRed
	enemy := addBot(w, 580, 500, 15) // smaller, opposing, within 100
	enemy.Team = TeamBlue
	addFood(w, 480, 500, 4)

	intent := DecideSteer(bot, w, false)
	if intent.Kind != SteerChaseTeam {
		t.Fatalf("decision = %v, want team chase first", intent.Kind)
	}
	if intent.SpeedFactor != ChaseSpeedFactor {
		t.Fatalf("team chase speed factor = %f, want %f", intent.SpeedFactor, ChaseSpeedFactor)
	}
}

func TestWanderReusesStoredVelocity(t *testing.T) {
	w := newTestWorld(ModeClassic)
	w.Player.X, w.Player.Y = 10, 10
	bot := addBot(w, 1500, 1500, 20)
	bot.VX, bot.VY = 0.7, -0.4

	// Seeded rng: the first draw is well above the 2% re-roll chance.
	intent := DecideSteer(bot, w, false)
	if intent.Kind != SteerWander {
		t.Fatalf("decision = %v, want wander with nothing in range", intent.Kind)
	}
	if intent.DX != 0.7 || intent.DY != -0.4 {
		t.Fatalf("wander direction = (%f, %f), want stored velocity (0.7, -0.4)", intent.DX, intent.DY)
	}
}

func TestNearestScanIsStable(t *testing.T) {
	w := newTestWorld(ModeClassic)
	w.Player.X, w.Player.Y = 10, 10
	bot := addBot(w, 500, 500, 30)
	first := addBot(w, 540, 500, 20)
	addBot(w, 460, 500, 20) // same distance, encountered later

	got, _ := nearestBot(bot, w, ChaseRange, func(o *Blob) bool { return o.Size < bot.Size*ChaseSizeRatio })
	if got == nil || got.ID != first.ID {
		t.Fatalf("tie broke to a later bot, want first-encountered %d", first.ID)
	}
}

func TestBotBaseSpeed(t *testing.T) {
	if got := BotBaseSpeed(10); got != 1.5 {
		t.Fatalf("base speed at size 10 = %f, want 1.5", got)
	}
	if got := BotBaseSpeed(200); got != 0.5 {
		t.Fatalf("base speed at size 200 = %f, want the 0.5 floor", got)
	}
}

func TestWallBounceNegatesWanderAxis(t *testing.T) {
	w := newTestWorld(ModeClassic)
	bot := addBot(w, 5, 500, 10)
	bot.VX, bot.VY = -1, 0

	MoveBot(bot, SteerIntent{Kind: SteerWander, DX: -1, DY: 0, SpeedFactor: 1}, w, 0)

	if bot.X != bot.Radius() {
		t.Fatalf("bot x = %f, want clamped to %f", bot.X, bot.Radius())
	}
	if bot.VX != 1 {
		t.Fatalf("wander vx = %f, want negated to 1", bot.VX)
	}
}

func TestModeSpeedMultipliers(t *testing.T) {
	if got := ModeTimeAttack.SpeedMultiplier(0.5); math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("timeAttack multiplier at half elapsed = %f, want 1.5", got)
	}
	if got := ModeBattleRoyale.SpeedMultiplier(0); got != BattleRoyaleSpeedFactor {
		t.Fatalf("battleRoyale multiplier = %f, want %f", got, BattleRoyaleSpeedFactor)
	}
	if got := ModeClassic.SpeedMultiplier(0.9); got != 1 {
		t.Fatalf("classic multiplier = %f, want 1", got)
	}
}
