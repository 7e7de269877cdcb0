package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game wires the simulation core into the ebiten loop. One simulation
// tick runs per display refresh, strictly serialized; pausing halts all
// simulated time including power-up expiry and mode timers.
type Game struct {
	config   Config
	mode     Mode
	world    *World
	camera   *Camera
	session  *Session
	profile  ProfileStore
	renderer *Renderer

	decay *DecayTracker
	clock *TimeAttackClock // timeAttack only
	zone  *SafeZone        // battleRoyale only

	sweepAcc float64   // real seconds toward the next power-up sweep
	pausedAt time.Time // set while paused

	lastUpdate time.Time

	// FPS tracking
	fps        float64
	fpsCounter int
	fpsTimer   float64
	profiler   *Profiler
	lastDrop   time.Time
}

// NewGame creates a game for the given mode name. Invalid configuration
// and unknown mode names fall back to classic defaults.
func NewGame(config Config, modeName string, profile ProfileStore) *Game {
	config = config.Normalized()
	mode := ParseMode(modeName)

	g := &Game{
		config:   config,
		mode:     mode,
		profile:  profile,
		session:  NewSession(profile),
		camera:   NewCamera(float64(config.ScreenWidth), float64(config.ScreenHeight)),
		profiler: NewProfiler(),
		fps:      60.0,
	}
	g.buildRun(time.Now())
	return g
}

// buildRun constructs a fresh World and run-scoped state. Everything
// here is replaced wholesale on restart; no state crosses runs.
func (g *Game) buildRun(now time.Time) {
	g.world = NewWorld(g.config, g.mode, g.profile.SelectedTeam(), g.profile.SelectedColor())
	g.decay = NewDecayTracker(now)
	g.sweepAcc = 0
	g.clock = nil
	g.zone = nil
	switch g.mode {
	case ModeTimeAttack:
		g.clock = NewTimeAttackClock(TimeAttackDuration)
	case ModeBattleRoyale:
		g.zone = NewSafeZone(g.config)
	}
	g.camera.Follow(g.world.Player.X, g.world.Player.Y, g.config.WorldWidth, g.config.WorldHeight)
	g.lastUpdate = now
}

// elapsedFrac is the elapsed fraction of the time-attack countdown, zero
// in every other mode.
func (g *Game) elapsedFrac() float64 {
	if g.clock == nil {
		return 0
	}
	return g.clock.ElapsedFrac()
}

// Update runs one scheduler slot: control events always, one simulation
// tick only while the session is active.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	if dt > 0.1 {
		dt = 0.1 // clamp to avoid large jumps after stalls
	}

	g.trackFPS(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		GetDebugState().ShowStats = !GetDebugState().ShowStats
	}

	in := ReadFrameInput(g.config.ScreenWidth, g.config.ScreenHeight)

	switch g.session.State {
	case StateNotStarted:
		g.session.Start()

	case StatePaused:
		if in.TogglePause {
			g.session.Resume()
			// Paused wall-clock time must not burn power-up duration.
			paused := now.Sub(g.pausedAt)
			g.profile.DeferPowerUps(paused)
			g.decay.Defer(paused)
		}
		return nil

	case StateEnded:
		if in.Restart {
			if err := g.session.Restart(); err == nil {
				g.buildRun(now)
			}
		}
		return nil
	}

	if in.TogglePause {
		g.session.Pause()
		g.pausedAt = now
		return nil
	}

	g.safeStep(in, dt, now)
	return nil
}

// safeStep runs one tick with a recovery boundary: a panicking tick
// forces the run into Ended as a loss instead of corrupting later ticks.
func (g *Game) safeStep(in FrameInput, dt float64, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("tick failed, forcing game over: %v\n", r)
			g.session.EndRun(false)
		}
	}()
	g.step(in, dt, now)
}

// step is one full simulation tick in the fixed stage order: decay,
// player movement, camera, the four resolver stages, food regeneration,
// mode rules, then session bookkeeping. Later stages observe the results
// of earlier stages within the same tick.
func (g *Game) step(in FrameInput, dt float64, now time.Time) {
	w := g.world
	p := w.Player
	frac := g.elapsedFrac()

	// Idle decay. In battle royale, zone damage replaces decay for an
	// entity outside the safe zone.
	moved := in.MoveX != 0 || in.MoveY != 0
	inZone := g.zone == nil || g.zone.Contains(p.X, p.Y)
	if g.decay.Note(moved, now) && inZone {
		p.SetSize(p.Size - IdleDecayAmount)
	}

	// Player movement.
	if moved {
		speed := PlayerSpeed(p.Size, g.profile.IsUpgradeOwned(UpgradeSpeedBoost))
		p.X = Clamp(p.X+in.MoveX*speed, p.Radius(), g.config.WorldWidth-p.Radius())
		p.Y = Clamp(p.Y+in.MoveY*speed, p.Radius(), g.config.WorldHeight-p.Radius())
	}

	g.camera.Follow(p.X, p.Y, g.config.WorldWidth, g.config.WorldHeight)

	// Resolver stages, fixed order.
	foodEaten := ResolvePlayerFood(w)
	foodEaten += ResolveBotFood(w)

	shielded := g.profile.IsPowerUpActive(PowerUpShield)
	for _, b := range w.Bots {
		intent := DecideSteer(b, w, shielded)
		MoveBot(b, intent, w, frac)
	}

	botsEaten := ResolveBotBot(w)

	res := ResolvePlayerBot(w, g.session.Modifiers())
	g.session.AddPoints(res.Points)
	botsEaten += res.BotsEaten

	w.RegenerateFoodIfBelow(g.config.FoodRegenThreshold, g.config.FoodRegenBatch)

	if res.PlayerDied {
		if g.session.HandlePlayerDeath() {
			// Auto-revive: back to the floor, the run continues.
			p.SetSize(PlayerMinSize)
		} else {
			return
		}
	}

	// Mode rules.
	if g.clock != nil && g.clock.Advance(dt) {
		// Timer expiry is terminal; auto-revive only intercepts the
		// player-death path.
		g.session.EndRun(false)
		return
	}
	if g.zone != nil {
		g.zone.Shrink(dt)
		if !g.zone.Contains(p.X, p.Y) {
			p.SetSize(p.Size - ZoneDamage)
		}
		for _, b := range w.Bots {
			if !g.zone.Contains(b.X, b.Y) {
				b.SetSize(b.Size - ZoneDamage)
			}
		}
		if len(w.Bots) == 0 {
			g.session.EndRun(true)
			return
		}
	}

	// Session bookkeeping.
	if foodEaten > 0 {
		g.profile.OnChallengeProgress("food-eaten", foodEaten)
	}
	if botsEaten > 0 {
		g.profile.OnChallengeProgress("bots-eaten", botsEaten)
	}

	// Power-up expiry sweeps on its own fixed real-time cadence,
	// independent of the tick rate.
	g.sweepAcc += dt
	for g.sweepAcc >= 1 {
		g.sweepAcc--
		g.profile.SweepPowerUps(now)
	}
}

// trackFPS keeps a rolling FPS estimate and captures a CPU profile on a
// severe sustained drop.
func (g *Game) trackFPS(dt float64) {
	g.fpsTimer += dt
	g.fpsCounter++
	if g.fpsTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsCounter) / g.fpsTimer
	g.fpsCounter = 0
	g.fpsTimer = 0

	if g.fps < 30 && time.Since(g.lastDrop) > 10*time.Second {
		g.lastDrop = time.Now()
		reason := fmt.Sprintf("fps%.0f-bots%d-food%d", g.fps, len(g.world.Bots), len(g.world.Food))
		if err := g.profiler.Capture(reason); err != nil {
			fmt.Printf("profile capture failed: %v\n", err)
		}
	}
}

// Draw renders the current world snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		g.renderer = NewRenderer(g.camera)
	}
	g.renderer.Render(screen, g)
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
