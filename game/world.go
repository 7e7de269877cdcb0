package game

import (
	"image/color"
	"math/rand"
	"time"
)

// botPalette colors spawned bots; picked at random per bot
var botPalette = []color.RGBA{
	{R: 255, G: 99, B: 71, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 186, G: 85, B: 211, A: 255},
	{R: 60, G: 179, B: 113, A: 255},
	{R: 70, G: 130, B: 180, A: 255},
	{R: 240, G: 230, B: 140, A: 255},
}

var foodPalette = []color.RGBA{
	{R: 144, G: 238, B: 144, A: 255},
	{R: 255, G: 182, B: 193, A: 255},
	{R: 173, G: 216, B: 230, A: 255},
	{R: 255, G: 255, B: 153, A: 255},
}

var teamColors = map[Team]color.RGBA{
	TeamRed:  {R: 220, G: 60, B: 60, A: 255},
	TeamBlue: {R: 60, G: 100, B: 220, A: 255},
}

// World holds the authoritative live entities for one run. It is owned
// exclusively by the run and rebuilt wholesale on restart.
type World struct {
	Config Config
	Mode   Mode

	Player *Blob
	Bots   []*Blob
	Food   []*Food

	rng      *rand.Rand
	nextID   int
	nextTeam Team // alternates bot team assignment in team mode
}

// NewWorld creates a world with the player centered and the initial bot
// and food populations spawned.
func NewWorld(cfg Config, mode Mode, playerTeam Team, playerColor color.RGBA) *World {
	w := &World{
		Config:   cfg,
		Mode:     mode,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		nextTeam: TeamRed,
	}
	w.Player = &Blob{
		ID:    w.newID(),
		Kind:  KindPlayer,
		X:     cfg.WorldWidth / 2,
		Y:     cfg.WorldHeight / 2,
		Size:  PlayerMinSize,
		Color: playerColor,
	}
	if mode == ModeTeam {
		if playerTeam == TeamNone {
			playerTeam = TeamRed
		}
		w.Player.Team = playerTeam
	}
	w.SpawnBots(cfg.InitialBots, mode)
	w.SpawnFood(cfg.InitialFood)
	return w
}

func (w *World) newID() int {
	w.nextID++
	return w.nextID
}

// SpawnBots adds count bots at uniformly random positions with size
// uniform in [BotSpawnMinSize, BotSpawnMaxSize] and wander velocity
// components uniform in [-1, 1] scaled per mode.
func (w *World) SpawnBots(count int, mode Mode) {
	for i := 0; i < count; i++ {
		w.Bots = append(w.Bots, w.spawnBot(mode))
	}
}

func (w *World) spawnBot(mode Mode) *Blob {
	scale := mode.WanderScale()
	b := &Blob{
		ID:    w.newID(),
		Kind:  KindBot,
		X:     w.rng.Float64() * w.Config.WorldWidth,
		Y:     w.rng.Float64() * w.Config.WorldHeight,
		Size:  BotSpawnMinSize + w.rng.Float64()*(BotSpawnMaxSize-BotSpawnMinSize),
		VX:    (w.rng.Float64()*2 - 1) * scale,
		VY:    (w.rng.Float64()*2 - 1) * scale,
		Color: botPalette[w.rng.Intn(len(botPalette))],
	}
	if mode == ModeTeam {
		b.Team = w.nextTeam
		b.Color = teamColors[b.Team]
		if w.nextTeam == TeamRed {
			w.nextTeam = TeamBlue
		} else {
			w.nextTeam = TeamRed
		}
	}
	return b
}

// SpawnFood adds count food items at uniformly random positions with
// size uniform in [FoodMinSize, FoodMaxSize].
func (w *World) SpawnFood(count int) {
	for i := 0; i < count; i++ {
		w.Food = append(w.Food, &Food{
			ID:    w.newID(),
			X:     w.rng.Float64() * w.Config.WorldWidth,
			Y:     w.rng.Float64() * w.Config.WorldHeight,
			Size:  FoodMinSize + w.rng.Float64()*(FoodMaxSize-FoodMinSize),
			Color: foodPalette[w.rng.Intn(len(foodPalette))],
		})
	}
}

// RemoveBot removes the bot with the given id. Order of the remaining
// bots is preserved; AI nearest scans rely on stable iteration order.
func (w *World) RemoveBot(id int) {
	for i, b := range w.Bots {
		if b.ID == id {
			w.Bots = append(w.Bots[:i], w.Bots[i+1:]...)
			return
		}
	}
}

// RemoveFoodAt removes the food item at index i, preserving order
func (w *World) RemoveFoodAt(i int) {
	w.Food = append(w.Food[:i], w.Food[i+1:]...)
}

// EntitySnapshot is one entity's render-facing state
type EntitySnapshot struct {
	ID    int
	X, Y  float64
	Size  float64
	Color color.RGBA
	Team  Team
}

// Snapshot returns the per-tick entity list consumed by presentation:
// player first, then bots, then food.
func (w *World) Snapshot() []EntitySnapshot {
	out := make([]EntitySnapshot, 0, 1+len(w.Bots)+len(w.Food))
	p := w.Player
	out = append(out, EntitySnapshot{ID: p.ID, X: p.X, Y: p.Y, Size: p.Size, Color: p.Color, Team: p.Team})
	for _, b := range w.Bots {
		out = append(out, EntitySnapshot{ID: b.ID, X: b.X, Y: b.Y, Size: b.Size, Color: b.Color, Team: b.Team})
	}
	for _, f := range w.Food {
		out = append(out, EntitySnapshot{ID: f.ID, X: f.X, Y: f.Y, Size: f.Size, Color: f.Color})
	}
	return out
}

// RegenerateFoodIfBelow injects a batch whenever the live food count has
// dropped below the threshold. Returns the number spawned.
func (w *World) RegenerateFoodIfBelow(threshold, batch int) int {
	if len(w.Food) >= threshold {
		return 0
	}
	w.SpawnFood(batch)
	return batch
}
