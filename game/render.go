package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.RGBA{R: 18, G: 22, B: 30, A: 255}
	colorZoneRing   = color.RGBA{R: 255, G: 80, B: 80, A: 200}
	colorHUD        = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorShieldRing = color.RGBA{R: 120, G: 200, B: 255, A: 255}
)

// Renderer draws the world snapshot through the camera. Drawing is
// presentation only; nothing here mutates simulation state.
type Renderer struct {
	camera *Camera
	face   *basicfont.Face
}

// NewRenderer creates a renderer bound to a camera
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{camera: camera, face: basicfont.Face7x13}
}

// Render draws the full frame: food, bots, player, safe zone and HUD
func (r *Renderer) Render(screen *ebiten.Image, g *Game) {
	screen.Fill(colorBackground)

	for _, f := range g.world.Food {
		if !r.camera.Visible(f.X, f.Y, f.Size/2) {
			continue
		}
		sx, sy := r.camera.WorldToScreen(f.X, f.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(f.Size/2), f.Color, true)
	}

	for _, b := range g.world.Bots {
		r.drawBlob(screen, b, false)
	}

	shielded := g.profile.IsPowerUpActive(PowerUpShield)
	r.drawBlob(screen, g.world.Player, shielded)

	if g.zone != nil {
		sx, sy := r.camera.WorldToScreen(g.zone.CX, g.zone.CY)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(g.zone.Radius), 2, colorZoneRing, true)
	}

	r.drawHUD(screen, g)
}

func (r *Renderer) drawBlob(screen *ebiten.Image, b *Blob, shielded bool) {
	if !r.camera.Visible(b.X, b.Y, b.Radius()) {
		return
	}
	sx, sy := r.camera.WorldToScreen(b.X, b.Y)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(b.Radius()), b.Color, true)
	if b.Team != TeamNone {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(b.Radius()+2), 2, teamColors[b.Team], true)
	}
	if shielded {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(b.Radius()+5), 2, colorShieldRing, true)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, g *Game) {
	lines := []string{
		fmt.Sprintf("Score: %d", g.session.RunScore),
		fmt.Sprintf("Lives: %d", g.profile.LivesRemaining()),
		fmt.Sprintf("Size: %.1f", g.world.Player.Size),
	}
	if g.clock != nil {
		lines = append(lines, fmt.Sprintf("Time: %ds", int(g.clock.Remaining)))
	}
	if g.zone != nil {
		lines = append(lines, fmt.Sprintf("Zone: %.0f  Bots left: %d", g.zone.Radius, len(g.world.Bots)))
	}
	if active := g.profile.ActivePowerUps(); len(active) > 0 {
		names := make([]string, 0, len(active))
		for _, p := range active {
			names = append(names, p.Name)
		}
		lines = append(lines, "Active: "+strings.Join(names, ", "))
	}
	for i, line := range lines {
		text.Draw(screen, line, r.face, 12, 20+i*16, colorHUD)
	}

	switch g.session.State {
	case StatePaused:
		text.Draw(screen, "PAUSED", r.face, g.config.ScreenWidth/2-24, g.config.ScreenHeight/2, colorHUD)
	case StateEnded:
		msg := "GAME OVER - press R to restart"
		if g.session.Won {
			msg = "YOU WIN - press R to restart"
		}
		if g.profile.LivesRemaining() <= 0 {
			msg = "GAME OVER - no lives left"
		}
		text.Draw(screen, msg, r.face, g.config.ScreenWidth/2-100, g.config.ScreenHeight/2, colorHUD)
	}

	if GetDebugState().ShowStats {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS %.0f  mode %s  bots %d  food %d",
				g.fps, g.mode, len(g.world.Bots), len(g.world.Food)),
			12, g.config.ScreenHeight-20)
	}
}
