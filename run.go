package vstick

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Background fills the screen before the pad is drawn. Nil leaves the
	// screen as ebiten provides it.
	Background color.Color

	// TPS overrides ebiten's ticks per second when positive.
	TPS int
}

// Game wires a Source, a Joystick and a Pad into an ebiten.Game. Use it
// directly with ebiten.RunGame, or through Run.
type Game struct {
	Joystick *Joystick
	Pad      *Pad
	Source   *Source
	// Script, when set, is stepped before input is polled each tick.
	Script   *Script
	// Overlay, when set, is updated and drawn on top of everything else.
	Overlay  *Overlay

	// OnUpdate runs after input has been processed each tick. A non-nil
	// error stops the game.
	OnUpdate func() error
	// OnDraw runs after the pad has been drawn.
	OnDraw   func(screen *ebiten.Image)

	background    color.Color
	width, height int
}

// NewGame returns a Game for j. pad may be nil when j presents elsewhere.
func NewGame(j *Joystick, pad *Pad, src *Source) *Game {
	if src == nil {
		src = NewSource()
	}
	return &Game{Joystick: j, Pad: pad, Source: src, width: 640, height: 480}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.Script != nil {
		g.Script.Step(g.Source)
	}
	g.Source.Update(g.Joystick)
	dt := 1.0 / float64(ebiten.TPS())
	if g.Pad != nil {
		g.Pad.Update(float32(dt))
	}
	if g.Overlay != nil {
		g.Overlay.Update(dt)
	}
	if g.OnUpdate != nil {
		return g.OnUpdate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.background != nil {
		screen.Fill(g.background)
	}
	if g.Pad != nil {
		g.Pad.Draw(screen)
	}
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

// Layout implements ebiten.Game with a fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and runs g until the window is closed or OnUpdate
// returns an error.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		g.width, g.height = cfg.Width, cfg.Height
	}
	g.background = cfg.Background
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	return ebiten.RunGame(g)
}
