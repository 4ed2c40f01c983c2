package vstick

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Overlay is a small debug panel showing FPS, TPS and the state of a
// Joystick. The text is refreshed every ~0.5 seconds.
type Overlay struct {
	X, Y float64

	j       *Joystick
	img     *ebiten.Image
	elapsed float64
	last    Event
	hasLast bool
}

// NewOverlay creates an overlay for j. It subscribes to j's move and release
// streams.
func NewOverlay(j *Joystick) *Overlay {
	o := &Overlay{X: 4, Y: 4, j: j, elapsed: overlayRefresh}
	j.Move().Subscribe(o.record)
	j.Release().Subscribe(o.record)
	return o
}

const overlayRefresh = 0.5

func (o *Overlay) record(e Event) {
	o.last, o.hasLast = e, true
}

// Update advances the refresh timer by dt seconds.
func (o *Overlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0

	if o.img == nil {
		// Enough for four lines of debug text.
		o.img = ebiten.NewImage(200, 64)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f  TPS: %.1f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), o.Text()))
}

// Text describes the joystick state shown by the overlay.
func (o *Overlay) Text() string {
	state := "idle"
	if o.j.Active() {
		state = "active"
	}
	s := fmt.Sprintf("%s  cycle %d", state, o.j.Cycle())
	if !o.hasLast {
		return s
	}
	plan := "-"
	if o.last.Direction != nil {
		plan = o.last.Direction.Plan.String()
	}
	return s + fmt.Sprintf("\nforce %.2f  angle %.0f\nplan %s", o.last.Force, o.last.Angle.Degree, plan)
}

// Draw renders the overlay onto dst. Nothing is drawn before the first
// refresh.
func (o *Overlay) Draw(dst *ebiten.Image) {
	if o.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.X, o.Y)
	dst.DrawImage(o.img, op)
}
