package vstick

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionDuration is how long the handle takes to glide back to center
// after a release.
const TransitionDuration = 250 * time.Millisecond

// Pad is an on-screen joystick drawn with Ebitengine. It supplies the layout
// metrics a Joystick needs and applies the handle movement it requests, so it
// can be passed as both the Layout and the Presenter:
//
//	pad := vstick.NewPad(40, 320, 120, 48)
//	j, err := vstick.New(pad, pad, vstick.DefaultConfig())
//
// Call Update every tick to advance the handle transition and Draw every frame.
type Pad struct {
	// X, Y is the pad's top-left corner in screen pixels.
	X, Y float64

	// Diameter of the pad and of its handle.
	Diameter, HandleDiameter float64

	RingColor   color.Color
	HandleColor color.Color
	// RingWidth is the stroke width of the pad outline.
	RingWidth   float32

	// Handle top-left in pad-local pixels.
	handleX, handleY float64
	transition       bool
	tweenX           *gween.Tween
	tweenY           *gween.Tween
}

// NewPad creates a pad at (x, y) with its handle centered and transitions
// enabled.
func NewPad(x, y, size, handleSize float64) *Pad {
	p := &Pad{
		X: x, Y: y,
		Diameter:       size,
		HandleDiameter: handleSize,
		RingColor:      color.RGBA{R: 200, G: 200, B: 220, A: 160},
		HandleColor:    color.RGBA{R: 80, G: 180, B: 255, A: 230},
		RingWidth:      3,
		transition:     true,
	}
	c := (size - handleSize) / 2
	p.handleX, p.handleY = c, c
	return p
}

// PadSize implements Layout.
func (p *Pad) PadSize() float64 { return p.Diameter }

// HandleSize implements Layout.
func (p *Pad) HandleSize() float64 { return p.HandleDiameter }

// Offset implements Layout.
func (p *Pad) Offset() Vec2 { return Vec2{p.X, p.Y} }

// HandlePosition returns the handle's top-left corner in pad-local pixels.
func (p *Pad) HandlePosition() (x, y float64) {
	return p.handleX, p.handleY
}

// Animating reports whether a handle transition is in progress.
func (p *Pad) Animating() bool {
	return p.tweenX != nil
}

// RemoveTransition implements Presenter. Any running transition stops where
// it is and later moves are applied immediately.
func (p *Pad) RemoveTransition() {
	p.transition = false
	p.tweenX, p.tweenY = nil, nil
}

// SetPosition implements Presenter.
func (p *Pad) SetPosition(x, y float64) {
	if !p.transition {
		p.tweenX, p.tweenY = nil, nil
		p.handleX, p.handleY = x, y
		return
	}
	d := float32(TransitionDuration.Seconds())
	p.tweenX = gween.New(float32(p.handleX), float32(x), d, ease.InOutQuad)
	p.tweenY = gween.New(float32(p.handleY), float32(y), d, ease.InOutQuad)
}

// RestoreTransitionAndCenter implements Presenter.
func (p *Pad) RestoreTransitionAndCenter(x, y float64) {
	p.transition = true
	p.SetPosition(x, y)
}

// Update advances the handle transition by dt seconds.
func (p *Pad) Update(dt float32) {
	if p.tweenX == nil {
		return
	}
	x, doneX := p.tweenX.Update(dt)
	y, doneY := p.tweenY.Update(dt)
	p.handleX, p.handleY = float64(x), float64(y)
	if doneX && doneY {
		p.tweenX, p.tweenY = nil, nil
	}
}

// Draw renders the pad outline and the handle onto dst.
func (p *Pad) Draw(dst *ebiten.Image) {
	r := float32(p.Diameter / 2)
	vector.StrokeCircle(dst, float32(p.X)+r, float32(p.Y)+r, r-p.RingWidth/2, p.RingWidth, p.RingColor, true)

	hr := float32(p.HandleDiameter / 2)
	hx := float32(p.X+p.handleX) + hr
	hy := float32(p.Y+p.handleY) + hr
	vector.FillCircle(dst, hx, hy, hr, p.HandleColor, true)
}
