package vstick

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPadCentersHandle(t *testing.T) {
	p := NewPad(10, 20, 100, 20)
	x, y := p.HandlePosition()
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 40.0, y)
	assert.False(t, p.Animating())

	assert.Equal(t, 100.0, p.PadSize())
	assert.Equal(t, 20.0, p.HandleSize())
	assert.Equal(t, Vec2{10, 20}, p.Offset())
}

func TestPadSetPositionImmediateWithoutTransition(t *testing.T) {
	p := NewPad(0, 0, 100, 20)
	p.RemoveTransition()
	p.SetPosition(70, 40)

	x, y := p.HandlePosition()
	assert.Equal(t, 70.0, x)
	assert.Equal(t, 40.0, y)
	assert.False(t, p.Animating())
}

func TestPadReturnsToCenterOverTransition(t *testing.T) {
	p := NewPad(0, 0, 100, 20)
	p.RemoveTransition()
	p.SetPosition(90, 40)
	p.RestoreTransitionAndCenter(40, 40)
	require.True(t, p.Animating())

	half := float32(TransitionDuration.Seconds() / 2)
	p.Update(half)
	x, y := p.HandlePosition()
	assert.True(t, x > 40 && x < 90, "x mid transition = %v", x)
	assert.InDelta(t, 40.0, y, 1e-6)
	assert.True(t, p.Animating())

	p.Update(half)
	x, y = p.HandlePosition()
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 40.0, y)
	assert.False(t, p.Animating())
}

func TestPadRemoveTransitionStopsAnimation(t *testing.T) {
	p := NewPad(0, 0, 100, 20)
	p.RemoveTransition()
	p.SetPosition(0, 0)
	p.RestoreTransitionAndCenter(40, 40)
	p.Update(0.05)
	mx, my := p.HandlePosition()

	p.RemoveTransition()
	assert.False(t, p.Animating())
	p.Update(1)
	x, y := p.HandlePosition()
	assert.Equal(t, mx, x)
	assert.Equal(t, my, y)
}

func TestPadDrivenByJoystick(t *testing.T) {
	p := NewPad(0, 0, 100, 20)
	j, err := New(p, p, DefaultConfig())
	require.NoError(t, err)

	j.Handle(mouse(MouseDown, 50, 50))
	j.Handle(mouse(MouseMove, 400, 60))
	x, y := p.HandlePosition()
	assert.Equal(t, 90.0, x)
	assert.Equal(t, 40.0, y)

	j.Handle(mouse(MouseUp, 400, 60))
	assert.True(t, p.Animating())
	p.Update(1)
	x, y = p.HandlePosition()
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 40.0, y)
}

func TestPadDraw(t *testing.T) {
	p := NewPad(10, 10, 100, 20)
	dst := ebiten.NewImage(128, 128)
	assert.NotPanics(t, func() { p.Draw(dst) })

	p.RemoveTransition()
	p.SetPosition(90, 40)
	assert.NotPanics(t, func() { p.Draw(dst) })
}
