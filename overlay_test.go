package vstick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayText(t *testing.T) {
	j, _, _ := newTestJoystick(t, DefaultThreshold)
	o := NewOverlay(j)
	assert.Equal(t, "idle  cycle 0", o.Text())

	j.Handle(mouse(MouseDown, 50, 50))
	j.Handle(mouse(MouseMove, 90, 60))
	assert.Equal(t, "active  cycle 1\nforce 0.40  angle 0\nplan right", o.Text())

	j.Handle(mouse(MouseUp, 90, 60))
	assert.Equal(t, "idle  cycle 1\nforce 0.00  angle 180\nplan -", o.Text())
}

func TestOverlayDrawBeforeRefresh(t *testing.T) {
	j, _, _ := newTestJoystick(t, DefaultThreshold)
	o := NewOverlay(j)
	// Draw is a no-op until the first refresh.
	require.Nil(t, o.img)
	o.Draw(nil)
}
