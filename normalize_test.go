package vstick

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMouse(t *testing.T) {
	prevented := 0
	s := Normalize(RawEvent{
		Type:    MouseMove,
		ClientX: 12, ClientY: 34,
		PreventDefault: func() { prevented++ },
	})
	assert.Equal(t, Sample{X: 12, Y: 34}, s)
	assert.Equal(t, 1, prevented)
}

func TestNormalizeTouchUsesFirstChangedTouch(t *testing.T) {
	s := Normalize(RawEvent{
		Type:    TouchMove,
		ClientX: 999, ClientY: 999,
		ChangedTouches: []Touch{
			{ClientX: 5, ClientY: 6, Force: 0.7},
			{ClientX: 50, ClientY: 60},
		},
	})
	assert.Equal(t, Sample{X: 5, Y: 6, Pressure: 0.7}, s)
}

func TestNormalizeTouchWithoutTouchesIsNaN(t *testing.T) {
	s := Normalize(RawEvent{Type: TouchEnd})
	assert.True(t, math.IsNaN(s.X))
	assert.True(t, math.IsNaN(s.Y))
}

func TestNormalizePressurePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		force  float64
		press  float64
		webkit float64
		want   float64
	}{
		{"none", 0, 0, 0, 0},
		{"force wins", 0.3, 0.5, 0.9, 0.3},
		{"pressure fallback", 0, 0.5, 0.9, 0.5},
		{"webkit fallback", 0, 0, 0.9, 0.9},
		{"nan skipped", math.NaN(), 0.4, 0, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Normalize(RawEvent{
				Type:  PointerMove,
				Force: tt.force, Pressure: tt.press, WebkitForce: tt.webkit,
			})
			assert.Equal(t, tt.want, s.Pressure)
		})
	}
}

func TestInputTypeClasses(t *testing.T) {
	starts := []InputType{PointerDown, MouseDown, TouchStart}
	moves := []InputType{PointerMove, MouseMove, TouchMove}
	ends := []InputType{PointerUp, PointerCancel, MouseUp, TouchEnd, TouchCancel}
	for _, it := range starts {
		assert.Equal(t, ClassStart, it.Class(), it.String())
	}
	for _, it := range moves {
		assert.Equal(t, ClassMove, it.Class(), it.String())
	}
	for _, it := range ends {
		assert.Equal(t, ClassEnd, it.Class(), it.String())
	}
	assert.True(t, TouchCancel.IsTouch())
	assert.False(t, PointerCancel.IsTouch())
}

func TestParseInputType(t *testing.T) {
	for i := PointerDown; i <= TouchCancel; i++ {
		got, err := ParseInputType(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}

	_, err := ParseInputType("wheel")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownInput))
}
