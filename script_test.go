package vstick

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "press", "x": 50, "y": 50},
			{"action": "wait", "frames": 3},
			{"action": "raw", "event": "touchmove", "x": 80, "y": 60, "pressure": 0.5},
			{"action": "release", "x": 80, "y": 60}
		]
	}`)

	sc, err := LoadScript(data)
	require.NoError(t, err)
	assert.Equal(t, 4, sc.Len())
	assert.Equal(t, "press", sc.steps[0].Action)
	assert.Equal(t, 3, sc.steps[1].Frames)
	assert.Equal(t, TouchMove, sc.steps[2].inputType)
	assert.False(t, sc.Done())
}

func TestLoadScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
		{"unknown raw event", `{"steps": [{"action": "raw", "event": "keydown"}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadScript([]byte(c.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse script")
		})
	}

	_, err := LoadScript([]byte(`{"steps": [{"action": "raw", "event": "keydown"}]}`))
	assert.True(t, errors.Is(err, ErrUnknownInput))
}

func TestScriptEvents(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 1, "y": 2},
		{"action": "wait", "frames": 10},
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 30, "toY": 0, "frames": 4},
		{"action": "raw", "event": "touchend", "x": 7, "y": 8, "pressure": 0.25}
	]}`))
	require.NoError(t, err)

	evs := sc.Events()
	assert.Equal(t, []InputType{
		MouseDown, MouseUp,
		MouseDown, MouseMove, MouseMove, MouseUp,
		TouchEnd,
	}, eventTypes(evs))
	assert.Equal(t, 10.0, evs[3].ClientX)
	assert.Equal(t, 20.0, evs[4].ClientX)
	assert.Equal(t, 30.0, evs[5].ClientX)

	raw := evs[6]
	require.Len(t, raw.ChangedTouches, 1)
	assert.Equal(t, Touch{ClientX: 7, ClientY: 8, Force: 0.25}, raw.ChangedTouches[0])
}

func TestScriptEventsReplayHeadless(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "x": 50, "y": 50},
		{"action": "move", "x": 80, "y": 60},
		{"action": "release", "x": 80, "y": 60}
	]}`))
	require.NoError(t, err)

	j, p, _ := newTestJoystick(t, DefaultThreshold)
	for _, ev := range sc.Events() {
		j.Handle(ev)
	}
	assert.Equal(t, []string{"remove", "set 70,40", "center 40,40"}, p.calls)
}

func TestScriptStepClick(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	require.NoError(t, err)
	src := NewSource()

	sc.Step(src)
	require.Equal(t, 2, src.Pending())
	assert.False(t, sc.Done(), "not done while injected frames are pending")

	src.Poll()
	src.Poll()

	sc.Step(src)
	assert.True(t, sc.Done())
}

func TestScriptStepWait(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "x": 1, "y": 1}
	]}`))
	require.NoError(t, err)
	src := NewSource()

	// The wait step's own frame plus two more.
	for i := 0; i < 3; i++ {
		sc.Step(src)
		assert.Equal(t, 0, src.Pending(), "frame %d", i)
	}
	sc.Step(src)
	assert.Equal(t, 1, src.Pending())
}

func TestScriptStepRawMapsToMouse(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [
		{"action": "raw", "event": "pointerdown", "x": 5, "y": 5},
		{"action": "raw", "event": "touchcancel", "x": 5, "y": 5}
	]}`))
	require.NoError(t, err)
	src := NewSource()

	sc.Step(src)
	assert.Equal(t, []InputType{MouseDown}, eventTypes(src.Poll()))
	sc.Step(src)
	assert.Equal(t, []InputType{MouseUp}, eventTypes(src.Poll()))
	sc.Step(src)
	assert.True(t, sc.Done())
}
