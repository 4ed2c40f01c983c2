package vstick

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action   string  `json:"action"`
	Event    string  `json:"event,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Pressure float64 `json:"pressure,omitempty"`

	inputType InputType
}

// scriptFile is the top-level JSON structure of an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a recorded sequence of joystick input. Actions are "press",
// "move", "release", "click", "drag" (fromX/fromY/toX/toY over frames),
// "wait" (frames) and "raw", which replays a single event named by its DOM
// type, for example:
//
//	{"steps": [
//	  {"action": "press", "x": 100, "y": 100},
//	  {"action": "drag", "fromX": 100, "fromY": 100, "toX": 160, "toY": 40, "frames": 10},
//	  {"action": "raw", "event": "touchend", "x": 160, "y": 40}
//	]}
//
// A Script can be replayed headless with Events, or stepped frame by frame
// through a Source with Step.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses and validates a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range file.Steps {
		st := &file.Steps[i]
		switch st.Action {
		case "press", "move", "release", "click", "drag", "wait":
		case "raw":
			typ, err := ParseInputType(st.Event)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.inputType = typ
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Len returns the number of steps in the script.
func (r *Script) Len() int {
	return len(r.steps)
}

// Done reports whether all steps have been executed by Step.
func (r *Script) Done() bool {
	return r.done
}

// Events expands the whole script into raw events, ignoring waits. Mouse
// event types are used for everything except "raw" steps.
func (r *Script) Events() []RawEvent {
	var out []RawEvent
	for _, st := range r.steps {
		switch st.Action {
		case "press":
			out = append(out, RawEvent{Type: MouseDown, ClientX: st.X, ClientY: st.Y})
		case "move":
			out = append(out, RawEvent{Type: MouseMove, ClientX: st.X, ClientY: st.Y})
		case "release":
			out = append(out, RawEvent{Type: MouseUp, ClientX: st.X, ClientY: st.Y})
		case "click":
			out = append(out,
				RawEvent{Type: MouseDown, ClientX: st.X, ClientY: st.Y},
				RawEvent{Type: MouseUp, ClientX: st.X, ClientY: st.Y})
		case "drag":
			out = append(out, RawEvent{Type: MouseDown, ClientX: st.FromX, ClientY: st.FromY})
			steps := st.Frames - 2
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps+1)
				out = append(out, RawEvent{
					Type:    MouseMove,
					ClientX: st.FromX + (st.ToX-st.FromX)*t,
					ClientY: st.FromY + (st.ToY-st.FromY)*t,
				})
			}
			out = append(out, RawEvent{Type: MouseUp, ClientX: st.ToX, ClientY: st.ToY})
		case "raw":
			out = append(out, st.rawEvent())
		}
	}
	return out
}

func (st scriptStep) rawEvent() RawEvent {
	ev := RawEvent{Type: st.inputType, ClientX: st.X, ClientY: st.Y, Pressure: st.Pressure}
	if st.inputType.IsTouch() {
		ev.ChangedTouches = []Touch{{ClientX: st.X, ClientY: st.Y, Force: st.Pressure}}
	}
	return ev
}

// Step advances the script by one frame, queueing injected input on src.
// It waits for previously injected frames to drain before advancing. Raw
// steps are injected as the mouse action of the same class.
func (r *Script) Step(src *Source) {
	if r.done {
		return
	}
	if src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		src.InjectPress(st.X, st.Y)
	case "move":
		src.InjectMove(st.X, st.Y)
	case "release":
		src.InjectRelease(st.X, st.Y)
	case "click":
		src.InjectClick(st.X, st.Y)
	case "drag":
		src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "raw":
		switch st.inputType.Class() {
		case ClassStart:
			src.InjectPress(st.X, st.Y)
		case ClassMove:
			src.InjectMove(st.X, st.Y)
		case ClassEnd:
			src.InjectRelease(st.X, st.Y)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && src.Pending() == 0 {
		r.done = true
	}
}
