package vstick

import (
	"fmt"
	"math"
)

// InputType identifies a raw input event kind, named after its DOM event.
type InputType uint8

const (
	PointerDown   InputType = iota // pad-scoped activation
	PointerMove                    // document-scoped motion
	PointerUp                      // document-scoped release
	PointerCancel                  // document-scoped release
	MouseDown                      // pad-scoped activation
	MouseMove                      // document-scoped motion
	MouseUp                        // document-scoped release
	TouchStart                     // pad-scoped activation
	TouchMove                      // document-scoped motion
	TouchEnd                       // document-scoped release
	TouchCancel                    // document-scoped release
)

var inputNames = [...]string{
	PointerDown:   "pointerdown",
	PointerMove:   "pointermove",
	PointerUp:     "pointerup",
	PointerCancel: "pointercancel",
	MouseDown:     "mousedown",
	MouseMove:     "mousemove",
	MouseUp:       "mouseup",
	TouchStart:    "touchstart",
	TouchMove:     "touchmove",
	TouchEnd:      "touchend",
	TouchCancel:   "touchcancel",
}

func (t InputType) String() string {
	if int(t) < len(inputNames) {
		return inputNames[t]
	}
	return fmt.Sprintf("InputType(%d)", uint8(t))
}

// ParseInputType returns the InputType for a DOM event name such as "touchend".
func ParseInputType(name string) (InputType, error) {
	for i, n := range inputNames {
		if n == name {
			return InputType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInput, name)
}

// InputClass groups input types by their role in an activation cycle.
type InputClass uint8

const (
	ClassStart InputClass = iota // begins an activation cycle
	ClassMove                    // drives motion while activated
	ClassEnd                     // terminates the cycle
)

// Class returns the role of t in an activation cycle.
func (t InputType) Class() InputClass {
	switch t {
	case PointerDown, MouseDown, TouchStart:
		return ClassStart
	case PointerMove, MouseMove, TouchMove:
		return ClassMove
	default:
		return ClassEnd
	}
}

// IsTouch reports whether t carries its coordinates in a changed-touch list.
func (t InputType) IsTouch() bool {
	return t >= TouchStart && t <= TouchCancel
}

// Touch is a single contact point of a touch event.
type Touch struct {
	ClientX, ClientY float64
	Force            float64
}

// RawEvent is an input event as raised by the host input system. Touch events
// carry their coordinates in ChangedTouches; all other kinds use ClientX and
// ClientY directly. PreventDefault, when set, suppresses the host's default
// handling (page scroll, text selection) for the event.
type RawEvent struct {
	Type             InputType
	ClientX, ClientY float64
	Force            float64
	Pressure         float64
	WebkitForce      float64
	ChangedTouches   []Touch
	PreventDefault   func()
}

// Normalize cancels the event's default handling and reduces it to a single
// coordinate and pressure sample. Touch events use the first changed touch; a
// touch event without any yields NaN coordinates, which propagate through the
// geometry rather than being dropped.
func Normalize(ev RawEvent) Sample {
	if ev.PreventDefault != nil {
		ev.PreventDefault()
	}
	return sampleOf(ev)
}

// sampleOf is Normalize without the PreventDefault side effect.
func sampleOf(ev RawEvent) Sample {
	if ev.Type.IsTouch() {
		if len(ev.ChangedTouches) == 0 {
			return Sample{X: math.NaN(), Y: math.NaN()}
		}
		t := ev.ChangedTouches[0]
		return Sample{X: t.ClientX, Y: t.ClientY, Pressure: firstPressure(t.Force)}
	}
	return Sample{
		X:        ev.ClientX,
		Y:        ev.ClientY,
		Pressure: firstPressure(ev.Force, ev.Pressure, ev.WebkitForce),
	}
}

// firstPressure returns the first usable (non-zero, non-NaN) reading.
func firstPressure(values ...float64) float64 {
	for _, v := range values {
		if v != 0 && !math.IsNaN(v) {
			return v
		}
	}
	return 0
}
