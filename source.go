package vstick

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// touchPoint is one touch contact as polled from ebiten.
type touchPoint struct {
	id   ebiten.TouchID
	x, y float64
}

// inputFrame is the polled input state for a single tick.
type inputFrame struct {
	cursorX, cursorY float64
	mouseDown        bool
	touches          []touchPoint
}

// Source turns Ebitengine's polled mouse and touch state into the raw event
// stream a Joystick consumes. The mouse produces mousedown/mousemove/mouseup;
// the first new touch contact produces touchstart/touchmove/touchend. Further
// simultaneous contacts are ignored.
//
// Call Update once per tick from the game's Update method.
type Source struct {
	// Mouse state.
	mouseDown bool
	hasCursor bool
	lastX     float64
	lastY     float64

	// Tracked touch contact.
	touchActive  bool
	touchID      ebiten.TouchID
	touchX       float64
	touchY       float64
	prevTouchIDs []ebiten.TouchID
	touchBuf     []ebiten.TouchID

	events      []RawEvent
	injectQueue []syntheticPointerEvent
}

// NewSource creates a Source with no pointer held.
func NewSource() *Source {
	return &Source{}
}

// Update polls input and feeds the resulting events to j.
func (s *Source) Update(j *Joystick) {
	for _, ev := range s.Poll() {
		j.Handle(ev)
	}
}

// Poll reads this tick's input and returns the raw events it produced. The
// returned slice is reused by the next call.
//
// When injected events are queued, one is consumed in place of the real mouse
// state; touch input is still read.
func (s *Source) Poll() []RawEvent {
	s.events = s.events[:0]
	if evt, ok := s.popInjected(); ok {
		s.diffMouse(evt.screenX, evt.screenY, evt.pressed)
	} else {
		mx, my := ebiten.CursorPosition()
		s.diffMouse(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}
	s.diffTouches(s.readTouches())
	return s.events
}

// readTouches polls the current touch contacts.
func (s *Source) readTouches() []touchPoint {
	s.touchBuf = ebiten.AppendTouchIDs(s.touchBuf[:0])
	if len(s.touchBuf) == 0 {
		return nil
	}
	points := make([]touchPoint, 0, len(s.touchBuf))
	for _, id := range s.touchBuf {
		tx, ty := ebiten.TouchPosition(id)
		points = append(points, touchPoint{id: id, x: float64(tx), y: float64(ty)})
	}
	return points
}

// diffFrame applies a whole polled frame. Used by tests in place of Poll.
func (s *Source) diffFrame(f inputFrame) []RawEvent {
	s.events = s.events[:0]
	s.diffMouse(f.cursorX, f.cursorY, f.mouseDown)
	s.diffTouches(f.touches)
	return s.events
}

// diffMouse runs the press/move/release state machine for the mouse.
func (s *Source) diffMouse(x, y float64, pressed bool) {
	moved := s.hasCursor && (x != s.lastX || y != s.lastY)

	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		s.emitMouse(MouseDown, x, y)
	case !pressed && s.mouseDown:
		s.mouseDown = false
		s.emitMouse(MouseUp, x, y)
	case moved:
		// Held or hovering; the joystick ignores motion while idle.
		s.emitMouse(MouseMove, x, y)
	}

	s.hasCursor = true
	s.lastX = x
	s.lastY = y
}

// diffTouches tracks a single contact: the first touch that was not present
// in the previous frame.
func (s *Source) diffTouches(touches []touchPoint) {
	if s.touchActive {
		found := false
		for _, tp := range touches {
			if tp.id != s.touchID {
				continue
			}
			found = true
			if tp.x != s.touchX || tp.y != s.touchY {
				s.touchX, s.touchY = tp.x, tp.y
				s.emitTouch(TouchMove, tp.x, tp.y)
			}
			break
		}
		if !found {
			s.touchActive = false
			s.emitTouch(TouchEnd, s.touchX, s.touchY)
		}
	}

	if !s.touchActive {
		for _, tp := range touches {
			if s.wasTouching(tp.id) {
				continue
			}
			s.touchActive = true
			s.touchID = tp.id
			s.touchX, s.touchY = tp.x, tp.y
			s.emitTouch(TouchStart, tp.x, tp.y)
			break
		}
	}

	s.prevTouchIDs = s.prevTouchIDs[:0]
	for _, tp := range touches {
		s.prevTouchIDs = append(s.prevTouchIDs, tp.id)
	}
}

func (s *Source) wasTouching(id ebiten.TouchID) bool {
	for _, prev := range s.prevTouchIDs {
		if prev == id {
			return true
		}
	}
	return false
}

func (s *Source) emitMouse(typ InputType, x, y float64) {
	s.events = append(s.events, RawEvent{Type: typ, ClientX: x, ClientY: y})
}

func (s *Source) emitTouch(typ InputType, x, y float64) {
	s.events = append(s.events, RawEvent{
		Type:           typ,
		ClientX:        x,
		ClientY:        y,
		ChangedTouches: []Touch{{ClientX: x, ClientY: y}},
	})
}
