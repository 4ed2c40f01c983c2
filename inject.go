package vstick

// syntheticPointerEvent represents a single injected mouse frame.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed by the next Poll in place of the real mouse state.
func (s *Source) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Source) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
	})
}

// InjectRelease queues a button release at the given screen coordinates.
func (s *Source) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
	})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (s *Source) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// `frames` frames; the minimum is 2 (press + release).
func (s *Source) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of injected frames not yet consumed.
func (s *Source) Pending() int {
	return len(s.injectQueue)
}

func (s *Source) popInjected() (syntheticPointerEvent, bool) {
	if len(s.injectQueue) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return evt, true
}
