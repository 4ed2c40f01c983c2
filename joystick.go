package vstick

import (
	log "github.com/sirupsen/logrus"
)

type cycleState uint8

const (
	stateIdle      cycleState = iota // waiting for a pad-scoped start event
	stateActivated                   // tracking motion until the first end event
)

// Joystick is the activation state machine of a virtual joystick. Raw input is
// fed through Handle; results are observed through the output streams.
//
// Every raw event runs the geometry and presenter side effects exactly once,
// however many subscribers the streams have. A Joystick is not safe for
// concurrent use: feed it from a single goroutine.
type Joystick struct {
	layout    Layout
	presenter Presenter
	metrics   Metrics
	threshold float64
	log       *log.Entry

	state    cycleState
	cycle    uint64
	lastPlan Dir
	closed   bool

	// Events raised by subscribers while an event is being dispatched are
	// queued and processed afterwards, in order.
	dispatching bool
	pending     []RawEvent

	start    Stream[Sample]
	move     Stream[Event]
	release  Stream[Event]
	up       Stream[Dir]
	down     Stream[Dir]
	left     Stream[Dir]
	right    Stream[Dir]
	planDirX Stream[Dir]
	planDirY Stream[Dir]
}

// New measures layout and returns a Joystick in the idle state. A nil
// presenter is replaced by NopPresenter. Invalid layout metrics are returned
// as a *LayoutError.
func New(layout Layout, presenter Presenter, cfg Config) (*Joystick, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}
	j := &Joystick{
		layout:    layout,
		presenter: presenter,
		threshold: cfg.Threshold,
		log:       logger.WithField("component", "vstick"),
	}
	if err := j.Remeasure(); err != nil {
		return nil, err
	}
	return j, nil
}

// Remeasure re-reads the layout and recomputes the start position, radius and
// handle offset. On error the previous metrics stay in effect.
func (j *Joystick) Remeasure() error {
	m, err := MeasureLayout(j.layout)
	if err != nil {
		j.log.WithError(err).Warn("layout measurement failed")
		return err
	}
	j.metrics = m
	j.log.WithFields(log.Fields{
		"padSize": m.PadSize,
		"startX":  m.Start.X,
		"startY":  m.Start.Y,
	}).Debug("layout measured")
	return nil
}

// Metrics returns the current layout-derived values.
func (j *Joystick) Metrics() Metrics { return j.metrics }

// Threshold returns the force a move must exceed to report a direction.
func (j *Joystick) Threshold() float64 { return j.threshold }

// SetThreshold changes the direction threshold for subsequent events.
func (j *Joystick) SetThreshold(t float64) { j.threshold = t }

// Active reports whether an activation cycle is in progress.
func (j *Joystick) Active() bool { return j.state == stateActivated }

// Plan returns the most recent plan direction reported on Move, or DirNone
// before the first one.
func (j *Joystick) Plan() Dir { return j.lastPlan }

// Cycle returns the number of activation cycles started so far.
func (j *Joystick) Cycle() uint64 { return j.cycle }

// Start emits the normalized sample of every accepted activation.
func (j *Joystick) Start() *Stream[Sample] { return &j.start }

// Move emits motion events that carry a Direction. Events at or below the
// threshold still move the handle but are not emitted here.
func (j *Joystick) Move() *Stream[Event] { return &j.move }

// Release emits exactly one centered event per activation cycle.
func (j *Joystick) Release() *Stream[Event] { return &j.release }

// Up emits DirUp each time the plan direction changes to up.
func (j *Joystick) Up() *Stream[Dir] { return &j.up }

// Down emits DirDown each time the plan direction changes to down.
func (j *Joystick) Down() *Stream[Dir] { return &j.down }

// Left emits DirLeft each time the plan direction changes to left.
func (j *Joystick) Left() *Stream[Dir] { return &j.left }

// Right emits DirRight each time the plan direction changes to right.
func (j *Joystick) Right() *Stream[Dir] { return &j.right }

// PlanDirX emits the horizontal quadrant of every Move event.
func (j *Joystick) PlanDirX() *Stream[Dir] { return &j.planDirX }

// PlanDirY emits the vertical quadrant of every Move event.
func (j *Joystick) PlanDirY() *Stream[Dir] { return &j.planDirY }

// Close detaches the presenter and all subscribers. Later input is ignored.
func (j *Joystick) Close() {
	j.closed = true
	j.state = stateIdle
	j.presenter = NopPresenter{}
	j.pending = nil
	j.start.reset()
	j.move.reset()
	j.release.reset()
	j.up.reset()
	j.down.reset()
	j.left.reset()
	j.right.reset()
	j.planDirX.reset()
	j.planDirY.reset()
}

// Handle processes one raw input event to completion.
//
// Start events are pad-scoped: they only activate the joystick when they land
// inside the pad bounds. Move and end events are accepted anywhere, but only
// while a cycle is active. Default handling is suppressed only for events the
// joystick consumes.
func (j *Joystick) Handle(ev RawEvent) {
	if j.closed {
		return
	}
	if j.dispatching {
		j.pending = append(j.pending, ev)
		return
	}
	j.dispatching = true
	defer func() { j.dispatching = false }()

	j.dispatch(ev)
	for len(j.pending) > 0 && !j.closed {
		next := j.pending[0]
		j.pending = j.pending[1:]
		j.dispatch(next)
	}
	j.pending = nil
}

func (j *Joystick) dispatch(ev RawEvent) {
	s := sampleOf(ev)
	switch ev.Type.Class() {
	case ClassStart:
		if !j.metrics.Bounds.Contains(s.X, s.Y) {
			return
		}
		preventDefault(ev)
		j.activate(s)
	case ClassMove:
		if j.state != stateActivated {
			return
		}
		preventDefault(ev)
		j.moved(s)
	case ClassEnd:
		if j.state != stateActivated {
			return
		}
		preventDefault(ev)
		j.released(s)
	}
}

func preventDefault(ev RawEvent) {
	if ev.PreventDefault != nil {
		ev.PreventDefault()
	}
}

// activate begins a new cycle. A cycle still in progress is abandoned without
// a release event.
func (j *Joystick) activate(s Sample) {
	if j.state == stateActivated {
		j.log.WithField("cycle", j.cycle).Debug("activation superseded")
	}
	j.cycle++
	j.state = stateActivated
	j.presenter.RemoveTransition()
	j.log.WithFields(log.Fields{"cycle": j.cycle, "x": s.X, "y": s.Y}).Debug("joystick activated")
	j.start.publish(s)
}

func (j *Joystick) moved(s Sample) {
	e := BuildEvent(j.metrics, j.threshold, s, false)
	j.presenter.SetPosition(HandlePosition(j.metrics, e.ClampedPos))
	if e.Direction == nil {
		return
	}

	j.move.publish(e)
	d := *e.Direction
	j.planDirX.publish(d.X)
	j.planDirY.publish(d.Y)

	if d.Plan == j.lastPlan {
		return
	}
	j.lastPlan = d.Plan
	switch d.Plan {
	case DirUp:
		j.up.publish(DirUp)
	case DirDown:
		j.down.publish(DirDown)
	case DirLeft:
		j.left.publish(DirLeft)
	case DirRight:
		j.right.publish(DirRight)
	}
}

// released ends the cycle. Only the first end event of a cycle reaches here;
// the state change makes any further ones no-ops.
func (j *Joystick) released(s Sample) {
	j.state = stateIdle
	c := j.metrics.Center()
	j.presenter.RestoreTransitionAndCenter(c, c)

	e := BuildEvent(j.metrics, j.threshold, s, true)
	j.log.WithField("cycle", j.cycle).Debug("joystick released")
	j.release.publish(e)
}
