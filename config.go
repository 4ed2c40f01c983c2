package vstick

import (
	log "github.com/sirupsen/logrus"
)

// DefaultThreshold is the minimum force before a direction is reported.
const DefaultThreshold = 0.1

// Config holds the tunable parameters of a Joystick.
type Config struct {
	// Threshold is the force a move must exceed before a Direction is
	// computed. Zero reports a direction for any non-zero displacement.
	Threshold float64

	// Logger receives debug and warning output. Nil uses logrus' standard logger.
	Logger *log.Logger
}

// DefaultConfig returns a Config with Threshold set to DefaultThreshold.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// Layout supplies the host's layout metrics for the pad and its handle.
type Layout interface {
	// PadSize is the pad diameter in pixels.
	PadSize() float64
	// HandleSize is the handle diameter in pixels.
	HandleSize() float64
	// Offset is the pad's top-left corner in the coordinate space of incoming
	// input events (the cumulative page offset for DOM hosts).
	Offset() Vec2
}

// Presenter applies the joystick's visual side effects to the handle. It is
// only ever called from Joystick.Handle, one call at a time.
type Presenter interface {
	// RemoveTransition disables animated handle movement on activation.
	RemoveTransition()
	// SetPosition places the handle's top-left corner at (x, y) in pad-local
	// pixels, already rounded to two decimals.
	SetPosition(x, y float64)
	// RestoreTransitionAndCenter re-enables animated movement and returns the
	// handle to (x, y), the centered top-left position.
	RestoreTransitionAndCenter(x, y float64)
}

// NopPresenter discards all presentation requests.
type NopPresenter struct{}

func (NopPresenter) RemoveTransition()                       {}
func (NopPresenter) SetPosition(x, y float64)                {}
func (NopPresenter) RestoreTransitionAndCenter(x, y float64) {}

// StaticLayout is a fixed Layout for headless hosts.
type StaticLayout struct {
	Size   float64 // pad diameter
	Handle float64 // handle diameter
	At     Vec2    // pad top-left
}

func (l StaticLayout) PadSize() float64    { return l.Size }
func (l StaticLayout) HandleSize() float64 { return l.Handle }
func (l StaticLayout) Offset() Vec2        { return l.At }

// Metrics are the values derived from a Layout once per measurement.
type Metrics struct {
	PadSize      float64
	MaxDist      float64 // PadSize / 2
	HandleOffset float64 // HandleSize / 2
	Start        Vec2    // pad center in input coordinates
	Bounds       Rect    // pad-scoped area accepting start events
}

// Center returns the pad-local top-left position of a centered handle.
func (m Metrics) Center() float64 {
	return m.MaxDist - m.HandleOffset
}

// MeasureLayout derives Metrics from l. A non-positive or non-finite pad size,
// a negative or non-finite handle size, or a non-finite offset is reported as
// a *LayoutError rather than silently collapsing all motion to the center.
func MeasureLayout(l Layout) (Metrics, error) {
	size := l.PadSize()
	if !isFinite(size) || size <= 0 {
		return Metrics{}, &LayoutError{Field: "PadSize", Value: size}
	}
	handle := l.HandleSize()
	if !isFinite(handle) || handle < 0 {
		return Metrics{}, &LayoutError{Field: "HandleSize", Value: handle}
	}
	off := l.Offset()
	if !isFinite(off.X) {
		return Metrics{}, &LayoutError{Field: "Offset.X", Value: off.X}
	}
	if !isFinite(off.Y) {
		return Metrics{}, &LayoutError{Field: "Offset.Y", Value: off.Y}
	}

	maxDist := size / 2
	return Metrics{
		PadSize:      size,
		MaxDist:      maxDist,
		HandleOffset: handle / 2,
		Start:        Vec2{off.X + maxDist, off.Y + maxDist},
		Bounds:       Rect{X: off.X, Y: off.Y, Width: size, Height: size},
	}, nil
}
