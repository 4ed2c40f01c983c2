package vstick

import "math"

// EventAngle holds the wheel angle of an event: 0 is right, 90° is up.
type EventAngle struct {
	Radian float64
	Degree float64
}

// Event is a joystick motion or release event.
type Event struct {
	PointerPos    Vec2 // sample position, Y shifted by the handle offset
	ClampedPos    Vec2 // PointerPos projected onto the max-radius circle if outside
	NormalizedPos Vec2 // ClampedPos relative to start, scaled by MaxDist
	Force         float64
	Pressure      float64
	Distance      float64
	Angle         EventAngle
	// Direction is nil unless Force exceeds the configured threshold.
	Direction *Direction
}

// BuildEvent turns a sample into an Event relative to m. For a release the
// pointer position is forced to the start position, so the event reports a
// return to center regardless of where the input ended; the sample then only
// contributes its pressure.
//
// Force is the distance divided by the full pad size, so it never exceeds 0.5.
func BuildEvent(m Metrics, threshold float64, s Sample, release bool) Event {
	pointerPos := Vec2{X: s.X, Y: s.Y - m.HandleOffset}
	if release {
		pointerPos = m.Start
	}

	dist := Distance(pointerPos, m.Start)
	eventAngle := Angle(pointerPos, m.Start)

	clampedPos := pointerPos
	if dist > m.MaxDist {
		dist = m.MaxDist
		clampedPos = FindCoord(m.Start, dist, eventAngle)
		// FindCoord can round a few ulps outside the circle.
		for r := dist; Distance(clampedPos, m.Start) > m.MaxDist; {
			r = math.Nextafter(r, 0)
			clampedPos = FindCoord(m.Start, r, eventAngle)
		}
	}
	normalizedPos := NormalizedPosition(m.MaxDist, clampedPos, m.Start)

	force := dist / m.PadSize
	degree := 180 - eventAngle
	rAngle := Radians(degree)

	var direction *Direction
	if force > threshold {
		d := Classify(rAngle)
		direction = &d
	}

	return Event{
		PointerPos:    pointerPos,
		ClampedPos:    clampedPos,
		NormalizedPos: normalizedPos,
		Force:         force,
		Pressure:      s.Pressure,
		Distance:      dist,
		Angle:         EventAngle{Radian: rAngle, Degree: degree},
		Direction:     direction,
	}
}

// HandlePosition returns the pad-local top-left position of the handle for a
// clamped position, rounded to two decimals.
func HandlePosition(m Metrics, clamped Vec2) (x, y float64) {
	x = round2(clamped.X - m.Start.X + m.MaxDist - m.HandleOffset)
	y = round2(clamped.Y - m.Start.Y + m.MaxDist - m.HandleOffset)
	return x, y
}

// round2 rounds half up like the pixel style rounding of the handle.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
