package vstick

import "math"

// Wheel boundaries used by Classify. Computed once.
const (
	angle45 = math.Pi / 4
	angle90 = math.Pi / 2
)

// Dir is a discrete joystick direction.
type Dir uint8

const (
	DirNone  Dir = iota // no direction (below threshold)
	DirUp               // wheel angle in (45°, 135°)
	DirRight            // wheel angle in [0°, 45°] or (315°, 360°)
	DirDown             // wheel angle in (225°, 315°]
	DirLeft             // wheel angle in (135°, 225°]
)

var dirNames = [...]string{
	DirNone:  "",
	DirUp:    "up",
	DirRight: "right",
	DirDown:  "down",
	DirLeft:  "left",
}

func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "unknown"
}

// Direction is the discrete classification of a joystick event.
// X is DirLeft or DirRight, Y is DirUp or DirDown and Plan is one of the four
// 90°-wide sectors offset by 45°.
type Direction struct {
	X    Dir
	Y    Dir
	Plan Dir
}

// Classify maps a wheel angle in radians to a Direction. The wheel angle is
// Radians(180 - Angle(pointer, start)), so 0 is right and π/2 is up.
//
// The comparison chain is ordered; values exactly on a boundary fall through
// to the next branch that accepts them, and anything left over is right.
func Classify(rAngle float64) Direction {
	var plan Dir
	switch {
	case rAngle > angle45 && rAngle < angle45*3:
		plan = DirUp
	case rAngle > angle45*3 && rAngle <= angle45*5:
		plan = DirLeft
	case rAngle > angle45*5 && rAngle <= angle45*7:
		plan = DirDown
	default:
		plan = DirRight
	}

	x := DirRight
	if rAngle > angle90 && rAngle < angle90*3 {
		x = DirLeft
	}

	y := DirDown
	if rAngle < angle90*2 {
		y = DirUp
	}

	return Direction{X: x, Y: y, Plan: plan}
}
