package vstick

import "math"

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle returns the angle in degrees of the vector from a to b, in the range
// (-180, 180]. With screen coordinates a point directly right of b yields 180
// and a point directly above b yields 90.
func Angle(a, b Vec2) float64 {
	return Degrees(math.Atan2(b.Y-a.Y, b.X-a.X))
}

// FindCoord returns the point at radius from origin along angleDeg, using the
// same convention as Angle: FindCoord(o, Distance(p, o), Angle(p, o)) == p.
func FindCoord(origin Vec2, radius, angleDeg float64) Vec2 {
	a := Radians(angleDeg)
	return Vec2{
		X: origin.X - radius*math.Cos(a),
		Y: origin.Y - radius*math.Sin(a),
	}
}

// NormalizedPosition scales the displacement of p from origin by maxDist so
// that points on the max-radius circle map onto the unit circle.
func NormalizedPosition(maxDist float64, p, origin Vec2) Vec2 {
	return Vec2{
		X: (p.X - origin.X) / maxDist,
		Y: (p.Y - origin.Y) / maxDist,
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}
