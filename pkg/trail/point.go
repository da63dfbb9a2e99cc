package trail

// Point is a position recorded by a PointTrail.
type Point struct {
	X, Y float64
}
