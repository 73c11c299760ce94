package geom

import "math"

// Vector is a 2D point or direction in world space. It is a plain value
// type; operations return new vectors and never mutate the receiver.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the euclidean distance to another vector.
func (v Vector) Distance(other Vector) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize returns a unit-length copy of the vector. The zero vector has
// no direction, so it normalizes to itself rather than dividing by zero.
func (v Vector) Normalize() Vector {
	mag := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if mag == 0 {
		return Vector{}
	}
	return Vector{X: v.X / mag, Y: v.Y / mag}
}
