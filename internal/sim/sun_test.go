package sim

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-sol/internal/geom"
)

func TestNewSun(t *testing.T) {
	s := NewSun(geom.Vector{X: 10, Y: 20})

	testutil.AssertEqual(t, "x", s.Position.X, 10.0)
	testutil.AssertEqual(t, "y", s.Position.Y, 20.0)
	testutil.AssertEqual(t, "intensity", s.Intensity, 1.0)
	testutil.AssertEqual(t, "radius", s.Radius, 100.0)
}

func TestSun_Emit(t *testing.T) {
	s := NewSun(geom.Vector{X: 5, Y: 5})
	s.Intensity = 0.8

	dir := geom.Vector{X: 1, Y: 0}.Normalize()
	ray := s.Emit(dir)

	testutil.AssertEqual(t, "origin", ray.Origin, s.Position)
	testutil.AssertEqual(t, "direction", ray.Direction, dir)
	testutil.AssertEqual(t, "intensity", ray.Intensity, 0.8)
}

func TestLightRay_Intersects(t *testing.T) {
	ray := NewSun(geom.Vector{}).Emit(geom.Vector{X: 1, Y: 0})

	// No ray-circle math exists yet: every query reports a hit.
	testutil.AssertEqual(t, "placeholder hit", ray.Intersects(geom.Vector{X: 1000, Y: 1000}, 1), true)
}
