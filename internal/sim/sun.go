package sim

import "github.com/pixil98/go-sol/internal/geom"

// Default emitter values for a sun placed without explicit tuning.
const (
	DefaultSunIntensity = 1.0
	DefaultSunRadius    = 100.0
)

// Sun is a fixed light source. Suns are placed at match setup and never
// move or change intensity afterwards.
type Sun struct {
	Position  geom.Vector
	Intensity float64
	Radius    float64
}

// NewSun creates a sun at the given position with default intensity and radius.
func NewSun(pos geom.Vector) *Sun {
	return &Sun{
		Position:  pos,
		Intensity: DefaultSunIntensity,
		Radius:    DefaultSunRadius,
	}
}

// Emit creates a light ray from the sun's position carrying its current
// intensity. The direction is taken as given and is not required to be
// normalized.
func (s *Sun) Emit(direction geom.Vector) LightRay {
	return LightRay{
		Origin:    s.Position,
		Direction: direction,
		Intensity: s.Intensity,
	}
}

// LightRay is a directed ray used by the (future) occlusion engine.
type LightRay struct {
	Origin    geom.Vector
	Direction geom.Vector
	Intensity float64
}

// Intersects reports whether the ray hits a circle at pos with the given
// radius. The real ray-circle test has not been built; every ray currently
// counts as a hit.
func (r LightRay) Intersects(pos geom.Vector, radius float64) bool {
	return true
}
