package sim

import "github.com/pixil98/go-sol/internal/geom"

// BaseGenerationRate is the solarium yield of a fully efficient mirror,
// in sol per second of simulated time.
const BaseGenerationRate = 10.0

// DefaultMirrorHealth is the starting health of a freshly built mirror.
const DefaultMirrorHealth = 100.0

// Obstacle is anything that could block a light path. No occlusion geometry
// exists yet; the line-of-sight predicates ignore obstacles entirely.
type Obstacle interface {
	Bounds() (center geom.Vector, radius float64)
}

// Mirror is a solar mirror: it converts visibility into solarium each tick.
// Owner is the id of the owning player; the mirror never outlives it and
// the relation carries no ownership.
type Mirror struct {
	Position geom.Vector
	Owner    string
	Health   float64

	// Efficiency scales the generation rate and is meant to stay in [0,1].
	Efficiency float64
}

// NewMirror creates a mirror at full health and efficiency for the given owner.
func NewMirror(pos geom.Vector, owner string) *Mirror {
	return &Mirror{
		Position:   pos,
		Owner:      owner,
		Health:     DefaultMirrorHealth,
		Efficiency: 1.0,
	}
}

// HasLineOfSightToSun reports whether the mirror has a clear view of any sun.
// The occlusion test has not been built: any non-empty sun list counts as
// visible.
func (m *Mirror) HasLineOfSightToSun(suns []*Sun) bool {
	return len(suns) > 0
}

// HasLineOfSightToForge reports whether the mirror has a clear path to the
// forge. The collision test has not been built: the path always counts as
// clear.
func (m *Mirror) HasLineOfSightToForge(forge *Forge, obstacles []Obstacle) bool {
	return true
}

// GenerateSolarium returns the solarium produced over dt seconds of light
// receipt. Pure: it reads only the stored efficiency and mutates nothing.
func (m *Mirror) GenerateSolarium(dt float64) float64 {
	return BaseGenerationRate * m.Efficiency * dt
}
