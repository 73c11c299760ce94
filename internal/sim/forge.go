package sim

import "github.com/pixil98/go-sol/internal/geom"

// DefaultForgeHealth is the starting health of a stellar forge.
const DefaultForgeHealth = 1000.0

// Forge is a stellar forge: the per-player main structure. It gates unit
// production on light receipt and queues produced unit types in FIFO order.
// Owner is the id of the owning player (non-owning back-reference).
type Forge struct {
	Position geom.Vector
	Owner    string
	Health   float64

	// LightReceived is recomputed every tick from the owner's mirrors.
	LightReceived bool

	// Queue holds the unit-type ids enqueued by ProduceUnit, oldest first.
	// There is no capacity limit and no build-time delay.
	Queue []string
}

// NewForge creates a forge at full health with its own empty production queue.
func NewForge(pos geom.Vector, owner string) *Forge {
	return &Forge{
		Position: pos,
		Owner:    owner,
		Health:   DefaultForgeHealth,
		Queue:    []string{},
	}
}

// CanProduce reports whether the forge is able to produce units: it must be
// receiving light and still standing.
func (f *Forge) CanProduce() bool {
	return f.LightReceived && f.Health > 0
}

// ProduceUnit attempts to enqueue a unit of the given type. It fails when
// the forge cannot produce or when the caller's solarium balance is below
// cost. On success the unit type is appended to the queue.
//
// ProduceUnit never deducts the cost itself: payment is the caller's
// separate step via Player.SpendSolarium. Keeping the two apart is
// deliberate; merging them would change observable behavior if production
// requests ever interleave.
func (f *Forge) ProduceUnit(unitType string, cost, playerSolarium float64) bool {
	if !f.CanProduce() {
		return false
	}
	if playerSolarium < cost {
		return false
	}
	f.Queue = append(f.Queue, unitType)
	return true
}

// UpdateLightStatus recomputes LightReceived from the owner's mirrors and
// the match's suns. Light is received when any mirror can see a sun and has
// a clear path to this forge; the scan stops at the first such mirror.
func (f *Forge) UpdateLightStatus(mirrors []*Mirror, suns []*Sun) {
	f.LightReceived = false
	for _, m := range mirrors {
		if m.HasLineOfSightToSun(suns) && m.HasLineOfSightToForge(f, nil) {
			f.LightReceived = true
			break
		}
	}
}
