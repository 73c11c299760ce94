package sim

import "github.com/google/uuid"

// StartingSolarium is every player's opening balance.
const StartingSolarium = 100.0

// Player aggregates one side of a match: its forge, mirrors and solarium
// balance. Mirrors and the forge are exclusively owned by the player; they
// refer back to it only by id.
type Player struct {
	ID      string
	Name    string
	Faction Faction

	// Solarium is the player's currency balance.
	Solarium float64

	// Forge is nil until the player is initialized with starting structures.
	Forge *Forge

	// Mirrors holds the player's solar mirrors in build order.
	Mirrors []*Mirror

	// Units will hold produced unit instances once units are modeled.
	Units []string
}

// NewPlayer creates a player with the starting solarium balance and no
// structures. Each player gets its own freshly allocated slices.
func NewPlayer(name string, faction Faction) *Player {
	return &Player{
		ID:       uuid.NewString(),
		Name:     name,
		Faction:  faction,
		Solarium: StartingSolarium,
		Mirrors:  []*Mirror{},
		Units:    []string{},
	}
}

// IsDefeated reports whether the player is out of the game: no forge, or a
// forge at zero or negative health.
func (p *Player) IsDefeated() bool {
	return p.Forge == nil || p.Forge.Health <= 0
}

// AddSolarium credits the given amount unconditionally. Negative amounts
// are not rejected.
func (p *Player) AddSolarium(amount float64) {
	p.Solarium += amount
}

// SpendSolarium debits the given amount if the balance covers it. The debit
// is all-or-nothing: on an insufficient balance it returns false and leaves
// the balance untouched.
func (p *Player) SpendSolarium(amount float64) bool {
	if p.Solarium >= amount {
		p.Solarium -= amount
		return true
	}
	return false
}
