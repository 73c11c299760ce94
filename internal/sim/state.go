package sim

import (
	"github.com/google/uuid"

	"github.com/pixil98/go-sol/internal/geom"
)

// GameState is the single source of truth for one match. It owns every
// player and sun. It provides no internal synchronization: whatever drives
// Update must have exclusive access, and any external mutation (combat hits
// reducing health, say) needs the same single-writer discipline.
type GameState struct {
	MatchID string
	Players []*Player
	Suns    []*Sun

	// Elapsed is the total simulated time in seconds.
	Elapsed float64

	// Running is set once setup completes. There is no explicit ended
	// state; victory is polled via CheckVictory, never transitioned to.
	Running bool
}

// NewGameState creates an empty, not-yet-running match.
func NewGameState() *GameState {
	return &GameState{
		MatchID: uuid.NewString(),
		Players: []*Player{},
		Suns:    []*Sun{},
	}
}

// Update advances the match by dt seconds. For each non-defeated player, in
// list order: the forge's light status is recomputed from that player's own
// mirrors, then every mirror with both line-of-sight predicates satisfied
// credits its solarium yield to the player. Players never interact within a
// tick; no combat is resolved here.
func (g *GameState) Update(dt float64) {
	g.Elapsed += dt

	for _, p := range g.Players {
		if p.IsDefeated() {
			continue
		}

		if p.Forge != nil {
			p.Forge.UpdateLightStatus(p.Mirrors, g.Suns)
		}

		for _, m := range p.Mirrors {
			if m.HasLineOfSightToSun(g.Suns) && p.Forge != nil && m.HasLineOfSightToForge(p.Forge, nil) {
				p.AddSolarium(m.GenerateSolarium(dt))
			}
		}
	}
}

// CheckVictory returns the sole surviving player, or nil when zero or two or
// more players remain active. A freshly started match and a mutual defeat
// are indistinguishable here: both report no winner. That conflation is a
// known gap in the design, kept as-is pending a product call.
func (g *GameState) CheckVictory() *Player {
	var active []*Player
	for _, p := range g.Players {
		if !p.IsDefeated() {
			active = append(active, p)
		}
	}
	if len(active) == 1 {
		return active[0]
	}
	return nil
}

// InitializePlayer equips a player with its starting structures: a forge at
// forgePos and one mirror per entry of mirrorPositions, then adds the player
// to the match.
func (g *GameState) InitializePlayer(p *Player, forgePos geom.Vector, mirrorPositions []geom.Vector) {
	p.Forge = NewForge(forgePos, p.ID)
	for _, pos := range mirrorPositions {
		p.Mirrors = append(p.Mirrors, NewMirror(pos, p.ID))
	}
	g.Players = append(g.Players, p)
}

// PlayerByID returns the player with the given id, or nil.
func (g *GameState) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ActiveCount returns the number of non-defeated players.
func (g *GameState) ActiveCount() int {
	n := 0
	for _, p := range g.Players {
		if !p.IsDefeated() {
			n++
		}
	}
	return n
}
