package match

import "github.com/pixil98/go-sol/internal/sim"

// PlayerSnapshot is one player's externally visible state at a tick.
type PlayerSnapshot struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Faction       string  `json:"faction"`
	Solarium      float64 `json:"solarium"`
	ForgeHealth   float64 `json:"forge_health"`
	LightReceived bool    `json:"light_received"`
	QueueLength   int     `json:"queue_length"`
	Defeated      bool    `json:"defeated"`
}

// TickEvent is published after every simulation step.
type TickEvent struct {
	MatchID string           `json:"match_id"`
	Elapsed float64          `json:"elapsed"`
	Players []PlayerSnapshot `json:"players"`
}

// ProductionEvent is published whenever a production request settles,
// accepted or not.
type ProductionEvent struct {
	MatchID  string  `json:"match_id"`
	Player   string  `json:"player"`
	UnitType string  `json:"unit_type"`
	Cost     float64 `json:"cost"`
	Accepted bool    `json:"accepted"`
	Solarium float64 `json:"solarium"`
}

// VictoryEvent is published once, when a sole survivor first emerges.
type VictoryEvent struct {
	MatchID string  `json:"match_id"`
	Winner  string  `json:"winner"`
	Faction string  `json:"faction"`
	Elapsed float64 `json:"elapsed"`
}

// snapshot captures the current match state for publication.
func snapshot(g *sim.GameState) TickEvent {
	ev := TickEvent{
		MatchID: g.MatchID,
		Elapsed: g.Elapsed,
		Players: make([]PlayerSnapshot, 0, len(g.Players)),
	}
	for _, p := range g.Players {
		ps := PlayerSnapshot{
			ID:       p.ID,
			Name:     p.Name,
			Faction:  p.Faction.String(),
			Solarium: p.Solarium,
			Defeated: p.IsDefeated(),
		}
		if p.Forge != nil {
			ps.ForgeHealth = p.Forge.Health
			ps.LightReceived = p.Forge.LightReceived
			ps.QueueLength = len(p.Forge.Queue)
		}
		ev.Players = append(ev.Players, ps)
	}
	return ev
}
