package sim

import "github.com/pixil98/go-sol/internal/geom"

// RosterEntry names one participant for match setup.
type RosterEntry struct {
	Name    string
	Faction Faction
}

// standardScenario is the built-in two-player layout: one sun at the origin,
// forges at ±500 on the x-axis, each with two mirrors offset 50 and 100
// units toward center.
var standardScenario = &Scenario{
	Name: "standard",
	Suns: []SunSpec{
		{Position: geom.Vector{X: 0, Y: 0}},
	},
	Slots: []StartSlot{
		{
			Forge:   geom.Vector{X: -500, Y: 0},
			Mirrors: []geom.Vector{{X: -450, Y: 0}, {X: -400, Y: 0}},
		},
		{
			Forge:   geom.Vector{X: 500, Y: 0},
			Mirrors: []geom.Vector{{X: 450, Y: 0}, {X: 400, Y: 0}},
		},
	},
}

// StandardScenario returns a copy of the built-in two-player layout.
func StandardScenario() *Scenario {
	sc := *standardScenario
	return &sc
}

// NewStandardGame builds a running match on the standard layout. Roster
// entries beyond the available start slots are silently dropped.
func NewStandardGame(roster []RosterEntry) *GameState {
	return NewGame(standardScenario, roster)
}

// NewGame builds a running match from a scenario. Roster entries are
// assigned to start slots in order; entries beyond the last slot are
// silently dropped rather than rejected.
func NewGame(scenario *Scenario, roster []RosterEntry) *GameState {
	g := NewGameState()

	for _, spec := range scenario.Suns {
		g.Suns = append(g.Suns, spec.Build())
	}

	for i, entry := range roster {
		if i >= len(scenario.Slots) {
			break
		}
		slot := scenario.Slots[i]
		p := NewPlayer(entry.Name, entry.Faction)
		g.InitializePlayer(p, slot.Forge, slot.Mirrors)
	}

	g.Running = true
	return g
}
