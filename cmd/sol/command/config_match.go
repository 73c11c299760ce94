package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-sol/internal/sim"
)

type MatchConfig struct {
	// Players lists the roster in slot order. Entries beyond the scenario's
	// start slots are dropped at setup, not rejected here.
	Players []PlayerConfig `json:"players"`

	// Scenario selects a layout from the scenario store. Empty means the
	// built-in standard two-player layout.
	Scenario string `json:"scenario,omitempty"`
}

func (c *MatchConfig) Validate() error {
	el := errors.NewErrorList()

	if len(c.Players) == 0 {
		el.Add(fmt.Errorf("at least one player is required"))
	}
	for i, p := range c.Players {
		if err := p.Validate(); err != nil {
			el.Add(fmt.Errorf("player %d: %w", i, err))
		}
	}

	return el.Err()
}

// Roster resolves the configured players to setup entries.
func (c *MatchConfig) Roster() ([]sim.RosterEntry, error) {
	roster := make([]sim.RosterEntry, 0, len(c.Players))
	for i, p := range c.Players {
		faction, err := sim.ParseFaction(p.Faction)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		roster = append(roster, sim.RosterEntry{Name: p.Name, Faction: faction})
	}
	return roster, nil
}

type PlayerConfig struct {
	Name    string `json:"name"`
	Faction string `json:"faction"`
}

func (c *PlayerConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if _, err := sim.ParseFaction(c.Faction); err != nil {
		el.Add(err)
	}

	return el.Err()
}
