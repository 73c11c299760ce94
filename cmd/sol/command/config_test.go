package command

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func validConfig() *Config {
	return &Config{
		TickInterval: "100ms",
		Match: MatchConfig{
			Players: []PlayerConfig{
				{Name: "Player1", Faction: "Radiant"},
				{Name: "Player2", Faction: "Aurum"},
			},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Config)
		expErr string
	}{
		"valid": {
			mutate: func(c *Config) {},
		},
		"missing tick interval": {
			mutate: func(c *Config) { c.TickInterval = "" },
			expErr: "parsing tick_interval",
		},
		"tick interval too short": {
			mutate: func(c *Config) { c.TickInterval = "1ms" },
			expErr: "tick_interval must be at least 10ms",
		},
		"no players": {
			mutate: func(c *Config) { c.Match.Players = nil },
			expErr: "at least one player is required",
		},
		"player without name": {
			mutate: func(c *Config) { c.Match.Players[0].Name = "" },
			expErr: "player 0: name is required",
		},
		"unknown faction": {
			mutate: func(c *Config) { c.Match.Players[1].Faction = "Umbral" },
			expErr: `player 1: unknown faction "Umbral"`,
		},
		"bad nats timeout": {
			mutate: func(c *Config) { c.Nats.StartTimeout = "soon" },
			expErr: "parsing start_timeout",
		},
		"bad storage path": {
			mutate: func(c *Config) { c.Storage.Units.Path = "/nonexistent/assets" },
			expErr: "units: invalid path",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestMatchConfig_Roster(t *testing.T) {
	cfg := validConfig()

	roster, err := cfg.Match.Roster()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "entries", len(roster), 2)
	testutil.AssertEqual(t, "first name", roster[0].Name, "Player1")
	testutil.AssertEqual(t, "first faction", roster[0].Faction.String(), "Radiant")
}
