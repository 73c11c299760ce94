package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string        `json:"tick_interval"`
	Match        MatchConfig   `json:"match"`
	Storage      StorageConfig `json:"storage"`
	Nats         NatsConfig    `json:"nats"`
	Demo         DemoConfig    `json:"demo"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < 10*time.Millisecond {
		el.Add(fmt.Errorf("tick_interval must be at least 10ms"))
	}

	el.Add(c.Match.Validate())
	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())

	return el.Err()
}

type DemoConfig struct {
	// Enabled runs the scripted mechanics walkthrough alongside the match.
	Enabled bool `json:"enabled"`
}
