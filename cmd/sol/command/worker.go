package command

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pixil98/go-service"

	"github.com/pixil98/go-sol/internal/demo"
	"github.com/pixil98/go-sol/internal/driver"
	"github.com/pixil98/go-sol/internal/match"
	"github.com/pixil98/go-sol/internal/messaging"
	"github.com/pixil98/go-sol/internal/sim"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	tick, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}

	// Create the event bus
	nats, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Resolve the scenario and roster, then set up the match
	scenario, err := cfg.buildScenario()
	if err != nil {
		return nil, err
	}
	roster, err := cfg.Match.Roster()
	if err != nil {
		return nil, fmt.Errorf("building roster: %w", err)
	}
	game := sim.NewGame(scenario, roster)

	manager := match.NewManager(game, tick.Seconds(), messaging.NewEventPublisher(nats))

	// Setup the sim driver
	driver := driver.NewSimDriver([]driver.Manager{
		manager,
	}, driver.WithTickLength(tick))

	workers := service.WorkerList{
		"nats":   nats,
		"driver": driver,
	}

	if cfg.Demo.Enabled {
		units, err := cfg.buildUnits()
		if err != nil {
			return nil, err
		}
		workers["demo"] = demo.NewWalkthrough(os.Stdout, units)
	}

	return workers, nil
}

func (c *Config) buildScenario() (*sim.Scenario, error) {
	if c.Match.Scenario == "" {
		return sim.StandardScenario(), nil
	}

	if !c.Storage.Scenarios.Configured() {
		return nil, fmt.Errorf("scenario %q requested but no scenario store configured", c.Match.Scenario)
	}
	store, err := c.Storage.Scenarios.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating scenario store: %w", err)
	}
	scenario := store.Get(c.Match.Scenario)
	if scenario == nil {
		return nil, fmt.Errorf("scenario %q not found", c.Match.Scenario)
	}
	return scenario, nil
}

func (c *Config) buildUnits() ([]*sim.Unit, error) {
	if !c.Storage.Units.Configured() {
		return nil, nil
	}
	store, err := c.Storage.Units.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating unit store: %w", err)
	}

	var units []*sim.Unit
	for _, u := range store.GetAll() {
		units = append(units, u)
	}
	// Map order is random; keep the walkthrough deterministic.
	sort.Slice(units, func(i, j int) bool { return units[i].Cost < units[j].Cost })
	return units, nil
}
