package driver

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultTickLength = time.Millisecond * 100
)

// ErrStop signals that a manager is finished and the loop should exit
// cleanly. Any other error from Tick aborts the loop and is returned.
var ErrStop = errors.New("driver stop requested")

// Manager is anything advanced once per tick.
type Manager interface {
	Tick(context.Context) error
}

// SimDriver drives the simulation in real time: it owns the only clock and
// fans each tick out to its managers in order. Nothing else advances the
// game.
type SimDriver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewSimDriver(managers []Manager, opts ...SimDriverOpt) *SimDriver {
	d := &SimDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// TickLength returns the configured wall-clock interval between ticks.
func (d *SimDriver) TickLength() time.Duration {
	return d.tickLength
}

func (d *SimDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if errors.Is(err, ErrStop) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

func (d *SimDriver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
