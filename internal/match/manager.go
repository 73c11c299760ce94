package match

import (
	"context"

	"github.com/pixil98/go-log"

	"github.com/pixil98/go-sol/internal/messaging"
	"github.com/pixil98/go-sol/internal/sim"
)

// Publisher is the slice of the event bus the manager needs.
type Publisher interface {
	PublishEvent(subject string, event any) error
}

// Manager adapts a GameState to the tick driver. Each tick advances the
// simulation by a fixed dt, publishes a state snapshot, and declares the
// winner once a sole survivor emerges. It is the only writer of the game
// state while the driver runs.
type Manager struct {
	game *sim.GameState
	dt   float64
	pub  Publisher

	winnerDeclared bool
}

// NewManager creates a manager advancing game by dt simulated seconds per
// tick. pub may be nil to run without event publication.
func NewManager(game *sim.GameState, dt float64, pub Publisher) *Manager {
	return &Manager{
		game: game,
		dt:   dt,
		pub:  pub,
	}
}

// Game returns the managed game state. Callers must not mutate it while the
// driver is running.
func (m *Manager) Game() *sim.GameState {
	return m.game
}

func (m *Manager) Tick(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	m.game.Update(m.dt)

	m.publish(ctx, messaging.SubjectTick, snapshot(m.game))

	winner := m.game.CheckVictory()
	if winner == nil || m.winnerDeclared {
		return nil
	}
	m.winnerDeclared = true

	logger.Infof("match %s won by %s (%s) after %.1fs", m.game.MatchID, winner.Name, winner.Faction, m.game.Elapsed)
	m.publish(ctx, messaging.SubjectVictory, VictoryEvent{
		MatchID: m.game.MatchID,
		Winner:  winner.Name,
		Faction: winner.Faction.String(),
		Elapsed: m.game.Elapsed,
	})

	return nil
}

// Produce requests a unit for the given player and settles payment on
// success. Enqueueing and payment stay two separate calls on the
// components; this method only sequences them. The outcome is published
// either way.
func (m *Manager) Produce(ctx context.Context, playerID string, unit *sim.Unit) bool {
	player := m.game.PlayerByID(playerID)
	if player == nil || player.Forge == nil {
		return false
	}

	accepted := player.Forge.ProduceUnit(unit.Name, unit.Cost, player.Solarium)
	if accepted {
		player.SpendSolarium(unit.Cost)
	}

	m.publish(ctx, messaging.SubjectProduction, ProductionEvent{
		MatchID:  m.game.MatchID,
		Player:   player.Name,
		UnitType: unit.Name,
		Cost:     unit.Cost,
		Accepted: accepted,
		Solarium: player.Solarium,
	})

	return accepted
}

// publish sends an event when a publisher is wired. Delivery problems are
// logged, never allowed to stall the simulation.
func (m *Manager) publish(ctx context.Context, subject string, event any) {
	if m.pub == nil {
		return
	}
	if err := m.pub.PublishEvent(subject, event); err != nil {
		log.GetLogger(ctx).Errorf("publishing %s: %s", subject, err)
	}
}
