// Package demo runs the scripted walkthrough of the simulation core: it
// builds a standard match, exercises every mechanic in turn, and writes a
// sectioned report. It is glue around the sim package, not part of it;
// in particular the production-failure diagnostics live here, at the call
// site, because the forge and player deliberately report plain booleans.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/pixil98/go-log"

	"github.com/pixil98/go-sol/internal/display"
	"github.com/pixil98/go-sol/internal/sim"
)

// defaultUnits is the built-in catalog used when no unit assets are loaded.
var defaultUnits = []*sim.Unit{
	{Name: "Scout", Cost: 50, Description: "Fast, fragile reconnaissance craft"},
	{Name: "Lancer", Cost: 120, Description: "Line skirmisher with a focused beam"},
}

type factionInfo struct {
	Name    string
	Theme   string
	Bonuses []string
}

// factionCatalog describes the intended flavor of each faction. The core
// applies none of these bonuses yet; they are design targets.
var factionCatalog = []factionInfo{
	{
		Name:    "Radiant",
		Theme:   "Light-focused civilization",
		Bonuses: []string{"Enhanced mirror efficiency", "Better light detection"},
	},
	{
		Name:    "Aurum",
		Theme:   "Wealth-oriented faction",
		Bonuses: []string{"Higher starting Solarium", "Increased generation rate"},
	},
	{
		Name:    "Solari",
		Theme:   "Sun-worshipping empire",
		Bonuses: []string{"Stronger Stellar Forge", "Faster unit production"},
	},
}

// Walkthrough writes the demonstration report to out. It satisfies the
// go-service worker contract and exits once the report is complete.
type Walkthrough struct {
	out   io.Writer
	units []*sim.Unit
}

// NewWalkthrough creates a walkthrough writing to out. units may be nil to
// use the built-in catalog.
func NewWalkthrough(out io.Writer, units []*sim.Unit) *Walkthrough {
	if len(units) == 0 {
		units = defaultUnits
	}
	return &Walkthrough{out: out, units: units}
}

// Start writes the report and then parks until shutdown, so finishing the
// walkthrough does not take the other workers down with it.
func (w *Walkthrough) Start(ctx context.Context) error {
	if err := w.Report(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

// Report runs every demonstration section in order and writes the result.
func (w *Walkthrough) Report(ctx context.Context) error {
	fmt.Fprintln(w.out, display.Rule())
	fmt.Fprintln(w.out, "SoL - SPEED OF LIGHT RTS")
	fmt.Fprintln(w.out, "Game Mechanics Demonstration")
	fmt.Fprintln(w.out, display.Rule())

	if err := w.factions(); err != nil {
		return err
	}

	game, err := w.setup()
	if err != nil {
		return err
	}

	steps := []func(*sim.GameState) error{
		w.generation,
		w.lightMechanics,
		w.production,
		w.victory,
	}
	for _, step := range steps {
		if err := step(game); err != nil {
			return err
		}
	}

	fmt.Fprint(w.out, display.Section("DEMONSTRATION COMPLETE"))
	log.GetLogger(ctx).Info("demo walkthrough complete")
	return nil
}

func (w *Walkthrough) section(title, tmpl string, data any) error {
	body, err := render(tmpl, data)
	if err != nil {
		return fmt.Errorf("rendering %q: %w", title, err)
	}
	fmt.Fprint(w.out, display.Section(title))
	fmt.Fprint(w.out, display.Wrap(body))
	return nil
}

func (w *Walkthrough) factions() error {
	return w.section("DEMONSTRATION: Faction Features", factionsTemplate, struct {
		Factions []factionInfo
	}{factionCatalog})
}

type playerSetupRow struct {
	Index       int
	Name        string
	Faction     string
	Solarium    float64
	HasForge    bool
	MirrorCount int
	ForgeX      float64
	ForgeY      float64
}

func (w *Walkthrough) setup() (*sim.GameState, error) {
	game := sim.NewStandardGame([]sim.RosterEntry{
		{Name: "Commander Nova", Faction: sim.FactionRadiant},
		{Name: "Admiral Gold", Faction: sim.FactionAurum},
	})

	rows := make([]playerSetupRow, 0, len(game.Players))
	for i, p := range game.Players {
		row := playerSetupRow{
			Index:       i + 1,
			Name:        p.Name,
			Faction:     p.Faction.String(),
			Solarium:    p.Solarium,
			HasForge:    p.Forge != nil,
			MirrorCount: len(p.Mirrors),
		}
		if p.Forge != nil {
			row.ForgeX = p.Forge.Position.X
			row.ForgeY = p.Forge.Position.Y
		}
		rows = append(rows, row)
	}

	err := w.section("DEMONSTRATION: Game Setup", setupTemplate, struct {
		PlayerCount int
		SunCount    int
		Players     []playerSetupRow
	}{len(game.Players), len(game.Suns), rows})
	if err != nil {
		return nil, err
	}
	return game, nil
}

type mirrorRow struct {
	Index      int
	Light      bool
	Forge      bool
	Efficiency float64
}

func (w *Walkthrough) generation(game *sim.GameState) error {
	player := game.Players[0]
	initial := player.Solarium

	// 50 frames at 0.1s each: five seconds of simulated play.
	for i := 0; i < 50; i++ {
		game.Update(0.1)
	}

	mirrors := make([]mirrorRow, 0, len(player.Mirrors))
	for i, m := range player.Mirrors {
		mirrors = append(mirrors, mirrorRow{
			Index:      i + 1,
			Light:      m.HasLineOfSightToSun(game.Suns),
			Forge:      m.HasLineOfSightToForge(player.Forge, nil),
			Efficiency: m.Efficiency,
		})
	}

	return w.section("DEMONSTRATION: Resource Generation", generationTemplate, struct {
		Name    string
		Initial float64
		Final   float64
		Seconds float64
		Mirrors []mirrorRow
	}{player.Name, initial, player.Solarium, 5.0, mirrors})
}

func (w *Walkthrough) lightMechanics(game *sim.GameState) error {
	player := game.Players[0]

	return w.section("DEMONSTRATION: Light & Shadow Mechanics", lightTemplate, struct {
		Name          string
		LightReceived bool
		CanProduce    bool
		Health        float64
	}{player.Name, player.Forge.LightReceived, player.Forge.CanProduce(), player.Forge.Health})
}

func (w *Walkthrough) production(game *sim.GameState) error {
	player := game.Players[0]
	unit := w.units[0]

	fmt.Fprint(w.out, display.Section("DEMONSTRATION: Unit Production"))
	fmt.Fprintf(w.out, "Attempting unit production for %s\n", player.Name)
	fmt.Fprintf(w.out, "Current Solarium: %.1f Sol\n", player.Solarium)
	fmt.Fprintf(w.out, "Forge receiving light: %v\n", player.Forge.LightReceived)
	fmt.Fprintf(w.out, "\nAttempting to produce %q (Cost: %.0f Sol)...\n", unit.Name, unit.Cost)

	// Production and payment stay two explicit steps.
	if player.Forge.ProduceUnit(unit.Name, unit.Cost, player.Solarium) {
		player.SpendSolarium(unit.Cost)
		fmt.Fprintln(w.out, "Unit produced successfully!")
		fmt.Fprintf(w.out, "  Remaining Solarium: %.1f Sol\n", player.Solarium)
		fmt.Fprintf(w.out, "  Units in queue: %d\n", len(player.Forge.Queue))
		return nil
	}

	// The forge only reports failure; explaining it is this caller's job.
	fmt.Fprintln(w.out, "Production failed!")
	if !player.Forge.CanProduce() {
		fmt.Fprintln(w.out, "  Reason: Forge not receiving light")
	} else if player.Solarium < unit.Cost {
		fmt.Fprintln(w.out, "  Reason: Insufficient Solarium")
	}
	return nil
}

type victoryRow struct {
	Name        string
	Defeated    bool
	ForgeHealth float64
}

func (w *Walkthrough) victory(game *sim.GameState) error {
	rows := make([]victoryRow, 0, len(game.Players))
	for _, p := range game.Players {
		row := victoryRow{Name: p.Name, Defeated: p.IsDefeated()}
		if p.Forge != nil {
			row.ForgeHealth = p.Forge.Health
		}
		rows = append(rows, row)
	}

	winnerName := ""
	if winner := game.CheckVictory(); winner != nil {
		winnerName = winner.Name
	}

	return w.section("DEMONSTRATION: Victory Conditions", victoryTemplate, struct {
		Players []victoryRow
		Winner  string
	}{rows, winnerName})
}
