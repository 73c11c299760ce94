package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pixil98/go-sol/internal/sim"
)

func runWalkthrough(t *testing.T, units []*sim.Unit) string {
	t.Helper()

	var buf bytes.Buffer
	w := NewWalkthrough(&buf, units)
	if err := w.Report(context.Background()); err != nil {
		t.Fatalf("walkthrough failed: %v", err)
	}
	return buf.String()
}

func TestWalkthrough_CoversAllSections(t *testing.T) {
	out := runWalkthrough(t, nil)

	sections := []string{
		"DEMONSTRATION: Faction Features",
		"DEMONSTRATION: Game Setup",
		"DEMONSTRATION: Resource Generation",
		"DEMONSTRATION: Light & Shadow Mechanics",
		"DEMONSTRATION: Unit Production",
		"DEMONSTRATION: Victory Conditions",
		"DEMONSTRATION COMPLETE",
	}
	for _, s := range sections {
		if !strings.Contains(out, s) {
			t.Errorf("report missing section %q", s)
		}
	}
}

func TestWalkthrough_ReportsGeneratedIncome(t *testing.T) {
	out := runWalkthrough(t, nil)

	// Five simulated seconds at two mirrors: 100 generated on top of 100.
	if !strings.Contains(out, "Initial Solarium: 100.0 Sol") {
		t.Error("report missing initial balance")
	}
	if !strings.Contains(out, "Final Solarium: 200.0 Sol") {
		t.Error("report missing final balance")
	}
	if !strings.Contains(out, "Generated: 100.0 Sol in 5 seconds") {
		t.Error("report missing generation summary")
	}
}

func TestWalkthrough_ProductionSucceedsAndPays(t *testing.T) {
	out := runWalkthrough(t, nil)

	if !strings.Contains(out, `Attempting to produce "Scout" (Cost: 50 Sol)`) {
		t.Error("report missing production attempt")
	}
	if !strings.Contains(out, "Unit produced successfully!") {
		t.Error("expected production to succeed after income phase")
	}
	if !strings.Contains(out, "Remaining Solarium: 150.0 Sol") {
		t.Error("expected payment to be deducted after production")
	}
}

func TestWalkthrough_DiagnosesExpensiveUnit(t *testing.T) {
	out := runWalkthrough(t, []*sim.Unit{{Name: "Titan", Cost: 100000}})

	if !strings.Contains(out, "Production failed!") {
		t.Error("expected production to fail for unaffordable unit")
	}
	if !strings.Contains(out, "Reason: Insufficient Solarium") {
		t.Error("expected insufficient-funds diagnosis")
	}
}

func TestWalkthrough_NoWinnerWhileContested(t *testing.T) {
	out := runWalkthrough(t, nil)

	if !strings.Contains(out, "Battle continues...") {
		t.Error("expected no winner in the scripted match")
	}
}
