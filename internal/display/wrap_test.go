package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	long := strings.Repeat("solarium ", 20)
	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line longer than %d: %q", DefaultWidth, line)
		}
	}
}

func TestSection(t *testing.T) {
	s := Section("DEMONSTRATION: Game Setup")

	testutil.AssertEqual(t, "rule count", strings.Count(s, Rule()), 2)
	if !strings.Contains(s, "DEMONSTRATION: Game Setup") {
		t.Errorf("section missing title: %q", s)
	}
}
