package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type countingManager struct {
	ticks int
	err   error
}

func (m *countingManager) Tick(ctx context.Context) error {
	m.ticks++
	return m.err
}

func TestSimDriver_TickFansOutInOrder(t *testing.T) {
	var order []string
	first := managerFunc(func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	second := managerFunc(func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	d := NewSimDriver([]Manager{first, second})
	if err := d.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "calls", len(order), 2)
	testutil.AssertEqual(t, "first", order[0], "first")
	testutil.AssertEqual(t, "second", order[1], "second")
}

func TestSimDriver_TickStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	failing := &countingManager{err: boom}
	after := &countingManager{}

	d := NewSimDriver([]Manager{failing, after})
	err := d.Tick(context.Background())

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	testutil.AssertEqual(t, "later manager skipped", after.ticks, 0)
}

func TestSimDriver_StartStopsCleanly(t *testing.T) {
	m := &countingManager{err: ErrStop}
	d := NewSimDriver([]Manager{m}, WithTickLength(time.Millisecond))

	done := make(chan error, 1)
	go func() { done <- d.Start(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("driver did not stop")
	}
	testutil.AssertEqual(t, "ticks", m.ticks, 1)
}

func TestSimDriver_StartHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewSimDriver(nil, WithTickLength(time.Millisecond))
	if err := d.Start(ctx); err != nil {
		t.Fatalf("expected nil on canceled context, got %v", err)
	}
}

type managerFunc func(context.Context) error

func (f managerFunc) Tick(ctx context.Context) error { return f(ctx) }
