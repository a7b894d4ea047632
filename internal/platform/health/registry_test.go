package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MariuszKam/Organizer/internal/adapters/storage/memory"
	"github.com/MariuszKam/Organizer/internal/platform/health"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// failingChecker always reports the same error.
type failingChecker struct {
	name string
	err  error
}

func (f failingChecker) Name() string                        { return f.name }
func (f failingChecker) HealthCheck(_ context.Context) error { return f.err }

var _ ports.HealthChecker = failingChecker{}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_StoresHealthy(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(memory.NewUserStore())
	r.Register(memory.NewTaskStore())
	r.Register(memory.NewProjectStore())

	results := r.CheckAll(context.Background())

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, name := range []string{"user-store", "task-store", "project-store"} {
		if results[name] != nil {
			t.Errorf("%s check = %v, want nil", name, results[name])
		}
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("store unavailable")
	r := health.New()
	r.Register(memory.NewUserStore())
	r.Register(failingChecker{name: "broken", err: wantErr})

	results := r.CheckAll(context.Background())

	if results["user-store"] != nil {
		t.Errorf("user-store check = %v, want nil", results["user-store"])
	}
	if !errors.Is(results["broken"], wantErr) {
		t.Errorf("broken check = %v, want %v", results["broken"], wantErr)
	}
}

func TestCheckAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := health.New()
	r.Register(memory.NewUserStore())

	results := r.CheckAll(ctx)
	if results["user-store"] == nil {
		t.Error("user-store check = nil, want context error")
	}
}

func TestRegister_Concurrent(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Register(memory.NewUserStore())
		}()
	}
	wg.Wait()

	// All 50 share the same name; the map collapses them but the call
	// must not race.
	results := r.CheckAll(context.Background())
	if len(results) != 1 {
		t.Errorf("expected 1 named result, got %d", len(results))
	}
}
