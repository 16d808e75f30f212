package component_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hostkit-io/hostkit/component"
)

type fakeComponent struct {
	name     string
	startErr error
	stopErr  error
	started  bool
	stopped  bool
	events   *[]string
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	if f.events != nil {
		*f.events = append(*f.events, "start:"+f.name)
	}
	return nil
}

func (f *fakeComponent) Stop(context.Context) error {
	if f.stopErr != nil {
		return f.stopErr
	}
	f.stopped = true
	if f.events != nil {
		*f.events = append(*f.events, "stop:"+f.name)
	}
	return nil
}

func (f *fakeComponent) Health(context.Context) component.Health {
	status := component.StatusHealthy
	if !f.started {
		status = component.StatusUnhealthy
	}
	return component.Health{Name: f.name, Status: status}
}

func TestRegisterDuplicate(t *testing.T) {
	r := component.NewRegistry()
	if err := r.Register(&fakeComponent{name: "a"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register(&fakeComponent{name: "a"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestStartStopOrder(t *testing.T) {
	var events []string
	r := component.NewRegistry()
	_ = r.Register(&fakeComponent{name: "first", events: &events})
	_ = r.Register(&fakeComponent{name: "second", events: &events})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("start all: %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("stop all: %v", err)
	}

	want := []string{"start:first", "start:second", "stop:second", "stop:first"}
	if len(events) != len(want) {
		t.Fatalf("expected %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, events)
		}
	}
}

func TestStartAllAbortsOnFailure(t *testing.T) {
	r := component.NewRegistry()
	ok := &fakeComponent{name: "ok"}
	bad := &fakeComponent{name: "bad", startErr: errors.New("boom")}
	later := &fakeComponent{name: "later"}
	_ = r.Register(ok)
	_ = r.Register(bad)
	_ = r.Register(later)

	if err := r.StartAll(context.Background()); err == nil {
		t.Fatal("expected start failure")
	}
	if later.started {
		t.Fatal("components after the failure must not start")
	}

	// StopAll must still stop the component that did start.
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("stop all: %v", err)
	}
	if !ok.stopped {
		t.Fatal("started component was not stopped")
	}
}

func TestHealthAll(t *testing.T) {
	r := component.NewRegistry()
	_ = r.Register(&fakeComponent{name: "a"})
	_ = r.Register(&fakeComponent{name: "b"})
	_ = r.StartAll(context.Background())

	health := r.HealthAll(context.Background())
	if len(health) != 2 {
		t.Fatalf("expected 2 health entries, got %d", len(health))
	}
	for _, h := range health {
		if h.Status != component.StatusHealthy {
			t.Fatalf("expected healthy, got %s for %s", h.Status, h.Name)
		}
	}
}

func TestGet(t *testing.T) {
	r := component.NewRegistry()
	c := &fakeComponent{name: "a"}
	_ = r.Register(c)

	if got := r.Get("a"); got != c {
		t.Fatal("expected registered component")
	}
	if got := r.Get("missing"); got != nil {
		t.Fatal("expected nil for unknown name")
	}
}
