package monolith

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fd1az/project-tracker/internal/config"
	"github.com/fd1az/project-tracker/internal/di"
	"github.com/fd1az/project-tracker/internal/logger"
)

type recordingModule struct {
	name   string
	events *[]string
	regErr error
}

func (m *recordingModule) RegisterServices(c di.Container) error {
	*m.events = append(*m.events, "register:"+m.name)
	c.Register(m.name, m.name)
	return m.regErr
}

func (m *recordingModule) Startup(_ context.Context, mono Monolith) error {
	*m.events = append(*m.events, "start:"+m.name)
	if mono.Services().Get(m.name).(string) != m.name {
		return errors.New("service not registered")
	}
	return nil
}

func newTestApp() *app {
	return New(&config.Config{}, logger.New(io.Discard, logger.LevelInfo, "test", nil))
}

func TestApp_ModulesLifecycle(t *testing.T) {
	a := newTestApp()
	var events []string
	mods := []Module{
		&recordingModule{name: "a", events: &events},
		&recordingModule{name: "b", events: &events},
	}

	if err := a.RegisterModules(mods...); err != nil {
		t.Fatalf("RegisterModules() error = %v", err)
	}
	if err := a.StartModules(context.Background(), mods...); err != nil {
		t.Fatalf("StartModules() error = %v", err)
	}

	want := []string{"register:a", "register:b", "start:a", "start:b"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %s, want %s", i, events[i], want[i])
		}
	}

	if a.Services().Get("config").(*config.Config) != a.Config() {
		t.Error("config not registered as a global service")
	}
}

func TestApp_RegisterStopsOnError(t *testing.T) {
	a := newTestApp()
	var events []string
	boom := errors.New("boom")

	err := a.RegisterModules(
		&recordingModule{name: "a", events: &events, regErr: boom},
		&recordingModule{name: "b", events: &events},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("RegisterModules() error = %v, want boom", err)
	}
	if len(events) != 1 {
		t.Errorf("events = %v, want only the first module", events)
	}
}

func TestApp_CloseReverseOrder(t *testing.T) {
	a := newTestApp()
	var order []int
	first := errors.New("first")

	a.OnClose(func() error { order = append(order, 1); return nil })
	a.OnClose(func() error { order = append(order, 2); return first })
	a.OnClose(func() error { order = append(order, 3); return errors.New("later") })

	err := a.Close()
	if err == nil || err.Error() != "later" {
		t.Errorf("Close() error = %v, want the first error encountered", err)
	}
	if len(order) != 3 || order[0] != 3 || order[2] != 1 {
		t.Errorf("close order = %v, want [3 2 1]", order)
	}
	if err := a.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
