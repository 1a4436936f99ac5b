package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func newTestPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func TestLoadEmptyStore(t *testing.T) {
	p := newTestPersistence(t)
	st, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Subjects) != 0 || len(st.Tasks) != 0 || len(st.Schedules) != 0 {
		t.Fatalf("absent keys must read as empty collections: %+v", st)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	st := planner.NewState()
	sub, err := st.AddSubject("Math", planner.High)
	if err != nil {
		t.Fatalf("AddSubject: %v", err)
	}
	due, err := planner.ParseDeadline("2025-03-01")
	if err != nil {
		t.Fatalf("ParseDeadline: %v", err)
	}
	task, err := st.AddTask("Derivatives", due, sub.ID)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	slot, err := st.AddSchedule(planner.Monday, "09:00", "10:30", sub.ID)
	if err != nil {
		t.Fatalf("AddSchedule: %v", err)
	}

	if err := p.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Subjects) != 1 || got.Subjects[0] != sub {
		t.Fatalf("subjects differ: %+v vs %+v", got.Subjects, sub)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].ID != task.ID || got.Tasks[0].Title != task.Title {
		t.Fatalf("tasks differ: %+v vs %+v", got.Tasks, task)
	}
	if !got.Tasks[0].Deadline.Equal(task.Deadline.Time) {
		t.Fatalf("deadline differs: %v vs %v", got.Tasks[0].Deadline, task.Deadline)
	}
	if len(got.Schedules) != 1 || got.Schedules[0] != slot {
		t.Fatalf("schedules differ: %+v vs %+v", got.Schedules, slot)
	}
}

func TestLoadTracksIDs(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	st := planner.NewState()
	sub, _ := st.AddSubject("Math", planner.Low)
	if err := p.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	other, err := got.AddSubject("Biology", planner.Low)
	if err != nil {
		t.Fatalf("AddSubject: %v", err)
	}
	if other.ID == sub.ID {
		t.Fatalf("loaded state reissued id %d", sub.ID)
	}
}

func TestThemeAndReset(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	if got := p.Theme(); got != "" {
		t.Fatalf("unset theme = %q, want empty", got)
	}
	if err := p.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if got := p.Theme(); got != "dark" {
		t.Fatalf("theme = %q, want dark", got)
	}

	st := planner.NewState()
	if _, err := st.AddSubject("Math", planner.Low); err != nil {
		t.Fatalf("AddSubject: %v", err)
	}
	if err := p.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := p.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load after reset: %v", err)
	}
	if len(got.Subjects) != 0 {
		t.Fatalf("reset left %d subjects behind", len(got.Subjects))
	}
	if theme := p.Theme(); theme != "" {
		t.Fatalf("reset left theme %q behind", theme)
	}
	// Resetting an already-empty store is fine.
	if err := p.Reset(); err != nil {
		t.Fatalf("second Reset: %v", err)
	}
}

func TestWatchSeesWrites(t *testing.T) {
	p := newTestPersistence(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	st := planner.NewState()
	if _, err := st.AddSubject("Math", planner.Low); err != nil {
		t.Fatalf("AddSubject: %v", err)
	}
	if err := p.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("watch channel closed unexpectedly")
		}
		_ = ev
	case <-time.After(5 * time.Second):
		t.Fatal("no watch event after save")
	}

	cancel()
	for range events {
		// drain until closed
	}
}
