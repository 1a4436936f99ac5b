// Package app sequences the planner's mutations: every write verb is a
// load, a pure state mutation, then a save. CLIs and UIs share this layer
// so the core packages stay free of persistence and rendering concerns.
package app

import (
	"context"
	"errors"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/store"
)

// Service provides high-level operations over the planner collections.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// State loads the current collections.
func (s *Service) State(ctx context.Context) (*planner.State, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Load(ctx)
}

// AddSubject creates and stores a new subject.
func (s *Service) AddSubject(ctx context.Context, name string, priority planner.Priority) (planner.Subject, error) {
	var sub planner.Subject
	err := s.mutate(ctx, func(st *planner.State) error {
		var err error
		sub, err = st.AddSubject(name, priority)
		return err
	})
	return sub, err
}

// RemoveSubject deletes a subject, cascading its tasks. Unknown ids are a
// no-op, matching State.
func (s *Service) RemoveSubject(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(st *planner.State) error {
		st.DeleteSubject(id)
		return nil
	})
}

// AddTask creates and stores a new task.
func (s *Service) AddTask(ctx context.Context, title string, deadline planner.Timestamp, subjectID int64) (planner.Task, error) {
	var task planner.Task
	err := s.mutate(ctx, func(st *planner.State) error {
		var err error
		task, err = st.AddTask(title, deadline, subjectID)
		return err
	})
	return task, err
}

// RemoveTask deletes a task.
func (s *Service) RemoveTask(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(st *planner.State) error {
		st.DeleteTask(id)
		return nil
	})
}

// ToggleTask flips a task's completed flag.
func (s *Service) ToggleTask(ctx context.Context, id int64) (planner.Task, error) {
	var task planner.Task
	err := s.mutate(ctx, func(st *planner.State) error {
		var err error
		task, err = st.ToggleTask(id)
		return err
	})
	return task, err
}

// AddSlot checks the candidate block for conflicts and stores it.
func (s *Service) AddSlot(ctx context.Context, day planner.Day, start, end string, subjectID int64) (planner.ScheduleSlot, error) {
	var slot planner.ScheduleSlot
	err := s.mutate(ctx, func(st *planner.State) error {
		var err error
		slot, err = st.AddSchedule(day, start, end, subjectID)
		return err
	})
	return slot, err
}

// RemoveSlot deletes a schedule slot.
func (s *Service) RemoveSlot(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(st *planner.State) error {
		st.DeleteSchedule(id)
		return nil
	})
}

// Reset clears every stored collection and the display preference.
func (s *Service) Reset(ctx context.Context) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.Reset()
}

// Theme returns the stored display preference.
func (s *Service) Theme(ctx context.Context) (string, error) {
	if s.Persistence == nil {
		return "", errNoPersistence
	}
	return s.Persistence.Theme(), nil
}

// SetTheme stores the display preference.
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.SetTheme(theme)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// mutate runs one load-mutate-save cycle. A mutation error leaves the
// stored collections untouched.
func (s *Service) mutate(ctx context.Context, fn func(*planner.State) error) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	st, err := s.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return s.Persistence.Save(st)
}
