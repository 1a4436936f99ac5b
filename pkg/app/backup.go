package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"tableflip.dev/studyplan/pkg/planner"
)

// DefaultBackupName is the filename the export command writes when no
// output path is given.
const DefaultBackupName = "study_planner_backup.json"

// Backup is the export artifact: all three collections in one JSON object.
type Backup struct {
	Subjects  []planner.Subject      `json:"subjects"`
	Tasks     []planner.Task         `json:"tasks"`
	Schedules []planner.ScheduleSlot `json:"schedules"`
}

// Export writes the current collections to w as pretty-printed JSON.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	st, err := s.State(ctx)
	if err != nil {
		return err
	}
	b := Backup{Subjects: st.Subjects, Tasks: st.Tasks, Schedules: st.Schedules}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("app: encode backup: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("app: write backup: %w", err)
	}
	return nil
}

// Import reads a backup written by Export and replaces the stored
// collections with its contents. Record ids and field values survive the
// round trip unchanged.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("app: read backup: %w", err)
	}
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("app: decode backup: %w", err)
	}
	st := planner.NewState()
	if b.Subjects != nil {
		st.Subjects = b.Subjects
	}
	if b.Tasks != nil {
		st.Tasks = b.Tasks
	}
	if b.Schedules != nil {
		st.Schedules = b.Schedules
	}
	return s.Persistence.Save(st)
}
