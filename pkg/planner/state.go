package planner

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/studyplan/pkg/timeslot"
)

// State is the in-memory aggregate of all three collections. It is created
// once per session, threaded through calls explicitly, and mutated only by
// its methods. Persistence and rendering are the caller's concern: every
// method here is a pure collection mutation.
//
// Collections are append/remove only. Insertion order is preserved for
// display; nothing depends on it semantically.
type State struct {
	Subjects  []Subject      `json:"subjects"`
	Tasks     []Task         `json:"tasks"`
	Schedules []ScheduleSlot `json:"schedules"`

	lastID int64
}

// NewState returns an empty state with non-nil collections.
func NewState() *State {
	return &State{
		Subjects:  []Subject{},
		Tasks:     []Task{},
		Schedules: []ScheduleSlot{},
	}
}

// nextID derives an id from the wall clock, bumped past the last issued id
// so ids stay unique for the session even when calls land on the same
// millisecond or older records carry larger ids.
func (st *State) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= st.lastID {
		id = st.lastID + 1
	}
	st.lastID = id
	return id
}

// TrackID advances the id watermark past an id loaded from storage.
func (st *State) TrackID(id int64) {
	if id > st.lastID {
		st.lastID = id
	}
}

// AddSubject appends a new subject. The name must be non-empty after
// trimming.
func (st *State) AddSubject(name string, priority Priority) (Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Subject{}, fmt.Errorf("%w: subject name required", ErrValidation)
	}
	s := Subject{ID: st.nextID(), Name: name, Priority: priority}
	st.Subjects = append(st.Subjects, s)
	return s, nil
}

// DeleteSubject removes the subject and cascades removal of its tasks.
// Schedule slots keep their subject id and go dangling. Unknown ids are a
// no-op.
func (st *State) DeleteSubject(id int64) {
	kept := st.Subjects[:0]
	for _, s := range st.Subjects {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	st.Subjects = kept

	tasks := st.Tasks[:0]
	for _, t := range st.Tasks {
		if t.SubjectID != id {
			tasks = append(tasks, t)
		}
	}
	st.Tasks = tasks
}

// AddTask appends a new task. The title and deadline are required; the
// subject id is stored as given, even when it resolves to nothing —
// integrity is enforced by cascade-on-delete, never checked on add.
func (st *State) AddTask(title string, deadline Timestamp, subjectID int64) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, fmt.Errorf("%w: task title required", ErrValidation)
	}
	if deadline.IsZero() {
		return Task{}, fmt.Errorf("%w: task deadline required", ErrValidation)
	}
	t := Task{ID: st.nextID(), Title: title, Deadline: deadline, SubjectID: subjectID}
	st.Tasks = append(st.Tasks, t)
	return t, nil
}

// DeleteTask removes the task. Unknown ids are a no-op.
func (st *State) DeleteTask(id int64) {
	kept := st.Tasks[:0]
	for _, t := range st.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	st.Tasks = kept
}

// ToggleTask flips the completed flag and returns the updated task, or
// ErrNotFound when the id does not exist.
func (st *State) ToggleTask(id int64) (Task, error) {
	for i := range st.Tasks {
		if st.Tasks[i].ID == id {
			st.Tasks[i].Completed = !st.Tasks[i].Completed
			return st.Tasks[i], nil
		}
	}
	return Task{}, fmt.Errorf("%w: task %d", ErrNotFound, id)
}

// AddSchedule validates the candidate block, runs the conflict scan over
// the full existing set, and appends on acceptance. The check and the
// insert happen inside this one call so no other mutation can interleave.
// A slot with end not after start is tolerated and stored as-is.
func (st *State) AddSchedule(day Day, start, end string, subjectID int64) (ScheduleSlot, error) {
	s, err := timeslot.ParseClock(start)
	if err != nil {
		return ScheduleSlot{}, err
	}
	e, err := timeslot.ParseClock(end)
	if err != nil {
		return ScheduleSlot{}, err
	}
	if HasConflict(day, s, e, st.Schedules) {
		return ScheduleSlot{}, fmt.Errorf("%w: %s %s-%s", ErrConflict, day, start, end)
	}
	slot := ScheduleSlot{
		ID:        st.nextID(),
		Day:       day,
		Start:     timeslot.FormatClock(s),
		End:       timeslot.FormatClock(e),
		SubjectID: subjectID,
	}
	st.Schedules = append(st.Schedules, slot)
	return slot, nil
}

// DeleteSchedule removes the slot. Unknown ids are a no-op.
func (st *State) DeleteSchedule(id int64) {
	kept := st.Schedules[:0]
	for _, s := range st.Schedules {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	st.Schedules = kept
}
