package planner

import "tableflip.dev/studyplan/pkg/timeslot"

// HasConflict reports whether a candidate block on the given day overlaps
// any existing slot. It is a linear scan over the same-day slots; weekly
// slot counts are small enough that nothing fancier is warranted.
//
// Existing slots whose times do not parse are skipped: a stored slot that
// cannot be placed on the clock can never collide with anything. The scan
// is read-only and has no side effects. A zero-length candidate
// (start == end) overlaps nothing under the half-open rule and is always
// accepted.
func HasConflict(day Day, startMin, endMin int, existing []ScheduleSlot) bool {
	for _, slot := range existing {
		if slot.Day != day {
			continue
		}
		s, err := timeslot.ParseClock(slot.Start)
		if err != nil {
			continue
		}
		e, err := timeslot.ParseClock(slot.End)
		if err != nil {
			continue
		}
		if timeslot.Overlaps(startMin, endMin, s, e) {
			return true
		}
	}
	return false
}
