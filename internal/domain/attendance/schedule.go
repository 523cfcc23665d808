package attendance

import (
	"fmt"
	"time"
)

// Schedule is the expected-start policy used to classify check-ins. One
// policy applies plant-wide; per-shift schedules are a directory concern the
// attendance core does not own.
type Schedule struct {
	StartHour    int
	StartMinute  int
	GraceMinutes int
}

// DefaultSchedule mirrors the standard plant shift: 08:00 start with 10
// minutes of tolerance.
var DefaultSchedule = Schedule{StartHour: 8, StartMinute: 0, GraceMinutes: 10}

// NewSchedule parses a "HH:MM" work start and grace minutes.
func NewSchedule(workStart string, graceMinutes int) (Schedule, error) {
	t, err := time.Parse("15:04", workStart)
	if err != nil {
		return Schedule{}, fmt.Errorf("invalid work start %q: %w", workStart, err)
	}
	if graceMinutes < 0 {
		return Schedule{}, fmt.Errorf("grace minutes must not be negative")
	}
	return Schedule{
		StartHour:    t.Hour(),
		StartMinute:  t.Minute(),
		GraceMinutes: graceMinutes,
	}, nil
}

// ExpectedStart returns the expected start instant on the day of t, in t's
// own location.
func (s Schedule) ExpectedStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), s.StartHour, s.StartMinute, 0, 0, t.Location())
}

// Classify derives the status of a record from its entry/exit timestamps.
// Pure and idempotent: re-applying it to unchanged inputs yields the same
// status. Excused is never returned; it is an explicit override.
//
//   - no entry and no exit: absent
//   - entry after expected start + grace: late
//   - otherwise: present (including exit-only, a mid-day state)
func Classify(entry, exit *time.Time, sched Schedule) Status {
	if entry == nil && exit == nil {
		return StatusAbsent
	}
	if entry == nil {
		return StatusPresent
	}

	cutoff := sched.ExpectedStart(*entry).Add(time.Duration(sched.GraceMinutes) * time.Minute)
	if entry.After(cutoff) {
		return StatusLate
	}
	return StatusPresent
}

// MinutesLate returns whole minutes between the expected start and entry,
// never negative. Grace does not clamp the result: an entry one minute past
// the start is one minute late even when it still classifies as present.
func MinutesLate(entry time.Time, sched Schedule) int {
	diff := entry.Sub(sched.ExpectedStart(entry))
	if diff <= 0 {
		return 0
	}
	return int(diff.Minutes())
}
