package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestNewSchedule(t *testing.T) {
	sched, err := NewSchedule("08:00", 10)
	require.NoError(t, err)
	assert.Equal(t, 8, sched.StartHour)
	assert.Equal(t, 0, sched.StartMinute)
	assert.Equal(t, 10, sched.GraceMinutes)

	_, err = NewSchedule("8am", 10)
	assert.Error(t, err)

	_, err = NewSchedule("08:00", -1)
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		entry *time.Time
		exit  *time.Time
		want  Status
	}{
		{"no entry and no exit", nil, nil, StatusAbsent},
		{"on time", timePtr(at(7, 58)), nil, StatusPresent},
		{"exactly at start", timePtr(at(8, 0)), nil, StatusPresent},
		{"within grace", timePtr(at(8, 5)), timePtr(at(17, 0)), StatusPresent},
		{"exactly at grace boundary", timePtr(at(8, 10)), nil, StatusPresent},
		{"one minute past grace", timePtr(at(8, 11)), nil, StatusLate},
		{"well past grace", timePtr(at(8, 15)), nil, StatusLate},
		{"exit only", nil, timePtr(at(17, 0)), StatusPresent},
		{"late with exit", timePtr(at(9, 30)), timePtr(at(17, 0)), StatusLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(c.entry, c.exit, DefaultSchedule)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	entry := timePtr(at(8, 15))
	first := Classify(entry, nil, DefaultSchedule)
	second := Classify(entry, nil, DefaultSchedule)
	assert.Equal(t, first, second)
	assert.Equal(t, StatusLate, first)
}

func TestMinutesLate(t *testing.T) {
	cases := []struct {
		name  string
		entry time.Time
		want  int
	}{
		{"early arrival", at(7, 45), 0},
		{"exactly on time", at(8, 0), 0},
		{"one minute after start", at(8, 1), 1},
		{"inside grace still counts", at(8, 5), 5},
		{"past grace", at(8, 25), 25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, MinutesLate(c.entry, DefaultSchedule))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPresent, StatusAbsent, StatusLate, StatusExcused} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("vacationing").IsValid())
}
