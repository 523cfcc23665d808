package validator

import (
	"strings"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-15", "2024-02-29", "1999-12-31"}
	invalid := []string{"", "2025-13-01", "2025-02-30", "15-01-2025", "2025/01/15", "2025-01-15T00:00:00Z"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2025-01-15T08:05:00Z",
		"2025-01-15T08:05:00-06:00",
		"2025-01-15T08:05:00.123Z",
	}
	invalid := []string{"", "2025-01-15", "2025-01-15 08:05:00", "not-a-time"}
	for _, d := range valid {
		if _, ok := IsValidDateTime(d); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDateTime(d); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", d)
		}
	}
}

func TestIsValidBiometricID(t *testing.T) {
	valid := []string{"04:A3:1B:2C", "1234567890", "ABCDEF", "fp-12"}
	invalid := []string{"", "id with spaces", "bad_underscore", strings.Repeat("a", 65)}
	for _, id := range valid {
		if !IsValidBiometricID(id) {
			t.Errorf("IsValidBiometricID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidBiometricID(id) {
			t.Errorf("IsValidBiometricID(%q) = true, want false", id)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"12345", true},
		{"0", true},
		{"", false},
		{"12a45", false},
		{"-1", false},
	}
	for _, c := range cases {
		got := IsNumeric(c.input)
		if got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"present", "absent", "late"}
	if !IsInSlice("absent", slice) {
		t.Error("IsInSlice(absent) = false, want true")
	}
	if IsInSlice("excused", slice) {
		t.Error("IsInSlice(excused) = true, want false")
	}
}
