package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		name    string
		present int
		late    int
		total   int
		want    string
	}{
		{"two thirds attended", 1, 1, 3, "66.67"},
		{"everybody present", 3, 0, 3, "100.00"},
		{"nobody present", 0, 0, 3, "0.00"},
		{"empty population", 0, 0, 0, "0.00"},
		{"one third", 1, 0, 3, "33.33"},
		{"half", 2, 0, 4, "50.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Percentage(c.present, c.late, c.total))
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "25.00", Ratio(1, 4))
	assert.Equal(t, "0.00", Ratio(0, 4))
	assert.Equal(t, "0.00", Ratio(3, 0))
}

func sampleReport() DailyReport {
	return DailyReport{
		Date: "2025-03-10",
		Present: []EmployeeEntry{
			{EmployeeID: 101, FullName: "Ana Lopez Cruz", Department: "Producción", Plant: "Planta Norte"},
			{EmployeeID: 102, FullName: "Luis Vega Soto", Department: "Producción", Plant: "Planta Norte"},
		},
		Late: []EmployeeEntry{
			{EmployeeID: 103, FullName: "Marta Ruiz Gil", Department: "Calidad", Plant: "Planta Norte"},
		},
		Absent: []AbsentEntry{
			{EmployeeID: 104, FullName: "Pedro Diaz Roa", Department: "", Plant: "", ConsecutiveAbsentDays: 3},
			{EmployeeID: 105, FullName: "Sofia Mora Paz", Department: "Calidad", Plant: "Planta Sur", ConsecutiveAbsentDays: 1},
		},
		Excused: []EmployeeEntry{},
	}
}

func TestAggregateByDepartment(t *testing.T) {
	stats := Aggregate(sampleReport(), GroupByDepartment)
	require.Len(t, stats, 3)

	byKey := make(map[string]GroupStatistics)
	for _, s := range stats {
		byKey[s.Key] = s
	}

	prod := byKey["Producción"]
	assert.Equal(t, 2, prod.Total)
	assert.Equal(t, 2, prod.Present)
	assert.Equal(t, "100.00", prod.AttendancePercentage)

	quality := byKey["Calidad"]
	assert.Equal(t, 2, quality.Total)
	assert.Equal(t, 1, quality.Late)
	assert.Equal(t, 1, quality.Absent)
	assert.Equal(t, "50.00", quality.AttendancePercentage)

	// Employees without a department bucket under the fallback label.
	fallback, ok := byKey[LabelNoDepartment]
	require.True(t, ok)
	assert.Equal(t, 1, fallback.Total)
	assert.Equal(t, 1, fallback.Absent)
}

func TestAggregateByEmployeeKeysOnNumber(t *testing.T) {
	rep := sampleReport()
	// Two distinct employees sharing a display name must not merge.
	rep.Present[1].FullName = rep.Present[0].FullName

	stats := Aggregate(rep, GroupByEmployee)
	assert.Len(t, stats, 5)
	for _, s := range stats {
		assert.Equal(t, 1, s.Total)
	}
}

func TestAggregateTotalsSumToPartitions(t *testing.T) {
	rep := sampleReport()
	stats := Aggregate(rep, GroupByPlant)

	sum := 0
	for _, s := range stats {
		sum += s.Total
	}
	assert.Equal(t, len(rep.Present)+len(rep.Late)+len(rep.Absent)+len(rep.Excused), sum)
}

func TestCriticalAbsences(t *testing.T) {
	rep := sampleReport()
	critical := CriticalAbsences(rep)
	require.Len(t, critical, 1)
	assert.Equal(t, int64(104), critical[0].EmployeeID)

	// Streak of exactly two is already critical.
	rep.Absent[1].ConsecutiveAbsentDays = 2
	assert.Len(t, CriticalAbsences(rep), 2)
}
