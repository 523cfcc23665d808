package report

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// criticalStreakDays is the consecutive-absence streak at which an absence
// becomes critical. Fixed policy, not configurable.
const criticalStreakDays = 2

// Percentage formats (present+late)/total as a percentage with two decimals.
// Returns "0.00" when total is zero.
func Percentage(present, late, total int) string {
	if total <= 0 {
		return "0.00"
	}
	return decimal.NewFromInt(int64(present + late)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		StringFixed(2)
}

// Ratio formats count/total as a percentage with two decimals.
func Ratio(count, total int) string {
	if total <= 0 {
		return "0.00"
	}
	return decimal.NewFromInt(int64(count)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		StringFixed(2)
}

// CriticalAbsences filters the absent partition to employees whose
// consecutive-absence streak has reached the critical threshold.
func CriticalAbsences(rep DailyReport) []AbsentEntry {
	critical := make([]AbsentEntry, 0)
	for _, entry := range rep.Absent {
		if entry.ConsecutiveAbsentDays >= criticalStreakDays {
			critical = append(critical, entry)
		}
	}
	return critical
}

type groupCounter struct {
	label   string
	total   int
	present int
	absent  int
	late    int
	excused int
}

// Aggregate flattens the four partitions of a daily report into per-key
// status counters. Employees are keyed by number when grouping by employee
// (two employees sharing a name must not merge); department and plant
// grouping keys on the display name with an explicit fallback bucket.
func Aggregate(rep DailyReport, groupBy GroupBy) []GroupStatistics {
	counters := make(map[string]*groupCounter)
	order := make([]string, 0)

	bump := func(key, label string, status string) {
		c, ok := counters[key]
		if !ok {
			c = &groupCounter{label: label}
			counters[key] = c
			order = append(order, key)
		}
		c.total++
		switch status {
		case "present":
			c.present++
		case "absent":
			c.absent++
		case "late":
			c.late++
		case "excused":
			c.excused++
		}
	}

	forEmployee := func(id int64, fullName, dept, plant string, status string) {
		switch groupBy {
		case GroupByDepartment:
			label := dept
			if label == "" {
				label = LabelNoDepartment
			}
			bump(label, label, status)
		case GroupByPlant:
			label := plant
			if label == "" {
				label = LabelNoPlant
			}
			bump(label, label, status)
		default:
			bump(strconv.FormatInt(id, 10), fullName+" ("+strconv.FormatInt(id, 10)+")", status)
		}
	}

	for _, e := range rep.Present {
		forEmployee(e.EmployeeID, e.FullName, e.Department, e.Plant, "present")
	}
	for _, e := range rep.Late {
		forEmployee(e.EmployeeID, e.FullName, e.Department, e.Plant, "late")
	}
	for _, e := range rep.Absent {
		forEmployee(e.EmployeeID, e.FullName, e.Department, e.Plant, "absent")
	}
	for _, e := range rep.Excused {
		forEmployee(e.EmployeeID, e.FullName, e.Department, e.Plant, "excused")
	}

	sort.Strings(order)

	stats := make([]GroupStatistics, 0, len(order))
	for _, key := range order {
		c := counters[key]
		stats = append(stats, GroupStatistics{
			Key:                  key,
			Label:                c.label,
			Total:                c.total,
			Present:              c.present,
			Absent:               c.absent,
			Late:                 c.late,
			Excused:              c.excused,
			AttendancePercentage: Percentage(c.present, c.late, c.total),
		})
	}
	return stats
}
