package report

// Filter narrows the employee population a report covers.
type Filter struct {
	PlantID          *int64
	DepartmentID     *int64
	GroupID          *int64
	IncludeInactive  bool
	RequireBiometric bool
	IncludeExcused   bool
}

// Fallback labels for employees missing a grouping assignment. Explicit
// policy: such employees aggregate into a generic bucket, they are never
// dropped from a report.
const (
	LabelNoGroup      = "Sin grupo"
	LabelNoDepartment = "Sin departamento"
	LabelNoPlant      = "Sin planta"
)

// GroupBy selects the grouping dimension for percentage statistics.
type GroupBy string

const (
	GroupByEmployee   GroupBy = "employee"
	GroupByDepartment GroupBy = "department"
	GroupByPlant      GroupBy = "plant"
)

func (g GroupBy) IsValid() bool {
	switch g {
	case GroupByEmployee, GroupByDepartment, GroupByPlant:
		return true
	}
	return false
}

// Summary holds the per-status counts of a daily report.
type Summary struct {
	TotalEmployees       int    `json:"total_employees"`
	Present              int    `json:"present"`
	Absent               int    `json:"absent"`
	Late                 int    `json:"late"`
	Excused              int    `json:"excused"`
	AttendancePercentage string `json:"attendance_percentage"`
}

// EmployeeEntry is one employee inside the present/late/excused partitions.
type EmployeeEntry struct {
	EmployeeID    int64   `json:"employee_id"`
	Name          string  `json:"name"`
	FullName      string  `json:"full_name"`
	Group         string  `json:"group"`
	Department    string  `json:"department"`
	Plant         string  `json:"plant"`
	FingerprintID *string `json:"fingerprint_id"`
	Entry         *string `json:"entry"`
	Exit          *string `json:"exit"`
	MinutesLate   *int    `json:"minutes_late,omitempty"`
}

// AbsentEntry is one employee inside the absent partition.
type AbsentEntry struct {
	EmployeeID            int64   `json:"employee_id"`
	Name                  string  `json:"name"`
	FullName              string  `json:"full_name"`
	Group                 string  `json:"group"`
	Department            string  `json:"department"`
	Plant                 string  `json:"plant"`
	FingerprintID         *string `json:"fingerprint_id"`
	ConsecutiveAbsentDays int     `json:"consecutive_absent_days"`
	HireDate              *string `json:"hire_date"`

	// Synthetic marks an absentee with no stored record; the materializer
	// inserts rows only for these. PlantID carries the employee's plant for
	// that insert.
	Synthetic bool   `json:"-"`
	PlantID   *int64 `json:"-"`
}

// DailyReport is the full present/absent/late/excused partition of the
// eligible workforce for one date. Derived, never persisted.
type DailyReport struct {
	Date    string          `json:"date"`
	Summary Summary         `json:"summary"`
	Present []EmployeeEntry `json:"present"`
	Absent  []AbsentEntry   `json:"absent"`
	Late    []EmployeeEntry `json:"late"`
	Excused []EmployeeEntry `json:"excused"`
}

// GroupStatistics holds per-status counts and the attendance percentage for
// one grouping key. Key is stable (employee number, department name, plant
// name); Label is for display only.
type GroupStatistics struct {
	Key                  string `json:"key"`
	Label                string `json:"label"`
	Total                int    `json:"total"`
	Present              int    `json:"present"`
	Absent               int    `json:"absent"`
	Late                 int    `json:"late"`
	Excused              int    `json:"excused"`
	AttendancePercentage string `json:"attendance_percentage"`
}

// Period is an inclusive date range.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RangeRequest asks for status statistics over stored records in a period.
type RangeRequest struct {
	StartDate    string
	EndDate      string
	EmployeeID   *int64
	PlantID      *int64
	DepartmentID *int64
	Status       *string
}

// RangeReport aggregates stored records over a period.
type RangeReport struct {
	Period               Period `json:"period"`
	TotalRecords         int    `json:"total_records"`
	Present              int    `json:"present"`
	Absent               int    `json:"absent"`
	Late                 int    `json:"late"`
	Excused              int    `json:"excused"`
	AttendancePercentage string `json:"attendance_percentage"`
}

// PercentageRequest asks for grouped percentage statistics over a period.
type PercentageRequest struct {
	StartDate    string
	EndDate      string
	EmployeeIDs  []int64
	PlantID      *int64
	DepartmentID *int64
	GroupBy      GroupBy
}

// PercentageGroup is the per-key breakdown of a percentage report.
type PercentageGroup struct {
	Key                  string `json:"key"`
	Label                string `json:"label"`
	Total                int    `json:"total"`
	Present              int    `json:"present"`
	Absent               int    `json:"absent"`
	Late                 int    `json:"late"`
	Excused              int    `json:"excused"`
	AttendancePercentage string `json:"attendance_percentage"`
	LatePercentage       string `json:"late_percentage"`
	AbsencePercentage    string `json:"absence_percentage"`
}

// PercentageReport groups period statistics by the requested dimension.
type PercentageReport struct {
	Period Period            `json:"period"`
	Groups []PercentageGroup `json:"groups"`
}

// EmployeeDigest is a directory row exposed by reports that list employees
// rather than records (e.g. employees without biometric enrollment).
type EmployeeDigest struct {
	EmployeeID int64   `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Group      string  `json:"group"`
	Department string  `json:"department"`
	Plant      string  `json:"plant"`
	HireDate   *string `json:"hire_date"`
}
