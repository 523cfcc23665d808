package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/plantsec/hr-access-backend-go/internal/domain/attendance"
	"github.com/plantsec/hr-access-backend-go/internal/domain/employee"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/department"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/group"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/plant"
	"github.com/plantsec/hr-access-backend-go/internal/domain/report"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	records map[string]attendance.Record
	nextID  int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeRecordRepo) add(rec attendance.Record) attendance.Record {
	f.nextID++
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("rec-%d", f.nextID)
	}
	f.records[rec.ID] = rec
	return rec
}

func (f *fakeRecordRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Date.Equal(rec.Date) {
			return attendance.Record{}, attendance.ErrAttendanceAlreadyRegistered
		}
	}
	return f.add(rec), nil
}

func (f *fakeRecordRepo) CreateAllMissing(_ context.Context, recs []attendance.Record) (int, error) {
	inserted := 0
	for _, rec := range recs {
		if f.hasRecordFor(rec.EmployeeID, rec.Date) {
			continue
		}
		f.add(rec)
		inserted++
	}
	return inserted, nil
}

func (f *fakeRecordRepo) hasRecordFor(employeeID int64, date time.Time) bool {
	for _, existing := range f.records {
		if existing.EmployeeID == employeeID && existing.Date.Equal(date) {
			return true
		}
	}
	return false
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Record, error) {
	out := make([]attendance.Record, 0)
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListRange(_ context.Context, employeeID int64, from, to time.Time) ([]attendance.Record, error) {
	out := make([]attendance.Record, 0)
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListForPeriod(_ context.Context, from, to time.Time, filter attendance.PeriodFilter) ([]attendance.Record, error) {
	out := make([]attendance.Record, 0)
	for _, rec := range f.records {
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if len(filter.EmployeeIDs) > 0 {
			found := false
			for _, id := range filter.EmployeeIDs {
				if rec.EmployeeID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeRecordRepo) List(_ context.Context, _ attendance.RecordFilter) ([]attendance.Record, int64, error) {
	out := make([]attendance.Record, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecordRepo) Update(_ context.Context, rec attendance.Record) error {
	if _, ok := f.records[rec.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByBiometricID(_ context.Context, biometricID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Active && emp.RFIDUID != nil && *emp.RFIDUID == biometricID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListEligible(_ context.Context, filter employee.EligibilityFilter, asOf time.Time) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0)
	for _, emp := range f.employees {
		if !filter.IncludeInactive && !emp.Active {
			continue
		}
		if filter.RequireBiometric && !emp.HasBiometric() {
			continue
		}
		if filter.PlantID != nil && (emp.PlantID == nil || *emp.PlantID != *filter.PlantID) {
			continue
		}
		if !emp.InTenure(asOf) {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListWithoutBiometric(_ context.Context, filter employee.EligibilityFilter) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0)
	for _, emp := range f.employees {
		if !filter.IncludeInactive && !emp.Active {
			continue
		}
		if emp.HasBiometric() {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

type fakePlantRepo struct {
	plants map[int64]plant.Plant
}

func (f *fakePlantRepo) GetByID(_ context.Context, id int64) (plant.Plant, error) {
	pl, ok := f.plants[id]
	if !ok {
		return plant.Plant{}, plant.ErrPlantNotFound
	}
	return pl, nil
}

type fakeDepartmentRepo struct {
	departments map[int64]department.Department
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (department.Department, error) {
	dep, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dep, nil
}

type fakeGroupRepo struct {
	groups map[int64]group.Group
}

func (f *fakeGroupRepo) GetByID(_ context.Context, id int64) (group.Group, error) {
	gr, ok := f.groups[id]
	if !ok {
		return group.Group{}, group.ErrGroupNotFound
	}
	return gr, nil
}

func strPtr(s string) *string { return &s }
func i64Ptr(i int64) *int64   { return &i }

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func entryAt(date string, hour, min int) *time.Time {
	d := day(date)
	t := time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.UTC)
	return &t
}

func threeEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID: 201, FirstName: "Ana", LastPaternal: "Lopez", Active: true,
			PlantID: i64Ptr(1), RFIDUID: strPtr("AAAA"),
			GroupName: strPtr("Turno A"), DepartmentName: strPtr("Producción"), PlantName: strPtr("Planta Norte"),
		},
		{
			ID: 202, FirstName: "Luis", LastPaternal: "Vega", Active: true,
			PlantID: i64Ptr(1), RFIDUID: strPtr("BBBB"),
			GroupName: strPtr("Turno A"), DepartmentName: strPtr("Producción"), PlantName: strPtr("Planta Norte"),
		},
		{
			ID: 203, FirstName: "Pedro", LastPaternal: "Diaz", Active: true,
			PlantID: i64Ptr(1), RFIDUID: strPtr("CCCC"),
		},
	}
}

func newTestService(recordRepo *fakeRecordRepo, employees []employee.Employee) report.ReportService {
	return NewReportService(
		recordRepo,
		&fakeEmployeeRepo{employees: employees},
		&fakePlantRepo{plants: map[int64]plant.Plant{1: {ID: 1, Name: "Planta Norte"}}},
		&fakeDepartmentRepo{departments: map[int64]department.Department{10: {ID: 10, Name: "Producción"}}},
		&fakeGroupRepo{groups: map[int64]group.Group{20: {ID: 20, Name: "Turno A"}}},
		attendance.DefaultSchedule,
		time.UTC,
	)
}

func TestBuildDailyReportPartitionsAndPercentage(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.add(attendance.Record{
		EmployeeID: 201, Date: day("2025-03-10"),
		Entry: entryAt("2025-03-10", 8, 5), Status: attendance.StatusPresent,
	})
	repo.add(attendance.Record{
		EmployeeID: 202, Date: day("2025-03-10"),
		Entry: entryAt("2025-03-10", 8, 15), Status: attendance.StatusLate,
	})
	// Employee 203 has no record: absent.

	svc := newTestService(repo, threeEmployees())

	rep, err := svc.BuildDailyReport(context.Background(), "2025-03-10", report.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Summary.TotalEmployees)
	assert.Equal(t, 1, rep.Summary.Present)
	assert.Equal(t, 1, rep.Summary.Late)
	assert.Equal(t, 1, rep.Summary.Absent)
	assert.Equal(t, 0, rep.Summary.Excused)
	assert.Equal(t, "66.67", rep.Summary.AttendancePercentage)

	require.Len(t, rep.Late, 1)
	require.NotNil(t, rep.Late[0].MinutesLate)
	assert.Equal(t, 15, *rep.Late[0].MinutesLate)

	require.Len(t, rep.Absent, 1)
	absent := rep.Absent[0]
	assert.Equal(t, int64(203), absent.EmployeeID)
	assert.True(t, absent.Synthetic)
	assert.GreaterOrEqual(t, absent.ConsecutiveAbsentDays, 1)
	// Missing grouping assignments fall back to the generic labels.
	assert.Equal(t, "Sin grupo", absent.Group)
	assert.Equal(t, "Sin departamento", absent.Department)
}

func TestBuildDailyReportInvalidDate(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), threeEmployees())
	_, err := svc.BuildDailyReport(context.Background(), "10-03-2025", report.Filter{})
	assert.ErrorIs(t, err, attendance.ErrInvalidTimestamp)
}

func TestBuildDailyReportUnknownFilterIDs(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), threeEmployees())
	ctx := context.Background()

	_, err := svc.BuildDailyReport(ctx, "2025-03-10", report.Filter{GroupID: i64Ptr(999)})
	assert.ErrorIs(t, err, group.ErrGroupNotFound)

	_, err = svc.BuildDailyReport(ctx, "2025-03-10", report.Filter{DepartmentID: i64Ptr(999)})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	_, err = svc.BuildDailyReport(ctx, "2025-03-10", report.Filter{PlantID: i64Ptr(999)})
	assert.ErrorIs(t, err, plant.ErrPlantNotFound)

	// Known ids pass through to the report itself.
	rep, err := svc.BuildDailyReport(ctx, "2025-03-10", report.Filter{GroupID: i64Ptr(20), DepartmentID: i64Ptr(10)})
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Summary.TotalEmployees)
}

func TestWithoutBiometricUnknownGroupFilter(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), threeEmployees())

	_, err := svc.WithoutBiometric(context.Background(), report.Filter{GroupID: i64Ptr(999)})
	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}

func TestBuildDailyReportExcusedListedOnRequest(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.add(attendance.Record{
		EmployeeID: 201, Date: day("2025-03-10"),
		Entry: entryAt("2025-03-10", 8, 0), Status: attendance.StatusPresent,
	})
	repo.add(attendance.Record{EmployeeID: 202, Date: day("2025-03-10"), Status: attendance.StatusExcused})

	svc := newTestService(repo, threeEmployees())
	ctx := context.Background()

	// By default excused employees stay out of every partition but still
	// count toward the workforce total.
	rep, err := svc.BuildDailyReport(ctx, "2025-03-10", report.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rep.Excused)
	assert.Equal(t, 0, rep.Summary.Excused)
	assert.Equal(t, 3, rep.Summary.TotalEmployees)
	assert.Equal(t, "33.33", rep.Summary.AttendancePercentage)

	// Requesting them adds the partition without touching the percentage.
	rep, err = svc.BuildDailyReport(ctx, "2025-03-10", report.Filter{IncludeExcused: true})
	require.NoError(t, err)
	require.Len(t, rep.Excused, 1)
	assert.Equal(t, int64(202), rep.Excused[0].EmployeeID)
	assert.Equal(t, 1, rep.Summary.Excused)
	assert.Equal(t, "33.33", rep.Summary.AttendancePercentage)
}

func TestAbsenceStreakStopsAtFirstNonAbsentDay(t *testing.T) {
	repo := newFakeRecordRepo()
	// Scanning back from 2025-03-10: 03-09 absent, 03-08 present, 03-07 absent.
	repo.add(attendance.Record{EmployeeID: 203, Date: day("2025-03-09"), Status: attendance.StatusAbsent})
	repo.add(attendance.Record{EmployeeID: 203, Date: day("2025-03-08"), Entry: entryAt("2025-03-08", 8, 0), Status: attendance.StatusPresent})
	repo.add(attendance.Record{EmployeeID: 203, Date: day("2025-03-07"), Status: attendance.StatusAbsent})

	svc := newTestService(repo, threeEmployees())

	rep, err := svc.BuildDailyReport(context.Background(), "2025-03-10", report.Filter{})
	require.NoError(t, err)

	for _, absent := range rep.Absent {
		if absent.EmployeeID == 203 {
			assert.Equal(t, 2, absent.ConsecutiveAbsentDays)
			return
		}
	}
	t.Fatal("employee 203 not in absent partition")
}

func TestAbsenceStreakCountsMissingDaysAsAbsent(t *testing.T) {
	repo := newFakeRecordRepo()
	// 03-09 has no record at all, 03-08 absent, 03-07 excused.
	repo.add(attendance.Record{EmployeeID: 203, Date: day("2025-03-08"), Status: attendance.StatusAbsent})
	repo.add(attendance.Record{EmployeeID: 203, Date: day("2025-03-07"), Status: attendance.StatusExcused})

	svc := newTestService(repo, threeEmployees())

	rep, err := svc.BuildDailyReport(context.Background(), "2025-03-10", report.Filter{})
	require.NoError(t, err)

	for _, absent := range rep.Absent {
		if absent.EmployeeID == 203 {
			assert.Equal(t, 3, absent.ConsecutiveAbsentDays)
			return
		}
	}
	t.Fatal("employee 203 not in absent partition")
}

func TestAbsenceStreakStopsAtHireDate(t *testing.T) {
	hired := day("2025-03-09")
	employees := []employee.Employee{{
		ID: 204, FirstName: "Nora", LastPaternal: "Sanz", Active: true,
		HireDate: &hired, RFIDUID: strPtr("DDDD"),
	}}

	svc := newTestService(newFakeRecordRepo(), employees)

	rep, err := svc.BuildDailyReport(context.Background(), "2025-03-10", report.Filter{})
	require.NoError(t, err)

	require.Len(t, rep.Absent, 1)
	// Only the report day and the hire day count; earlier days are pre-tenure.
	assert.Equal(t, 2, rep.Absent[0].ConsecutiveAbsentDays)
}

func TestAbsenceStreakIsBoundedByLookback(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), threeEmployees())

	rep, err := svc.BuildDailyReport(context.Background(), "2025-03-10", report.Filter{})
	require.NoError(t, err)

	for _, absent := range rep.Absent {
		// Report day plus at most thirty scanned days.
		assert.Equal(t, 1+lookbackDays, absent.ConsecutiveAbsentDays)
	}
}

func TestMaterializeAbsencesIsIdempotent(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.add(attendance.Record{
		EmployeeID: 201, Date: day("2025-03-10"),
		Entry: entryAt("2025-03-10", 8, 0), Status: attendance.StatusPresent,
	})

	svc := newTestService(repo, threeEmployees())
	ctx := context.Background()

	inserted, err := svc.MaterializeAbsences(ctx, "2025-03-10", report.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Every eligible employee now has a record; absentees carry absent status.
	for _, id := range []int64{202, 203} {
		rec, err := repo.GetByEmployeeAndDate(ctx, id, day("2025-03-10"))
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
	}

	// A second run inserts nothing.
	inserted, err = svc.MaterializeAbsences(ctx, "2025-03-10", report.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestMaterializeAbsencesSkipsStoredAbsences(t *testing.T) {
	repo := newFakeRecordRepo()
	// Already-stored absence is not synthetic and must not be re-inserted.
	repo.add(attendance.Record{EmployeeID: 201, Date: day("2025-03-10"), Status: attendance.StatusAbsent})

	svc := newTestService(repo, threeEmployees())

	inserted, err := svc.MaterializeAbsences(context.Background(), "2025-03-10", report.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Len(t, repo.records, 3)
}

func TestGroupStatisticsTotalsMatchPartitions(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.add(attendance.Record{
		EmployeeID: 201, Date: day("2025-03-10"),
		Entry: entryAt("2025-03-10", 8, 0), Status: attendance.StatusPresent,
	})

	svc := newTestService(repo, threeEmployees())

	stats, err := svc.GroupStatistics(context.Background(), "2025-03-10", report.Filter{}, report.GroupByDepartment)
	require.NoError(t, err)

	sum := 0
	for _, s := range stats {
		sum += s.Total
	}
	assert.Equal(t, 3, sum)

	_, err = svc.GroupStatistics(context.Background(), "2025-03-10", report.Filter{}, report.GroupBy("shift"))
	assert.ErrorIs(t, err, report.ErrInvalidGroupBy)
}

func TestCriticalAbsencesThreshold(t *testing.T) {
	repo := newFakeRecordRepo()
	// 203 was absent yesterday too: streak 2, critical.
	repo.add(attendance.Record{EmployeeID: 203, Date: day("2025-03-09"), Status: attendance.StatusAbsent})
	repo.add(attendance.Record{EmployeeID: 203, Date: day("2025-03-08"), Entry: entryAt("2025-03-08", 8, 0), Status: attendance.StatusPresent})
	// 202 only misses today: streak capped by yesterday's presence.
	repo.add(attendance.Record{EmployeeID: 202, Date: day("2025-03-09"), Entry: entryAt("2025-03-09", 8, 0), Status: attendance.StatusPresent})
	repo.add(attendance.Record{EmployeeID: 201, Date: day("2025-03-10"), Entry: entryAt("2025-03-10", 8, 0), Status: attendance.StatusPresent})

	svc := newTestService(repo, threeEmployees())

	critical, err := svc.CriticalAbsences(context.Background(), "2025-03-10", report.Filter{})
	require.NoError(t, err)
	require.Len(t, critical, 1)
	assert.Equal(t, int64(203), critical[0].EmployeeID)
}

func TestRangeReport(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.add(attendance.Record{EmployeeID: 201, Date: day("2025-03-10"), Status: attendance.StatusPresent})
	repo.add(attendance.Record{EmployeeID: 201, Date: day("2025-03-11"), Status: attendance.StatusLate})
	repo.add(attendance.Record{EmployeeID: 201, Date: day("2025-03-12"), Status: attendance.StatusAbsent})
	repo.add(attendance.Record{EmployeeID: 202, Date: day("2025-03-10"), Status: attendance.StatusExcused})

	svc := newTestService(repo, threeEmployees())

	rep, err := svc.RangeReport(context.Background(), report.RangeRequest{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, rep.TotalRecords)
	assert.Equal(t, 1, rep.Present)
	assert.Equal(t, 1, rep.Late)
	assert.Equal(t, 1, rep.Absent)
	assert.Equal(t, 1, rep.Excused)
	assert.Equal(t, "50.00", rep.AttendancePercentage)
}

func TestRangeReportInvalidRange(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), threeEmployees())

	_, err := svc.RangeReport(context.Background(), report.RangeRequest{
		StartDate: "2025-03-12",
		EndDate:   "2025-03-10",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

func TestRangeReportInvalidStatus(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), threeEmployees())

	_, err := svc.RangeReport(context.Background(), report.RangeRequest{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-12",
		Status:    strPtr("vacaciones"),
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "status")
}

func TestRangeReportUnknownDepartmentFilter(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), threeEmployees())

	_, err := svc.RangeReport(context.Background(), report.RangeRequest{
		StartDate:    "2025-03-10",
		EndDate:      "2025-03-12",
		DepartmentID: i64Ptr(999),
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestAttendancePercentagesByEmployee(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.add(attendance.Record{EmployeeID: 201, Date: day("2025-03-10"), Status: attendance.StatusPresent, EmployeeName: strPtr("Ana Lopez")})
	repo.add(attendance.Record{EmployeeID: 201, Date: day("2025-03-11"), Status: attendance.StatusAbsent, EmployeeName: strPtr("Ana Lopez")})
	repo.add(attendance.Record{EmployeeID: 202, Date: day("2025-03-10"), Status: attendance.StatusLate, EmployeeName: strPtr("Luis Vega")})

	svc := newTestService(repo, threeEmployees())

	rep, err := svc.AttendancePercentages(context.Background(), report.PercentageRequest{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-11",
		GroupBy:   report.GroupByEmployee,
	})
	require.NoError(t, err)
	require.Len(t, rep.Groups, 2)

	byKey := make(map[string]report.PercentageGroup)
	for _, g := range rep.Groups {
		byKey[g.Key] = g
	}

	ana := byKey["201"]
	assert.Equal(t, 2, ana.Total)
	assert.Equal(t, "50.00", ana.AttendancePercentage)
	assert.Equal(t, "50.00", ana.AbsencePercentage)

	luis := byKey["202"]
	assert.Equal(t, "100.00", luis.AttendancePercentage)
	assert.Equal(t, "100.00", luis.LatePercentage)
}

func TestWithoutBiometric(t *testing.T) {
	employees := threeEmployees()
	employees = append(employees, employee.Employee{
		ID: 205, FirstName: "Ivan", LastPaternal: "Rey", Active: true,
	})

	svc := newTestService(newFakeRecordRepo(), employees)

	digests, err := svc.WithoutBiometric(context.Background(), report.Filter{})
	require.NoError(t, err)
	require.Len(t, digests, 1)
	assert.Equal(t, int64(205), digests[0].EmployeeID)
	assert.Equal(t, "Sin planta", digests[0].Plant)
}
