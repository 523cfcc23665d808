package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/plantsec/hr-access-backend-go/internal/domain/attendance"
	"github.com/plantsec/hr-access-backend-go/internal/domain/employee"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/department"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/group"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/plant"
	"github.com/plantsec/hr-access-backend-go/internal/domain/report"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/validator"
)

// lookbackDays caps the backward consecutive-absence scan: at most this many
// days before the report date are examined.
const lookbackDays = 30

type ReportServiceImpl struct {
	attendance.RecordRepository
	employee.EmployeeRepository
	plants      plant.PlantRepository
	departments department.DepartmentRepository
	groups      group.GroupRepository
	sched       attendance.Schedule
	loc         *time.Location
}

func NewReportService(
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	plantRepo plant.PlantRepository,
	departmentRepo department.DepartmentRepository,
	groupRepo group.GroupRepository,
	sched attendance.Schedule,
	loc *time.Location,
) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportServiceImpl{
		RecordRepository:   recordRepo,
		EmployeeRepository: employeeRepo,
		plants:             plantRepo,
		departments:        departmentRepo,
		groups:             groupRepo,
		sched:              sched,
		loc:                loc,
	}
}

// validateFilter resolves the master rows a filter references, so a mistyped
// id reads as a not-found error rather than an empty report.
func (r *ReportServiceImpl) validateFilter(ctx context.Context, f report.Filter) error {
	if f.PlantID != nil {
		if _, err := r.plants.GetByID(ctx, *f.PlantID); err != nil {
			return err
		}
	}
	if f.DepartmentID != nil {
		if _, err := r.departments.GetByID(ctx, *f.DepartmentID); err != nil {
			return err
		}
	}
	if f.GroupID != nil {
		if _, err := r.groups.GetByID(ctx, *f.GroupID); err != nil {
			return err
		}
	}
	return nil
}

func eligibilityFilter(f report.Filter) employee.EligibilityFilter {
	return employee.EligibilityFilter{
		PlantID:          f.PlantID,
		DepartmentID:     f.DepartmentID,
		GroupID:          f.GroupID,
		IncludeInactive:  f.IncludeInactive,
		RequireBiometric: f.RequireBiometric,
	}
}

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func clockString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("15:04:05")
	return &s
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// dateOnly truncates t to its calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildDailyReport implements report.ReportService.
func (r *ReportServiceImpl) BuildDailyReport(ctx context.Context, date string, filter report.Filter) (report.DailyReport, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return report.DailyReport{}, attendance.ErrInvalidTimestamp
	}
	if err := r.validateFilter(ctx, filter); err != nil {
		return report.DailyReport{}, err
	}

	employees, err := r.EmployeeRepository.ListEligible(ctx, eligibilityFilter(filter), day)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to list eligible employees: %w", err)
	}

	records, err := r.RecordRepository.ListByDate(ctx, day)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	recordsByEmployee := make(map[int64]attendance.Record, len(records))
	for _, rec := range records {
		recordsByEmployee[rec.EmployeeID] = rec
	}

	rep := report.DailyReport{
		Date:    day.Format("2006-01-02"),
		Present: make([]report.EmployeeEntry, 0),
		Absent:  make([]report.AbsentEntry, 0),
		Late:    make([]report.EmployeeEntry, 0),
		Excused: make([]report.EmployeeEntry, 0),
	}

	for _, emp := range employees {
		rec, hasRecord := recordsByEmployee[emp.ID]

		status := attendance.StatusAbsent
		if hasRecord {
			status = rec.Status
		}

		switch status {
		case attendance.StatusPresent:
			rep.Present = append(rep.Present, r.employeeEntry(emp, &rec))
		case attendance.StatusLate:
			entry := r.employeeEntry(emp, &rec)
			if rec.Entry != nil {
				local := rec.Entry.In(r.loc)
				minutes := attendance.MinutesLate(local, r.sched)
				entry.MinutesLate = &minutes
			}
			rep.Late = append(rep.Late, entry)
		case attendance.StatusExcused:
			// Excused employees are listed only on request; they still count
			// toward the workforce total.
			if filter.IncludeExcused {
				rep.Excused = append(rep.Excused, r.employeeEntry(emp, &rec))
			}
		default:
			streak, err := r.absenceStreak(ctx, emp, day)
			if err != nil {
				return report.DailyReport{}, err
			}
			rep.Absent = append(rep.Absent, report.AbsentEntry{
				EmployeeID:            emp.ID,
				Name:                  emp.FirstName,
				FullName:              emp.FullName(),
				Group:                 derefOr(emp.GroupName, report.LabelNoGroup),
				Department:            derefOr(emp.DepartmentName, report.LabelNoDepartment),
				Plant:                 derefOr(emp.PlantName, report.LabelNoPlant),
				FingerprintID:         emp.FingerprintID,
				ConsecutiveAbsentDays: streak,
				HireDate:              dateString(emp.HireDate),
				Synthetic:             !hasRecord,
				PlantID:               emp.PlantID,
			})
		}
	}

	rep.Summary = report.Summary{
		TotalEmployees: len(employees),
		Present:        len(rep.Present),
		Absent:         len(rep.Absent),
		Late:           len(rep.Late),
		Excused:        len(rep.Excused),
	}

	rep.Summary.AttendancePercentage = report.Percentage(rep.Summary.Present, rep.Summary.Late, rep.Summary.TotalEmployees)

	return rep, nil
}

// employeeEntry builds a present/late/excused row from the directory row and
// the day's record.
func (r *ReportServiceImpl) employeeEntry(emp employee.Employee, rec *attendance.Record) report.EmployeeEntry {
	entry := report.EmployeeEntry{
		EmployeeID:    emp.ID,
		Name:          emp.FirstName,
		FullName:      emp.FullName(),
		Group:         derefOr(emp.GroupName, report.LabelNoGroup),
		Department:    derefOr(emp.DepartmentName, report.LabelNoDepartment),
		Plant:         derefOr(emp.PlantName, report.LabelNoPlant),
		FingerprintID: emp.FingerprintID,
	}
	if rec != nil {
		entry.Entry = clockString(rec.Entry, r.loc)
		entry.Exit = clockString(rec.Exit, r.loc)
	}
	return entry
}

// absenceStreak counts consecutive absent days ending on day, scanning
// backwards over a single range query. A day without a record counts as
// absent and the scan continues; any present, late or excused day ends the
// streak, as does the employee's hire date or the lookback cap.
func (r *ReportServiceImpl) absenceStreak(ctx context.Context, emp employee.Employee, day time.Time) (int, error) {
	from := day.AddDate(0, 0, -lookbackDays)
	to := day.AddDate(0, 0, -1)

	records, err := r.RecordRepository.ListRange(ctx, emp.ID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance range for employee %d: %w", emp.ID, err)
	}

	statusByDay := make(map[string]attendance.Status, len(records))
	for _, rec := range records {
		statusByDay[rec.Date.Format("2006-01-02")] = rec.Status
	}

	var hired time.Time
	if emp.HireDate != nil {
		hired = dateOnly(*emp.HireDate)
	}

	streak := 1
	for d := to; !d.Before(from); d = d.AddDate(0, 0, -1) {
		if emp.HireDate != nil && d.Before(hired) {
			break
		}
		if status, ok := statusByDay[d.Format("2006-01-02")]; ok && status != attendance.StatusAbsent {
			break
		}
		streak++
	}
	return streak, nil
}

// AbsentToday implements report.ReportService.
func (r *ReportServiceImpl) AbsentToday(ctx context.Context, filter report.Filter) ([]report.AbsentEntry, error) {
	rep, err := r.BuildDailyReport(ctx, r.today(), filter)
	if err != nil {
		return nil, err
	}
	return rep.Absent, nil
}

// PresentToday implements report.ReportService. Lates count as present for
// the "who is on site" view.
func (r *ReportServiceImpl) PresentToday(ctx context.Context, filter report.Filter) ([]report.EmployeeEntry, error) {
	rep, err := r.BuildDailyReport(ctx, r.today(), filter)
	if err != nil {
		return nil, err
	}
	onSite := make([]report.EmployeeEntry, 0, len(rep.Present)+len(rep.Late))
	onSite = append(onSite, rep.Present...)
	onSite = append(onSite, rep.Late...)
	return onSite, nil
}

func (r *ReportServiceImpl) today() string {
	return time.Now().In(r.loc).Format("2006-01-02")
}

// GroupStatistics implements report.ReportService.
func (r *ReportServiceImpl) GroupStatistics(ctx context.Context, date string, filter report.Filter, groupBy report.GroupBy) ([]report.GroupStatistics, error) {
	if !groupBy.IsValid() {
		return nil, report.ErrInvalidGroupBy
	}
	rep, err := r.BuildDailyReport(ctx, date, filter)
	if err != nil {
		return nil, err
	}
	return report.Aggregate(rep, groupBy), nil
}

// CriticalAbsences implements report.ReportService.
func (r *ReportServiceImpl) CriticalAbsences(ctx context.Context, date string, filter report.Filter) ([]report.AbsentEntry, error) {
	rep, err := r.BuildDailyReport(ctx, date, filter)
	if err != nil {
		return nil, err
	}
	return report.CriticalAbsences(rep), nil
}

// MaterializeAbsences implements report.ReportService.
func (r *ReportServiceImpl) MaterializeAbsences(ctx context.Context, date string, filter report.Filter) (int, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return 0, attendance.ErrInvalidTimestamp
	}

	rep, err := r.BuildDailyReport(ctx, date, filter)
	if err != nil {
		return 0, err
	}

	missing := make([]attendance.Record, 0, len(rep.Absent))
	for _, absentee := range rep.Absent {
		if !absentee.Synthetic {
			continue
		}
		missing = append(missing, attendance.Record{
			EmployeeID: absentee.EmployeeID,
			Date:       day,
			Status:     attendance.StatusAbsent,
			PlantID:    absentee.PlantID,
		})
	}

	inserted, err := r.RecordRepository.CreateAllMissing(ctx, missing)
	if err != nil {
		return 0, fmt.Errorf("failed to materialize absences: %w", err)
	}
	return inserted, nil
}

// RangeReport implements report.ReportService.
func (r *ReportServiceImpl) RangeReport(ctx context.Context, req report.RangeRequest) (report.RangeReport, error) {
	from, to, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return report.RangeReport{}, err
	}
	if err := r.validateFilter(ctx, report.Filter{PlantID: req.PlantID, DepartmentID: req.DepartmentID}); err != nil {
		return report.RangeReport{}, err
	}

	var status *attendance.Status
	if req.Status != nil {
		s := attendance.Status(*req.Status)
		if !s.IsValid() {
			return report.RangeReport{}, validator.ValidationErrors{{
				Field:   "status",
				Message: "status must be one of present, absent, late, excused",
			}}
		}
		status = &s
	}

	records, err := r.RecordRepository.ListForPeriod(ctx, from, to, attendance.PeriodFilter{
		EmployeeID:   req.EmployeeID,
		PlantID:      req.PlantID,
		DepartmentID: req.DepartmentID,
		Status:       status,
	})
	if err != nil {
		return report.RangeReport{}, fmt.Errorf("failed to list attendance records for period: %w", err)
	}

	rep := report.RangeReport{
		Period: report.Period{
			Start: from.Format("2006-01-02"),
			End:   to.Format("2006-01-02"),
		},
		TotalRecords: len(records),
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			rep.Present++
		case attendance.StatusAbsent:
			rep.Absent++
		case attendance.StatusLate:
			rep.Late++
		case attendance.StatusExcused:
			rep.Excused++
		}
	}
	rep.AttendancePercentage = report.Percentage(rep.Present, rep.Late, rep.TotalRecords)

	return rep, nil
}

// AttendancePercentages implements report.ReportService.
func (r *ReportServiceImpl) AttendancePercentages(ctx context.Context, req report.PercentageRequest) (report.PercentageReport, error) {
	if !req.GroupBy.IsValid() {
		return report.PercentageReport{}, report.ErrInvalidGroupBy
	}

	from, to, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return report.PercentageReport{}, err
	}
	if err := r.validateFilter(ctx, report.Filter{PlantID: req.PlantID, DepartmentID: req.DepartmentID}); err != nil {
		return report.PercentageReport{}, err
	}

	records, err := r.RecordRepository.ListForPeriod(ctx, from, to, attendance.PeriodFilter{
		EmployeeIDs:  req.EmployeeIDs,
		PlantID:      req.PlantID,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return report.PercentageReport{}, fmt.Errorf("failed to list attendance records for period: %w", err)
	}

	type counter struct {
		label   string
		total   int
		present int
		absent  int
		late    int
		excused int
	}
	counters := make(map[string]*counter)
	order := make([]string, 0)

	for _, rec := range records {
		var key, label string
		switch req.GroupBy {
		case report.GroupByDepartment:
			label = derefOr(rec.DepartmentName, report.LabelNoDepartment)
			key = label
		case report.GroupByPlant:
			label = derefOr(rec.PlantName, report.LabelNoPlant)
			key = label
		default:
			key = strconv.FormatInt(rec.EmployeeID, 10)
			label = derefOr(rec.EmployeeName, "") + " (" + key + ")"
		}

		c, ok := counters[key]
		if !ok {
			c = &counter{label: label}
			counters[key] = c
			order = append(order, key)
		}
		c.total++
		switch rec.Status {
		case attendance.StatusPresent:
			c.present++
		case attendance.StatusAbsent:
			c.absent++
		case attendance.StatusLate:
			c.late++
		case attendance.StatusExcused:
			c.excused++
		}
	}

	sort.Strings(order)

	rep := report.PercentageReport{
		Period: report.Period{
			Start: from.Format("2006-01-02"),
			End:   to.Format("2006-01-02"),
		},
		Groups: make([]report.PercentageGroup, 0, len(order)),
	}
	for _, key := range order {
		c := counters[key]
		rep.Groups = append(rep.Groups, report.PercentageGroup{
			Key:                  key,
			Label:                c.label,
			Total:                c.total,
			Present:              c.present,
			Absent:               c.absent,
			Late:                 c.late,
			Excused:              c.excused,
			AttendancePercentage: report.Percentage(c.present, c.late, c.total),
			LatePercentage:       report.Ratio(c.late, c.total),
			AbsencePercentage:    report.Ratio(c.absent, c.total),
		})
	}

	return rep, nil
}

// WithoutBiometric implements report.ReportService.
func (r *ReportServiceImpl) WithoutBiometric(ctx context.Context, filter report.Filter) ([]report.EmployeeDigest, error) {
	if err := r.validateFilter(ctx, filter); err != nil {
		return nil, err
	}

	employees, err := r.EmployeeRepository.ListWithoutBiometric(ctx, eligibilityFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without biometric enrollment: %w", err)
	}

	digests := make([]report.EmployeeDigest, 0, len(employees))
	for _, emp := range employees {
		digests = append(digests, report.EmployeeDigest{
			EmployeeID: emp.ID,
			FullName:   emp.FullName(),
			Group:      derefOr(emp.GroupName, report.LabelNoGroup),
			Department: derefOr(emp.DepartmentName, report.LabelNoDepartment),
			Plant:      derefOr(emp.PlantName, report.LabelNoPlant),
			HireDate:   dateString(emp.HireDate),
		})
	}
	return digests, nil
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	from, okFrom := validator.IsValidDate(start)
	to, okTo := validator.IsValidDate(end)
	if !okFrom || !okTo {
		return time.Time{}, time.Time{}, attendance.ErrInvalidTimestamp
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, attendance.ErrInvalidDateRange
	}
	return from, to, nil
}
