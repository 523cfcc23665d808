package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plantsec/hr-access-backend-go/internal/domain/attendance"
	"github.com/plantsec/hr-access-backend-go/internal/domain/employee"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/device"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/plant"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.RecordRepository
	employee.EmployeeRepository
	device.DeviceRepository
	plant.PlantRepository
	sched attendance.Schedule
	loc   *time.Location
}

func NewAttendanceService(
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	deviceRepo device.DeviceRepository,
	plantRepo plant.PlantRepository,
	sched attendance.Schedule,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		RecordRepository:   recordRepo,
		EmployeeRepository: employeeRepo,
		DeviceRepository:   deviceRepo,
		PlantRepository:    plantRepo,
		sched:              sched,
		loc:                loc,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format("2006-01-02 15:04:05")
	return &format
}

// dayOf truncates an instant to its calendar date in the plant timezone.
func (a *AttendanceServiceImpl) dayOf(t time.Time) time.Time {
	local := t.In(a.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// classify recomputes a record's status from its clock times, evaluated on
// the plant's wall clock.
func (a *AttendanceServiceImpl) classify(entry, exit *time.Time) attendance.Status {
	var e, x *time.Time
	if entry != nil {
		local := entry.In(a.loc)
		e = &local
	}
	if exit != nil {
		local := exit.In(a.loc)
		x = &local
	}
	return attendance.Classify(e, x, a.sched)
}

// RegisterEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RegisterEvent(ctx context.Context, req attendance.RegisterEventRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	ts, ok := validator.IsValidDateTime(req.Timestamp)
	if !ok {
		return attendance.RecordResponse{}, attendance.ErrInvalidTimestamp
	}
	evTime := ts.In(a.loc)

	emp, err := a.EmployeeRepository.GetByBiometricID(ctx, req.BiometricID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.RecordResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve employee by biometric id: %w", err)
	}

	if req.DeviceID != nil {
		if _, err := a.DeviceRepository.GetByID(ctx, *req.DeviceID); err != nil {
			if errors.Is(err, device.ErrDeviceNotFound) {
				return attendance.RecordResponse{}, device.ErrDeviceNotFound
			}
			return attendance.RecordResponse{}, fmt.Errorf("failed to look up device: %w", err)
		}
	}

	if req.PlantID != nil {
		if _, err := a.PlantRepository.GetByID(ctx, *req.PlantID); err != nil {
			if errors.Is(err, plant.ErrPlantNotFound) {
				return attendance.RecordResponse{}, plant.ErrPlantNotFound
			}
			return attendance.RecordResponse{}, fmt.Errorf("failed to look up plant: %w", err)
		}
	}

	day := a.dayOf(ts)

	rec, err := a.RecordRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if rec == nil {
		created, err := a.createFromEvent(ctx, emp, req, day, evTime)
		if err == nil {
			return mapRecordToResponse(created, a.loc), nil
		}
		if !errors.Is(err, attendance.ErrAttendanceAlreadyRegistered) {
			return attendance.RecordResponse{}, err
		}

		// Lost the insert race against a concurrent event for the same
		// employee/day; re-read and apply as an update instead.
		rec, err = a.RecordRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to re-read attendance record: %w", err)
		}
		if rec == nil {
			return attendance.RecordResponse{}, attendance.ErrAttendanceAlreadyRegistered
		}
	}

	if err := applyEventToRecord(rec, req.Type, evTime); err != nil {
		return attendance.RecordResponse{}, err
	}
	if req.DeviceID != nil {
		rec.DeviceID = req.DeviceID
	}

	rec.Status = a.classify(rec.Entry, rec.Exit)

	if err := a.RecordRepository.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := a.RecordRepository.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get updated attendance record: %w", err)
	}

	return mapRecordToResponse(updated, a.loc), nil
}

// createFromEvent builds and inserts the first record of the day for one
// biometric event.
func (a *AttendanceServiceImpl) createFromEvent(ctx context.Context, emp employee.Employee, req attendance.RegisterEventRequest, day time.Time, evTime time.Time) (attendance.Record, error) {
	rec := attendance.Record{
		EmployeeID: emp.ID,
		Date:       day,
		DeviceID:   req.DeviceID,
		PlantID:    req.PlantID,
	}
	if rec.PlantID == nil {
		rec.PlantID = emp.PlantID
	}

	if req.Type != nil && attendance.EventType(*req.Type) == attendance.EventExit {
		rec.Exit = &evTime
	} else {
		rec.Entry = &evTime
	}
	rec.Status = a.classify(rec.Entry, rec.Exit)

	created, err := a.RecordRepository.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceAlreadyRegistered) {
			return attendance.Record{}, attendance.ErrAttendanceAlreadyRegistered
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// applyEventToRecord writes the event time into the requested slot, or
// infers the slot when the event carries no explicit type. A slot that is
// already set is never overwritten.
func applyEventToRecord(rec *attendance.Record, explicitType *string, evTime time.Time) error {
	var slot attendance.EventType
	if explicitType != nil {
		slot = attendance.EventType(*explicitType)
	} else {
		switch {
		case rec.Entry == nil:
			slot = attendance.EventEntry
		case rec.Exit == nil:
			slot = attendance.EventExit
		default:
			return attendance.ErrAttendanceAlreadyRegistered
		}
	}

	switch slot {
	case attendance.EventEntry:
		if rec.Entry != nil {
			return attendance.ErrAttendanceAlreadyRegistered
		}
		rec.Entry = &evTime
	case attendance.EventExit:
		if rec.Exit != nil {
			return attendance.ErrAttendanceAlreadyRegistered
		}
		rec.Exit = &evTime
	}
	return nil
}

// CreateRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return attendance.RecordResponse{}, attendance.ErrInvalidTimestamp
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.RecordResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	entry, err := parseOptionalTimestamp(req.Entry)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	exit, err := parseOptionalTimestamp(req.Exit)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec := attendance.Record{
		EmployeeID: emp.ID,
		Date:       date,
		Entry:      entry,
		Exit:       exit,
		DeviceID:   req.DeviceID,
		PlantID:    req.PlantID,
	}
	if rec.PlantID == nil {
		rec.PlantID = emp.PlantID
	}

	if req.Status != nil {
		rec.Status = attendance.Status(*req.Status)
	} else {
		rec.Status = a.classify(rec.Entry, rec.Exit)
	}

	created, err := a.RecordRepository.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceAlreadyRegistered) {
			return attendance.RecordResponse{}, attendance.ErrAttendanceAlreadyRegistered
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created, a.loc), nil
}

// UpdateRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	clocksChanged := false
	if req.Entry != nil {
		entry, err := parseOptionalTimestamp(req.Entry)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		rec.Entry = entry
		clocksChanged = true
	}
	if req.Exit != nil {
		exit, err := parseOptionalTimestamp(req.Exit)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		rec.Exit = exit
		clocksChanged = true
	}
	if req.DeviceID != nil {
		rec.DeviceID = req.DeviceID
	}
	if req.PlantID != nil {
		rec.PlantID = req.PlantID
	}

	switch {
	case req.Status != nil:
		rec.Status = attendance.Status(*req.Status)
	case clocksChanged:
		rec.Status = a.classify(rec.Entry, rec.Exit)
	}

	if err := a.RecordRepository.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := a.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get updated attendance record: %w", err)
	}

	return mapRecordToResponse(updated, a.loc), nil
}

// GetRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := a.RecordRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return mapRecordToResponse(rec, a.loc), nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := validateDateFilters(filter); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := a.RecordRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec, a.loc))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

// DeleteRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := a.RecordRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

func validateDateFilters(filter attendance.RecordFilter) error {
	if filter.StartDate != nil && filter.EndDate != nil {
		start, okStart := validator.IsValidDate(*filter.StartDate)
		end, okEnd := validator.IsValidDate(*filter.EndDate)
		if !okStart || !okEnd || start.After(end) {
			return attendance.ErrInvalidDateRange
		}
		return nil
	}
	if filter.Date != nil {
		if _, ok := validator.IsValidDate(*filter.Date); !ok {
			return attendance.ErrInvalidTimestamp
		}
	}
	return nil
}

func parseOptionalTimestamp(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, ok := validator.IsValidDateTime(*s)
	if !ok {
		return nil, attendance.ErrInvalidTimestamp
	}
	return &t, nil
}

// mapRecordToResponse converts a Record entity to RecordResponse.
func mapRecordToResponse(rec attendance.Record, loc *time.Location) attendance.RecordResponse {
	var employeeName string
	if rec.EmployeeName != nil {
		employeeName = *rec.EmployeeName
	}

	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: employeeName,
		Date:         rec.Date.Format("2006-01-02"),
		Entry:        timePtrToString(rec.Entry, loc),
		Exit:         timePtrToString(rec.Exit, loc),
		Status:       string(rec.Status),
		DeviceID:     rec.DeviceID,
		PlantID:      rec.PlantID,
		PlantName:    rec.PlantName,
	}
}
