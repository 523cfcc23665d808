package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/plantsec/hr-access-backend-go/internal/domain/report"
	"github.com/plantsec/hr-access-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	AbsentToday(w http.ResponseWriter, r *http.Request)
	PresentToday(w http.ResponseWriter, r *http.Request)
	CriticalAbsences(w http.ResponseWriter, r *http.Request)
	GroupStatistics(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	Percentages(w http.ResponseWriter, r *http.Request)
	WithoutBiometric(w http.ResponseWriter, r *http.Request)
	Materialize(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	loc           *time.Location
}

func NewReportHandler(reportService report.ReportService, loc *time.Location) ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &reportHandlerImpl{
		reportService: reportService,
		loc:           loc,
	}
}

// reportFilter parses the population filters shared by all report endpoints.
func reportFilter(r *http.Request) (report.Filter, error) {
	var filter report.Filter

	if plantID := r.URL.Query().Get("plant_id"); plantID != "" {
		id, err := strconv.ParseInt(plantID, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.PlantID = &id
	}
	if departmentID := r.URL.Query().Get("department_id"); departmentID != "" {
		id, err := strconv.ParseInt(departmentID, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.DepartmentID = &id
	}
	if groupID := r.URL.Query().Get("group_id"); groupID != "" {
		id, err := strconv.ParseInt(groupID, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.GroupID = &id
	}
	filter.IncludeInactive = r.URL.Query().Get("include_inactive") == "true"
	filter.RequireBiometric = r.URL.Query().Get("require_biometric") == "true"
	filter.IncludeExcused = r.URL.Query().Get("include_excused") == "true"

	return filter, nil
}

// dateParam returns the date query param, defaulting to today in plant time.
func (h *reportHandlerImpl) dateParam(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return time.Now().In(h.loc).Format("2006-01-02")
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameters", nil)
		return
	}

	result, err := h.reportService.BuildDailyReport(r.Context(), h.dateParam(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AbsentToday implements ReportHandler.
func (h *reportHandlerImpl) AbsentToday(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameters", nil)
		return
	}

	result, err := h.reportService.AbsentToday(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PresentToday implements ReportHandler.
func (h *reportHandlerImpl) PresentToday(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameters", nil)
		return
	}

	result, err := h.reportService.PresentToday(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CriticalAbsences implements ReportHandler.
func (h *reportHandlerImpl) CriticalAbsences(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameters", nil)
		return
	}

	result, err := h.reportService.CriticalAbsences(r.Context(), h.dateParam(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GroupStatistics implements ReportHandler.
func (h *reportHandlerImpl) GroupStatistics(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameters", nil)
		return
	}

	groupBy := report.GroupBy(r.URL.Query().Get("group_by"))
	if groupBy == "" {
		groupBy = report.GroupByDepartment
	}

	result, err := h.reportService.GroupStatistics(r.Context(), h.dateParam(r), filter, groupBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Range implements ReportHandler.
func (h *reportHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	req := report.RangeRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		id, err := strconv.ParseInt(employeeID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		req.EmployeeID = &id
	}
	if plantID := r.URL.Query().Get("plant_id"); plantID != "" {
		id, err := strconv.ParseInt(plantID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid plant_id", nil)
			return
		}
		req.PlantID = &id
	}
	if departmentID := r.URL.Query().Get("department_id"); departmentID != "" {
		id, err := strconv.ParseInt(departmentID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid department_id", nil)
			return
		}
		req.DepartmentID = &id
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.reportService.RangeReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Percentages implements ReportHandler.
func (h *reportHandlerImpl) Percentages(w http.ResponseWriter, r *http.Request) {
	req := report.PercentageRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		GroupBy:   report.GroupBy(r.URL.Query().Get("group_by")),
	}
	if req.GroupBy == "" {
		req.GroupBy = report.GroupByEmployee
	}

	if plantID := r.URL.Query().Get("plant_id"); plantID != "" {
		id, err := strconv.ParseInt(plantID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid plant_id", nil)
			return
		}
		req.PlantID = &id
	}
	if departmentID := r.URL.Query().Get("department_id"); departmentID != "" {
		id, err := strconv.ParseInt(departmentID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid department_id", nil)
			return
		}
		req.DepartmentID = &id
	}
	for _, raw := range r.URL.Query()["employee_id"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		req.EmployeeIDs = append(req.EmployeeIDs, id)
	}

	result, err := h.reportService.AttendancePercentages(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// WithoutBiometric implements ReportHandler.
func (h *reportHandlerImpl) WithoutBiometric(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameters", nil)
		return
	}

	result, err := h.reportService.WithoutBiometric(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Materialize implements ReportHandler.
func (h *reportHandlerImpl) Materialize(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameters", nil)
		return
	}

	inserted, err := h.reportService.MaterializeAbsences(r.Context(), h.dateParam(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absences materialized", map[string]int{"inserted": inserted})
}
