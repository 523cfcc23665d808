package cron

import (
	"context"
	"testing"
	"time"

	"github.com/plantsec/hr-access-backend-go/internal/config"
	"github.com/plantsec/hr-access-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportService records materializer and alert-query calls.
type fakeReportService struct {
	report.ReportService

	materializeCalls int
	critical         []report.AbsentEntry
}

func (f *fakeReportService) MaterializeAbsences(_ context.Context, _ string, _ report.Filter) (int, error) {
	f.materializeCalls++
	return 2, nil
}

func (f *fakeReportService) CriticalAbsences(_ context.Context, _ string, _ report.Filter) ([]report.AbsentEntry, error) {
	return f.critical, nil
}

type fakeEmailService struct {
	sent [][]report.AbsentEntry
}

func (f *fakeEmailService) SendCriticalAbsenceAlert(_ string, absences []report.AbsentEntry) error {
	f.sent = append(f.sent, absences)
	return nil
}

func newTestJobs(reportSvc *fakeReportService, emailSvc *fakeEmailService, hour int) *AbsenceJobs {
	return NewAbsenceJobs(reportSvc, emailSvc, config.CronConfig{
		Enabled:      true,
		AbsenceHour:  hour,
		PollInterval: time.Hour,
	}, time.UTC)
}

func TestMaterializeDailyAbsencesRunsOncePerDate(t *testing.T) {
	reportSvc := &fakeReportService{
		critical: []report.AbsentEntry{{EmployeeID: 203, ConsecutiveAbsentDays: 3}},
	}
	emailSvc := &fakeEmailService{}
	jobs := newTestJobs(reportSvc, emailSvc, time.Now().UTC().Hour())

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)

	// Back-to-back polls within the configured hour materialize once.
	scheduler.RunOnce(context.Background())
	scheduler.RunOnce(context.Background())

	assert.Equal(t, 1, reportSvc.materializeCalls)
	require.Len(t, emailSvc.sent, 1)
	assert.Equal(t, int64(203), emailSvc.sent[0][0].EmployeeID)
}

func TestMaterializeDailyAbsencesOutsideConfiguredHour(t *testing.T) {
	reportSvc := &fakeReportService{}
	emailSvc := &fakeEmailService{}
	jobs := newTestJobs(reportSvc, emailSvc, (time.Now().UTC().Hour()+1)%24)

	require.NoError(t, jobs.MaterializeDailyAbsences(context.Background()))

	assert.Equal(t, 0, reportSvc.materializeCalls)
	assert.Empty(t, emailSvc.sent)
}

func TestMaterializeDailyAbsencesNoCriticalNoAlert(t *testing.T) {
	reportSvc := &fakeReportService{}
	emailSvc := &fakeEmailService{}
	jobs := newTestJobs(reportSvc, emailSvc, time.Now().UTC().Hour())

	require.NoError(t, jobs.MaterializeDailyAbsences(context.Background()))

	assert.Equal(t, 1, reportSvc.materializeCalls)
	assert.Empty(t, emailSvc.sent)
}
