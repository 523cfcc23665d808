package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/plantsec/hr-access-backend-go/internal/config"
	"github.com/plantsec/hr-access-backend-go/internal/domain/report"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/email"
)

type AbsenceJobs struct {
	reportSvc report.ReportService
	emailSvc  email.EmailService
	cfg       config.CronConfig
	loc       *time.Location

	mu      sync.Mutex
	lastRun string // date already materialized, "YYYY-MM-DD"
}

func NewAbsenceJobs(
	reportSvc report.ReportService,
	emailSvc email.EmailService,
	cfg config.CronConfig,
	loc *time.Location,
) *AbsenceJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &AbsenceJobs{
		reportSvc: reportSvc,
		emailSvc:  emailSvc,
		cfg:       cfg,
		loc:       loc,
	}
}

func (j *AbsenceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("materialize_absences", j.cfg.PollInterval, j.MaterializeDailyAbsences)
}

// MaterializeDailyAbsences inserts absent records for every eligible employee
// with no attendance record today, then alerts HR about critical streaks.
// The scheduler polls; the job itself fires only during the configured local
// hour and at most once per date.
func (j *AbsenceJobs) MaterializeDailyAbsences(ctx context.Context) error {
	now := time.Now().In(j.loc)
	if now.Hour() != j.cfg.AbsenceHour {
		return nil
	}

	date := now.Format("2006-01-02")

	j.mu.Lock()
	if j.lastRun == date {
		j.mu.Unlock()
		return nil
	}
	j.lastRun = date
	j.mu.Unlock()

	slog.Info("Cron: Starting absence materialization", "date", date)

	inserted, err := j.reportSvc.MaterializeAbsences(ctx, date, report.Filter{})
	if err != nil {
		return fmt.Errorf("failed to materialize absences: %w", err)
	}
	slog.Info("Cron: Absence materialization completed", "date", date, "inserted", inserted)

	critical, err := j.reportSvc.CriticalAbsences(ctx, date, report.Filter{})
	if err != nil {
		return fmt.Errorf("failed to compute critical absences: %w", err)
	}
	if len(critical) == 0 {
		return nil
	}

	if err := j.emailSvc.SendCriticalAbsenceAlert(date, critical); err != nil {
		// Alerting is best effort; the materialized records already stand.
		slog.Error("Cron: Failed to send critical absence alert", "date", date, "error", err)
	}

	return nil
}
