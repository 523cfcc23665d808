package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/plantsec/hr-access-backend-go/internal/config"
	"github.com/plantsec/hr-access-backend-go/internal/domain/attendance"
	appHTTP "github.com/plantsec/hr-access-backend-go/internal/handler/http"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/cron"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/database"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/email"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/jwt"
	"github.com/plantsec/hr-access-backend-go/internal/repository/postgresql"
	attendanceService "github.com/plantsec/hr-access-backend-go/internal/service/attendance"
	reportService "github.com/plantsec/hr-access-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone:", err)
	}

	sched, err := attendance.NewSchedule(cfg.Schedule.WorkStart, cfg.Schedule.GraceMinutes)
	if err != nil {
		log.Fatal("Invalid schedule configuration:", err)
	}

	recordRepo := postgresql.NewRecordRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	plantRepo := postgresql.NewPlantRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	groupRepo := postgresql.NewGroupRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	attendanceSvc := attendanceService.NewAttendanceService(recordRepo, employeeRepo, deviceRepo, plantRepo, sched, loc)
	reportSvc := reportService.NewReportService(recordRepo, employeeRepo, plantRepo, departmentRepo, groupRepo, sched, loc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, loc)

	router := appHTTP.NewRouter(cfg, jwtService, deviceRepo, attendanceHandler, reportHandler)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		absenceJobs := cron.NewAbsenceJobs(reportSvc, emailService, cfg.Cron, loc)
		absenceJobs.RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
