package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/plantsec/hr-access-backend-go/internal/config"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/device"
	"github.com/plantsec/hr-access-backend-go/internal/handler/http/middleware"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	deviceRepo device.DeviceRepository,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-access-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.HeaderDeviceID, middleware.HeaderDeviceKey},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Biometric readers authenticate with a device key, not a JWT.
		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceAuth(deviceRepo))
			r.Post("/attendance/events", attendanceHandler.RegisterEvent)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Create)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)
				r.Put("/{id}", attendanceHandler.Update)
				r.Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", reportHandler.Daily)
				r.Get("/absent-today", reportHandler.AbsentToday)
				r.Get("/present-today", reportHandler.PresentToday)
				r.Get("/critical-absences", reportHandler.CriticalAbsences)
				r.Get("/group-statistics", reportHandler.GroupStatistics)
				r.Get("/range", reportHandler.Range)
				r.Get("/percentages", reportHandler.Percentages)
				r.Get("/without-biometric", reportHandler.WithoutBiometric)
				r.Post("/materialize", reportHandler.Materialize)
			})
		})
	})
	return r
}
