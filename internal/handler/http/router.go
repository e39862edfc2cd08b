package http

import (
	"log/slog"
	"os"

	"github.com/STS-Engineer/back-pointeuse/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(cfg *config.Config, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "back-pointeuse"),
		slog.String("env", cfg.App.Env),
	)

	allowedOrigins := cfg.App.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", attendanceHandler.Health)
		r.Get("/attendance", attendanceHandler.List)
		r.Get("/summary", attendanceHandler.Summary)
		r.Get("/today", attendanceHandler.Today)
		r.Get("/by-date/{date}", attendanceHandler.ByDate)
		r.Route("/by-employee/{id}", func(r chi.Router) {
			r.Get("/", attendanceHandler.ByEmployee)
			r.Get("/date/{date}", attendanceHandler.ByEmployeeAndDate)
		})
		r.Get("/report/{start}/{end}", attendanceHandler.Report)
		r.Get("/available-dates", attendanceHandler.AvailableDates)
		r.Get("/employees", attendanceHandler.Employees)
		r.Get("/logs", attendanceHandler.Logs)
		r.Get("/diagnostics", attendanceHandler.Diagnostics)
		r.Post("/refresh", attendanceHandler.Refresh)
	})
	return r
}
