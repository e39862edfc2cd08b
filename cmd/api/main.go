package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/config"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
	appHTTP "github.com/STS-Engineer/back-pointeuse/internal/handler/http"
	"github.com/STS-Engineer/back-pointeuse/internal/pkg/cron"
	"github.com/STS-Engineer/back-pointeuse/internal/pkg/database"
	deviceClient "github.com/STS-Engineer/back-pointeuse/internal/pkg/device"
	"github.com/STS-Engineer/back-pointeuse/internal/repository/postgresql"
	"github.com/STS-Engineer/back-pointeuse/internal/repository/static"
	attendanceService "github.com/STS-Engineer/back-pointeuse/internal/service/attendance"
	rosterService "github.com/STS-Engineer/back-pointeuse/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	loc := cfg.Location()

	var rosterRepo roster.Repository
	if cfg.Database.URL != "" {
		db, err := database.NewPostgreSQLDB(cfg.Database.URL)
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			os.Exit(1)
		}
		defer db.Close()
		rosterRepo = postgresql.NewRosterRepository(db)
	} else {
		slog.Info("No DATABASE_URL configured, using compiled-in roster")
		rosterRepo = static.NewRosterRepository()
	}

	store, err := rosterService.LoadStore(context.Background(), rosterRepo)
	if err != nil {
		fmt.Println("Error loading roster:", err)
		os.Exit(1)
	}
	slog.Info("Roster loaded", "employees", store.Size())

	var source device.Source = deviceClient.NewTerminal(cfg.Device.IP, cfg.Device.Port, cfg.Device.Timeout, loc)
	fallback := deviceClient.NewMockSource(store.Employees(), loc, nil)

	service := attendanceService.NewAttendanceService(source, fallback, store, loc)

	// First snapshot before the server accepts traffic.
	if result, err := service.Refresh(context.Background()); err != nil {
		fmt.Println("Error building initial snapshot:", err)
		os.Exit(1)
	} else {
		slog.Info("Initial snapshot ready", "source", result.Source, "records", result.RecordsCount)
	}

	scheduler := cron.NewScheduler()
	cron.NewRefreshJobs(service).RegisterJobs(scheduler, cfg.App.RefreshInterval)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(service, store, loc)
	router := appHTTP.NewRouter(cfg, attendanceHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
