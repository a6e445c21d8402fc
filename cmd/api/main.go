package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-dashboard/internal/handler/http"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-dashboard/internal/repository/postgresql"
	"github.com/cmlabs-hris/attendance-dashboard/internal/seed"
	attendanceService "github.com/cmlabs-hris/attendance-dashboard/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-dashboard/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-dashboard/internal/service/employee"
	reportService "github.com/cmlabs-hris/attendance-dashboard/internal/service/report"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(os.Stdout, logger.Options{
		App:     cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.SlogLevel(),
	})
	slog.SetDefault(log)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clk := clock.NewSystem(loc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := sse.NewHub(32)
	st := store.New(log)
	st.Subscribe(appHTTP.PublishStateChanges(hub))

	if err := seedStore(ctx, cfg, st); err != nil {
		// the dashboard still serves an empty roster; the failure is visible
		// through the snapshot's error field
		slog.Error("Failed to seed store", "source", cfg.Seed.Source, "error", err)
	}

	employeeSvc := employeeService.NewEmployeeService(st, clk)
	attendanceSvc := attendanceService.NewAttendanceService(st, clk, cfg.Attendance.StandardWorkHours)
	reportSvc := reportService.NewReportService(st, clk)
	dashboardSvc := dashboardService.NewDashboardService(st, clk)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         log,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, appHTTP.Handlers{
		State:      appHTTP.NewStateHandler(st),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Events:     appHTTP.NewEventsHandler(hub, clk, 30*time.Second),
	})

	scheduler := cron.NewScheduler()
	cron.NewClockJobs(clk, hub).RegisterJobs(scheduler, cfg.App.ClockTickInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// request contexts end with the signal so open event streams return
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		slog.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func seedStore(ctx context.Context, cfg *config.Config, st *store.Store) error {
	switch cfg.Seed.Source {
	case config.SeedSourceJSON:
		return seed.Run(ctx, st, seed.NewFileLoader(cfg.Seed.FilePath))
	case config.SeedSourcePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			st.Dispatch(store.SetError{Message: err.Error()})
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		return seed.Run(ctx, st, postgresql.NewSeedRepository(db))
	default:
		return nil
	}
}
