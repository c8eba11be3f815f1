package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/cmlabs-hris/rostering-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/rostering-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/rostering-backend-go/internal/repository/postgresql"
	employeeService "github.com/cmlabs-hris/rostering-backend-go/internal/service/employee"
	officeService "github.com/cmlabs-hris/rostering-backend-go/internal/service/office"
	payrollService "github.com/cmlabs-hris/rostering-backend-go/internal/service/payroll"
	settingService "github.com/cmlabs-hris/rostering-backend-go/internal/service/setting"
	shiftService "github.com/cmlabs-hris/rostering-backend-go/internal/service/shift"
	timeLogService "github.com/cmlabs-hris/rostering-backend-go/internal/service/timelog"
	timeOffService "github.com/cmlabs-hris/rostering-backend-go/internal/service/timeoff"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactor := postgresql.NewTransactor(db)
	officeRepo := postgresql.NewOfficeRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timeLogRepo := postgresql.NewTimeLogRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	revoked := cache.NewMemoryStore()
	go revoked.Janitor(ctx)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, revoked)

	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, officeRepo, timeOffRepo, transactor, nil)
	timeLogSvc := timeLogService.NewTimeLogService(timeLogRepo, employeeRepo, officeRepo, shiftService.NewShiftMatcher(shiftRepo), nil)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, shiftRepo, officeRepo, settingRepo)
	officeSvc := officeService.NewOfficeService(officeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, officeRepo)
	timeOffSvc := timeOffService.NewTimeOffService(timeOffRepo)
	settingSvc := settingService.NewSettingService(settingRepo, transactor)

	scheduler := cron.NewScheduler(time.UTC, 10*time.Minute)
	autoAssignJobs := cron.NewAutoAssignJobs(officeRepo, shiftSvc, cfg.AutoAssign.LeadDays)
	if err := autoAssignJobs.RegisterJobs(scheduler, cfg.AutoAssign.Cron); err != nil {
		slog.Error("Failed to register cron jobs", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:            cfg.App.Env,
		Version:        version,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	}, JWTService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(JWTService),
		TimeLog:  appHTTP.NewTimeLogHandler(timeLogSvc),
		Shift:    appHTTP.NewShiftHandler(shiftSvc),
		Payroll:  appHTTP.NewPayrollHandler(payrollSvc),
		Office:   appHTTP.NewOfficeHandler(officeSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		TimeOff:  appHTTP.NewTimeOffHandler(timeOffSvc),
		Setting:  appHTTP.NewSettingHandler(settingSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
