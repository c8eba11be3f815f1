package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env            string
	Version        string
	AllowedOrigins []string
	LogLevel       slog.Level
}

// Handlers groups every HTTP handler mounted under /api/v1.
type Handlers struct {
	Auth     AuthHandler
	TimeLog  TimeLogHandler
	Shift    ShiftHandler
	Payroll  PayrollHandler
	Office   OfficeHandler
	Employee EmployeeHandler
	TimeOff  TimeOffHandler
	Setting  SettingHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rostering-cmlabs"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Post("/logout", h.Auth.Logout)
			})

			r.Route("/time-logs", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionTimeLogOwn))
				r.Post("/clock-in", h.TimeLog.ClockIn)
				r.Post("/clock-out", h.TimeLog.ClockOut)
				r.Post("/break/start", h.TimeLog.StartBreak)
				r.Post("/break/end", h.TimeLog.EndBreak)
				r.Get("/my", h.TimeLog.ListMy)
				r.Get("/{id}", h.TimeLog.Get)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionShiftManage))
					r.Post("/", h.Shift.Create)
					r.Post("/auto-assign", h.Shift.AutoAssign)
					r.Patch("/{id}/status", h.Shift.UpdateStatus)
					r.Patch("/{id}/employee", h.Shift.Reassign)
				})
			})

			r.With(middleware.RequirePermission(user.PermissionPayrollCompute)).
				Post("/payroll/compute", h.Payroll.Compute)

			r.Route("/offices", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionOfficeView))
					r.Get("/", h.Office.List)
					r.Get("/{id}", h.Office.Get)
					r.Post("/{id}/fence-check", h.Office.CheckFence)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionOfficeManage))
					r.Post("/", h.Office.Create)
					r.Put("/{id}", h.Office.Update)
					r.Delete("/{id}", h.Office.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/{id}", h.Employee.GetEmployee)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Put("/{id}/offices/{officeID}", h.Employee.AddOffice)
					r.Delete("/{id}/offices/{officeID}", h.Employee.RemoveOffice)
				})
			})

			r.Route("/time-offs", func(r chi.Router) {
				r.Get("/", h.TimeOff.List)
				r.With(middleware.RequirePermission(user.PermissionTimeOffRequest)).Post("/", h.TimeOff.Request)
				r.Post("/{id}/approve", h.TimeOff.Approve)
				r.Post("/{id}/reject", h.TimeOff.Reject)
			})

			r.Route("/settings", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionSettingView)).Get("/pay-rates", h.Setting.GetPayRates)
				r.With(middleware.RequirePermission(user.PermissionSettingManage)).Put("/pay-rates", h.Setting.UpdatePayRates)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionSettingView)).Get("/", h.Setting.ListHolidays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSettingManage))
					r.Post("/", h.Setting.CreateHoliday)
					r.Delete("/{id}", h.Setting.DeleteHoliday)
				})
			})
		})
	})
	return r
}
