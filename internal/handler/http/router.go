package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/config"
	"github.com/workpoint-hr/hrm-backend-go/internal/handler/http/middleware"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/jwt"
)

func NewRouter(
	appConfig config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/status", attendanceHandler.Status)
				r.Get("/report/monthly", attendanceHandler.MonthlyReport)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/report/daily", attendanceHandler.DailyReport)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.ListMine)
				r.Get("/balances", leaveHandler.Balances)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.ListAll)
					r.Post("/{leaveID}/approve", leaveHandler.Approve)
					r.Post("/{leaveID}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/salary", func(r chi.Router) {
					r.Get("/my", payrollHandler.GetMySalary)
					r.Get("/my/slip", payrollHandler.GetMySalarySlip)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/{employeeID}", payrollHandler.GetSalary)
						r.Put("/{employeeID}", payrollHandler.UpdateSalary)
					})
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetMe)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Get("/{employeeID}", employeeHandler.Get)
				})
			})
		})
	})
	return r
}
