package http

import (
	"log/slog"
	"os"

	"github.com/dost-electric/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env        string
	CORSOrigin string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	projectHandler ProjectHandler,
	logHandler LogHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/refresh", authHandler.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)
				r.Get("/{id}/balance", employeeHandler.Balance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				// Role scoping happens in the service layer: employees
				// only see and mark their own records.
				r.Get("/", attendanceHandler.List)
				r.Post("/", attendanceHandler.Upsert)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/approve", attendanceHandler.Approve)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Post("/", payrollHandler.Create)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/approve", payrollHandler.Approve)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})

			r.Route("/objects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Get("/{id}/stats", projectHandler.Stats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/income", projectHandler.AddIncome)
				})

				// Super admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperAdminOnly)
					r.Post("/", projectHandler.Create)
					r.Delete("/{id}", projectHandler.Delete)
				})
			})

			r.Route("/logs", func(r chi.Router) {
				r.Get("/", logHandler.List)
				r.Post("/", logHandler.Create)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/dashboard", dashboardHandler.Summary)
				r.Get("/reports/export.json", reportHandler.ExportJSON)
				r.Get("/reports/{kind}.csv", reportHandler.CSV)
			})
		})
	})

	return r
}
