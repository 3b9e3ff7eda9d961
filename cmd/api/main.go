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

	"github.com/dost-electric/workforce-backend-go/internal/config"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	appHTTP "github.com/dost-electric/workforce-backend-go/internal/handler/http"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/cron"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/database"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/jwt"
	"github.com/dost-electric/workforce-backend-go/internal/repository/postgresql"
	logService "github.com/dost-electric/workforce-backend-go/internal/service/activitylog"
	attendanceService "github.com/dost-electric/workforce-backend-go/internal/service/attendance"
	authService "github.com/dost-electric/workforce-backend-go/internal/service/auth"
	dashboardService "github.com/dost-electric/workforce-backend-go/internal/service/dashboard"
	employeeService "github.com/dost-electric/workforce-backend-go/internal/service/employee"
	payrollService "github.com/dost-electric/workforce-backend-go/internal/service/payroll"
	projectService "github.com/dost-electric/workforce-backend-go/internal/service/project"
	reportService "github.com/dost-electric/workforce-backend-go/internal/service/report"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	logRepo := postgresql.NewLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, attendanceRepo, payrollRepo, logRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, projectRepo, logRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, projectRepo, logRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, payrollRepo, logRepo)
	logSvc := logService.NewLogService(logRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, payrollRepo, projectRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, payrollRepo, projectRepo, logRepo)

	if err := seedSuperAdmin(context.Background(), userRepo, cfg.Admin); err != nil {
		fmt.Println("Error seeding super admin:", err)
		os.Exit(1)
	}

	scheduler := cron.NewScheduler()
	cron.NewLogJobs(logRepo, cfg.App.LogRetention).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, CORSOrigin: cfg.App.CORSOrigin},
		jwtService,
		appHTTP.NewAuthHandler(jwtService, authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewProjectHandler(projectSvc),
		appHTTP.NewLogHandler(logSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server started", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}

// seedSuperAdmin creates the bootstrap SUPER_ADMIN account when the
// configured email has no user yet. Without it a fresh database has no
// account that can log in.
func seedSuperAdmin(ctx context.Context, userRepo user.UserRepository, admin config.AdminConfig) error {
	if admin.Email == "" {
		return nil
	}

	_, err := userRepo.GetByEmail(ctx, admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := user.User{
		Email:        admin.Email,
		PasswordHash: string(hash),
		Name:         admin.Name,
		Role:         user.RoleSuperAdmin,
	}
	if _, err := userRepo.Create(ctx, u); err != nil {
		return err
	}

	slog.Info("Super admin account created", "email", admin.Email)
	return nil
}
