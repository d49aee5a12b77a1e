package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/config"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/user"
	appHTTP "github.com/cmlabs-hris/hrm-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hrm-backend-go/internal/repository/postgresql"
	authService "github.com/cmlabs-hris/hrm-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hrm-backend-go/internal/service/dashboard"
	documentService "github.com/cmlabs-hris/hrm-backend-go/internal/service/document"
	employeeService "github.com/cmlabs-hris/hrm-backend-go/internal/service/employee"
	notificationService "github.com/cmlabs-hris/hrm-backend-go/internal/service/notification"
	orderService "github.com/cmlabs-hris/hrm-backend-go/internal/service/order"
	recruitmentService "github.com/cmlabs-hris/hrm-backend-go/internal/service/recruitment"
	requestService "github.com/cmlabs-hris/hrm-backend-go/internal/service/request"
	salaryService "github.com/cmlabs-hris/hrm-backend-go/internal/service/salary"
	timeTrackingService "github.com/cmlabs-hris/hrm-backend-go/internal/service/timetracking"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if cfg.Migration.OnStart {
		if err := database.Migrate(database.MigrateUp, cfg.Migration.Dir, cfg.DatabaseURL()); err != nil {
			log.Fatal("Failed to run migrations: ", err)
		}
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	fileStorage, err := storage.NewLocalStorage(cfg.App.StorageDir)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	txManager := postgresql.NewTxManager(db)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryRuleRepo := postgresql.NewSalaryRuleRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	vacancyRepo := postgresql.NewVacancyRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, employeeRepo, JWTService)
	salarySvc := salaryService.NewSalaryRuleService(salaryRuleRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, salaryRuleRepo, timeEntryRepo, time.Now)
	timeSvc := timeTrackingService.NewTimeTrackingService(timeEntryRepo, time.Now, cfg.Location())
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	documentSvc := documentService.NewDocumentService(txManager, documentRepo, contractRepo, leaveRecordRepo, employeeRepo)
	requestSvc := requestService.NewRequestService(requestRepo, notificationSvc, documentSvc)
	orderSvc := orderService.NewOrderService(orderRepo, notificationSvc)
	recruitmentSvc := recruitmentService.NewRecruitmentService(txManager, vacancyRepo, candidateRepo, fileStorage)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, requestSvc, notificationSvc, timeSvc, documentSvc)

	if err := bootstrapHR(context.Background(), cfg, authSvc); err != nil {
		log.Fatal("Failed to bootstrap HR account: ", err)
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewSalaryRuleHandler(salarySvc),
		appHTTP.NewTimeTrackingHandler(timeSvc),
		appHTTP.NewNotificationHandler(notificationSvc, JWTService),
		appHTTP.NewDocumentHandler(documentSvc),
		appHTTP.NewRequestHandler(requestSvc),
		appHTTP.NewOrderHandler(orderSvc),
		appHTTP.NewRecruitmentHandler(recruitmentSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server started", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	// Open SSE streams end when their request context is cancelled.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-cmlabs"),
		slog.String("env", cfg.App.Env),
	)
}

// bootstrapHR creates the first HR account so HR routes are reachable on a fresh database.
func bootstrapHR(ctx context.Context, cfg *config.Config, authSvc auth.AuthService) error {
	if cfg.Bootstrap.HREmail == "" {
		return nil
	}

	req := auth.CreateUserRequest{
		Email:    cfg.Bootstrap.HREmail,
		Password: cfg.Bootstrap.HRPassword,
		Role:     user.RoleHR,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	created, isNew, err := authSvc.EnsureUser(ctx, req)
	if err != nil {
		return err
	}
	if isNew {
		slog.Info("HR account created", "email", created.Email)
	}
	return nil
}
