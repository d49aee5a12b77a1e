package http

import (
	"log/slog"

	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	salaryRuleHandler SalaryRuleHandler,
	timeTrackingHandler TimeTrackingHandler,
	notificationHandler NotificationHandler,
	documentHandler DocumentHandler,
	requestHandler RequestHandler,
	orderHandler OrderHandler,
	recruitmentHandler RecruitmentHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.With(
				jwtauth.Verifier(JWTService.JWTAuth()),
				middleware.AuthRequired(JWTService),
			).Post("/logout", authHandler.Logout)
		})

		// EventSource cannot set headers; the handler checks the token itself
		r.Get("/notifications/stream", notificationHandler.Stream)

		r.Route("/careers", func(r chi.Router) {
			r.Get("/vacancies", recruitmentHandler.ListOpenVacancies)
			r.Post("/vacancies/{id}/apply", recruitmentHandler.Apply)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.RequireEmployee)

				r.Get("/dashboard", dashboardHandler.GetEmployeeDashboard)

				r.Post("/clock-in", timeTrackingHandler.ClockIn)
				r.Post("/clock-out", timeTrackingHandler.ClockOut)
				r.Get("/today", timeTrackingHandler.Today)
				r.Get("/time-entries", timeTrackingHandler.MyEntries)

				r.Get("/salary", employeeHandler.MySalary)

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", requestHandler.ListMine)
					r.Post("/", requestHandler.Submit)
					r.Get("/{id}", requestHandler.GetMine)
				})

				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", notificationHandler.List)
					r.Get("/unread-count", notificationHandler.UnreadCount)
					r.Get("/stream-token", notificationHandler.GetSSEToken)
					r.Post("/read-all", notificationHandler.MarkAllAsRead)
					r.Post("/{id}/read", notificationHandler.MarkAsRead)
				})
			})

			// HR only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Route("/hr", func(r chi.Router) {
					r.Get("/dashboard", dashboardHandler.GetHRDashboard)
					r.Get("/employees/{id}", dashboardHandler.GetEmployeeDetail)

					r.Route("/requests", func(r chi.Router) {
						r.Get("/pending", requestHandler.ListPending)
						r.Post("/bulk-approve", requestHandler.BulkApprove)
						r.Post("/bulk-reject", requestHandler.BulkReject)
						r.Post("/{id}/approve", requestHandler.Approve)
						r.Post("/{id}/reject", requestHandler.Reject)
						r.Put("/{id}/comment", requestHandler.Comment)
					})
				})

				r.Post("/users", authHandler.CreateUser)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Put("/{id}/salary-rule", employeeHandler.AssignSalaryRule)
					r.Get("/{id}/salary", employeeHandler.SalaryHistory)
				})

				r.Route("/salary-rules", func(r chi.Router) {
					r.Get("/", salaryRuleHandler.List)
					r.Post("/", salaryRuleHandler.Create)
					r.Get("/{id}", salaryRuleHandler.Get)
					r.Put("/{id}", salaryRuleHandler.Update)
				})

				r.Get("/time-entries", timeTrackingHandler.List)

				r.Route("/documents", func(r chi.Router) {
					r.Get("/", documentHandler.ListDocuments)
					r.Get("/{id}", documentHandler.GetDocument)
					r.Put("/{id}/status", documentHandler.SetStatus)
					r.Get("/{id}/pdf", documentHandler.DownloadPDF)
				})

				r.Route("/contracts", func(r chi.Router) {
					r.Get("/", documentHandler.ListContracts)
					r.Post("/", documentHandler.IssueContract)
					r.Get("/{id}", documentHandler.GetContract)
				})

				r.Route("/leave-records", func(r chi.Router) {
					r.Get("/", documentHandler.ListLeaveRecords)
					r.Post("/", documentHandler.IssueLeaveRecord)
					r.Get("/{id}", documentHandler.GetLeaveRecord)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", requestHandler.List)
					r.Get("/{id}", requestHandler.Get)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", orderHandler.List)
					r.Post("/", orderHandler.Create)
					r.Get("/{id}", orderHandler.Get)
					r.Put("/{id}", orderHandler.Update)
				})

				r.Route("/vacancies", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListVacancies)
					r.Post("/", recruitmentHandler.CreateVacancy)
					r.Get("/{id}", recruitmentHandler.GetVacancy)
					r.Put("/{id}", recruitmentHandler.UpdateVacancy)
					r.Put("/{id}/active", recruitmentHandler.SetVacancyActive)
				})

				r.Route("/candidates", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListCandidates)
					r.Post("/bulk-status", recruitmentHandler.BulkSetCandidateStatus)
					r.Get("/{id}", recruitmentHandler.GetCandidate)
					r.Put("/{id}/notes", recruitmentHandler.UpdateCandidateNotes)
					r.Get("/{id}/resume", recruitmentHandler.DownloadResume)
				})
			})
		})
	})
	return r
}
