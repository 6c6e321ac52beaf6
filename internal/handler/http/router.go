package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/prms-backend-go/internal/config"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Connection   ConnectionHandler
	Employee     EmployeeHandler
	Leave        LeaveHandler
	Timesheet    TimesheetHandler
	Benefit      BenefitHandler
	Payroll      PayrollHandler
	Document     DocumentHandler
	Notification NotificationHandler
}

func NewRouter(cfg config.AppConfig, uploadDir string, JWTService jwt.Service, provider *realtime.Provider, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.Name),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
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
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.Provide(provider))

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Route("/notifications", func(r chi.Router) {
			// EventSource authenticates with a query token instead of a header.
			r.Get("/stream", h.Notification.Stream)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/read", h.Notification.MarkAsRead)
				r.Post("/read-all", h.Notification.MarkAllAsRead)
				r.Get("/sse-token", h.Notification.GetSSEToken)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/connection", func(r chi.Router) {
				r.Get("/", h.Connection.State)
				r.Post("/", h.Connection.Connect)
				r.Delete("/", h.Connection.Disconnect)
				r.Post("/refresh", h.Connection.Refresh)
			})
			r.Get("/data", h.Connection.Data)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Post("/{id}/avatar", h.Employee.UploadAvatar)
				})

				r.With(middleware.RequirePermission(user.PermissionBenefitsManage)).Put("/{id}/benefits", h.Benefit.Update)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.Submit)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Patch("/{id}/status", h.Leave.UpdateStatus)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", h.Timesheet.List)
				r.With(middleware.RequirePermission(user.PermissionTimesheetSubmit)).Post("/", h.Timesheet.Submit)
			})

			r.With(middleware.RequirePermission(user.PermissionBenefitsView)).Get("/benefits", h.Benefit.List)

			r.Route("/payroll", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).Get("/", h.Payroll.List)
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).Get("/{id}/payslip", h.Payroll.Payslip)
				r.With(middleware.RequirePermission(user.PermissionPayrollProcess)).Post("/batch", h.Payroll.ProcessBatch)
				r.With(middleware.RequirePermission(user.PermissionPayrollExport)).Get("/export", h.Payroll.Export)
			})

			r.Post("/tax/calculate", h.Payroll.CalculateTax)

			r.Route("/documents", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionDocumentView)).Get("/", h.Document.List)
				r.With(middleware.RequirePermission(user.PermissionDocumentUpload)).Post("/", h.Document.Upload)
			})
		})
	})
	return r
}
