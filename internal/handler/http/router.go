package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/config"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/handler/http/middleware"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth        AuthHandler
	Staff       StaffHandler
	Patient     PatientHandler
	Appointment AppointmentHandler
	Attendance  AttendanceHandler
	Payroll     PayrollHandler
	Payment     PaymentHandler
	Commission  CommissionHandler
	Report      ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kreativdental-api"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/patients", func(r chi.Router) {
				r.Post("/", h.Patient.Create)
				r.Get("/", h.Patient.List)
				r.Get("/{id}", h.Patient.Get)
				r.Put("/{id}", h.Patient.Update)
			})

			r.Route("/appointments", func(r chi.Router) {
				r.Post("/", h.Appointment.Create)
				r.Get("/", h.Appointment.List)
				r.Get("/{id}", h.Appointment.Get)
				r.Patch("/{id}/booking-status", h.Appointment.UpdateBookingStatus)
				r.Post("/{id}/advance", h.Appointment.AdvanceFlow)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/", h.Attendance.List)
				r.Get("/staff/{staffID}", h.Attendance.ListByStaff)
				r.Get("/summary", h.Attendance.PeriodSummary)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.Payment.Record)
				r.Get("/", h.Payment.List)
				r.Get("/{id}", h.Payment.Get)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/auth/register", h.Auth.Register)

				r.Route("/staff", func(r chi.Router) {
					r.Post("/", h.Staff.Create)
					r.Get("/", h.Staff.List)
					r.Get("/{id}", h.Staff.Get)
					r.Put("/{id}", h.Staff.Update)
					r.Delete("/{id}", h.Staff.Deactivate)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Post("/generate", h.Payroll.Generate)
					r.Get("/", h.Payroll.List)
					r.Get("/{id}", h.Payroll.Get)
					r.Post("/{id}/approve", h.Payroll.Approve)
					r.Post("/{id}/mark-paid", h.Payroll.MarkPaid)
				})

				r.Route("/commissions", func(r chi.Router) {
					r.Get("/", h.Commission.List)
					r.Post("/mark-paid", h.Commission.MarkPaid)
					r.Get("/earnings/{paymentID}", h.Commission.GetEarnings)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/financial-summary", h.Report.FinancialSummary)
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
