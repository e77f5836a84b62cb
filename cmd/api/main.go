package main

import (
	"fmt"
	"net/http"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/config"
	appHTTP "github.com/Ipswich38/Kreativdentalplus-sub000/internal/handler/http"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/cron"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/jwt"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/repository/postgresql"
	appointmentService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/appointment"
	attendanceService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/attendance"
	authService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/auth"
	commissionService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/commission"
	patientService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/patient"
	paymentService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/payment"
	payrollService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/payroll"
	reportService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/report"
	staffService "github.com/Ipswich38/Kreativdentalplus-sub000/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	patientRepo := postgresql.NewPatientRepository(db)
	appointmentRepo := postgresql.NewAppointmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	commissionRepo := postgresql.NewCommissionRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	staffSvc := staffService.NewStaffService(staffRepo)
	patientSvc := patientService.NewPatientService(patientRepo)
	appointmentSvc := appointmentService.NewAppointmentService(appointmentRepo, patientRepo, staffRepo)
	timeCalc := attendanceService.NewTimeCalculator()
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo, appointmentRepo, timeCalc)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceSvc)
	commissionSvc := commissionService.NewCommissionService(commissionRepo, paymentRepo, appointmentRepo, staffRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, appointmentRepo, commissionSvc)
	reportSvc := reportService.NewReportService(reportRepo)

	scheduler := cron.NewScheduler()
	cron.RegisterAppointmentTasks(scheduler, appointmentSvc)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtService),
		Staff:       appHTTP.NewStaffHandler(staffSvc),
		Patient:     appHTTP.NewPatientHandler(patientSvc),
		Appointment: appHTTP.NewAppointmentHandler(appointmentSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Payment:     appHTTP.NewPaymentHandler(paymentSvc),
		Commission:  appHTTP.NewCommissionHandler(commissionSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
