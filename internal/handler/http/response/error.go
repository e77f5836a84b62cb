package response

import (
	"errors"
	"net/http"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/attendance"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/auth"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/commission"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/patient"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payroll"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/user"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and user
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Staff and patients
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, patient.ErrPatientNotFound):
		NotFound(w, "Patient not found")

	// Appointments
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		NotFound(w, "Appointment not found")
	case errors.Is(err, appointment.ErrFlowTerminal):
		Conflict(w, "Appointment is already in its final state")
	case errors.Is(err, appointment.ErrFlowTransitionInvalid):
		Conflict(w, "Invalid appointment flow transition")
	case errors.Is(err, appointment.ErrFlowConflict):
		Conflict(w, "Appointment was updated concurrently, retry")
	case errors.Is(err, appointment.ErrAssignedStaffRequired):
		BadRequest(w, "An assigned staff member is required for this step", nil)
	case errors.Is(err, appointment.ErrInvalidBookingStatus):
		BadRequest(w, "Invalid booking status", nil)

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Staff member is already clocked in for this date")
	case errors.Is(err, attendance.ErrNoOpenRecord):
		Conflict(w, "No open attendance record to clock out")

	// Payroll
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyGenerated):
		Conflict(w, "Payroll already generated for this period")
	case errors.Is(err, payroll.ErrNoAttendanceData):
		BadRequest(w, "No attendance data found for the requested period", nil)
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")

	// Payments and commissions
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, commission.ErrAlreadyCalculated):
		Conflict(w, "Commission already calculated for this payment")
	case errors.Is(err, commission.ErrCommissionNotFound):
		NotFound(w, "Commission record not found")
	case errors.Is(err, commission.ErrEarningsNotFound):
		NotFound(w, "Clinic earnings record not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
