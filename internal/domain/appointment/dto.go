package appointment

import (
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/validator"
)

type CreateAppointmentRequest struct {
	PatientID       string  `json:"patient_id"`
	DentistID       string  `json:"dentist_id"`
	AssignedStaffID *string `json:"assigned_staff_id,omitempty"`
	ServiceName     string  `json:"service_name"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (r *CreateAppointmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PatientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "patient_id",
			Message: "patient_id is required",
		})
	}

	if validator.IsEmpty(r.DentistID) {
		errs = append(errs, validator.ValidationError{
			Field:   "dentist_id",
			Message: "dentist_id is required",
		})
	}

	if validator.IsEmpty(r.ServiceName) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_name",
			Message: "service_name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdvanceFlowRequest moves an appointment one step forward through the
// patient-flow lifecycle. AssignedStaffID is only consulted on the
// arrived -> ready_for_treatment step, where it is mandatory.
type AdvanceFlowRequest struct {
	AppointmentID   string  `json:"-"`
	AssignedStaffID *string `json:"assigned_staff_id,omitempty"`
}

type UpdateBookingStatusRequest struct {
	AppointmentID string `json:"-"`
	BookingStatus string `json:"booking_status"`
}

func (r *UpdateBookingStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidBookingStatus(BookingStatus(r.BookingStatus)) {
		errs = append(errs, validator.ValidationError{
			Field:   "booking_status",
			Message: "booking_status must be one of scheduled, confirmed, completed, cancelled, no_show",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AppointmentResponse struct {
	ID              string  `json:"id"`
	PatientID       string  `json:"patient_id"`
	PatientName     *string `json:"patient_name,omitempty"`
	DentistID       string  `json:"dentist_id"`
	DentistName     *string `json:"dentist_name,omitempty"`
	AssignedStaffID *string `json:"assigned_staff_id,omitempty"`
	ServiceName     string  `json:"service_name"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	DurationMinutes int     `json:"duration_minutes"`
	BookingStatus   string  `json:"booking_status"`
	FlowStatus      string  `json:"flow_status"`
	Notes           *string `json:"notes,omitempty"`
}
