package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/patient"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
)

type AppointmentServiceImpl struct {
	appointmentRepo appointment.AppointmentRepository
	patientRepo     patient.PatientRepository
	staffRepo       staff.StaffRepository
	now             func() time.Time
}

func NewAppointmentService(
	appointmentRepo appointment.AppointmentRepository,
	patientRepo patient.PatientRepository,
	staffRepo staff.StaffRepository,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		staffRepo:       staffRepo,
		now:             time.Now,
	}
}

// WithClock overrides the service clock. Used by tests to drive the overdue
// sweep without real-time waits.
func (s *AppointmentServiceImpl) WithClock(now func() time.Time) *AppointmentServiceImpl {
	s.now = now
	return s
}

func (s *AppointmentServiceImpl) Create(ctx context.Context, req appointment.CreateAppointmentRequest) (appointment.AppointmentResponse, error) {
	if err := req.Validate(); err != nil {
		return appointment.AppointmentResponse{}, err
	}

	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return appointment.AppointmentResponse{}, err
	}
	if _, err := s.staffRepo.GetByID(ctx, req.DentistID); err != nil {
		return appointment.AppointmentResponse{}, err
	}

	apptDate, _ := time.Parse("2006-01-02", req.Date)

	a := appointment.Appointment{
		PatientID:       req.PatientID,
		DentistID:       req.DentistID,
		AssignedStaffID: req.AssignedStaffID,
		ServiceName:     req.ServiceName,
		Date:            apptDate,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		BookingStatus:   appointment.BookingScheduled,
		FlowStatus:      appointment.FlowScheduled,
		Notes:           req.Notes,
	}

	created, err := s.appointmentRepo.Create(ctx, a)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	return mapToAppointmentResponse(created), nil
}

func (s *AppointmentServiceImpl) Get(ctx context.Context, id string) (appointment.AppointmentResponse, error) {
	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}
	return mapToAppointmentResponse(a), nil
}

func (s *AppointmentServiceImpl) ListByDateRange(ctx context.Context, start, end time.Time) ([]appointment.AppointmentResponse, error) {
	appointments, err := s.appointmentRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]appointment.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, mapToAppointmentResponse(a))
	}
	return result, nil
}

func (s *AppointmentServiceImpl) UpdateBookingStatus(ctx context.Context, req appointment.UpdateBookingStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.appointmentRepo.UpdateBookingStatus(ctx, req.AppointmentID, appointment.BookingStatus(req.BookingStatus))
}

// AdvanceFlow moves an appointment one step through the patient-flow
// lifecycle. The arrived -> ready_for_treatment step additionally requires an
// assigned staff member, which later drives commission attribution.
func (s *AppointmentServiceImpl) AdvanceFlow(ctx context.Context, req appointment.AdvanceFlowRequest) (appointment.AppointmentResponse, error) {
	current, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	next, err := appointment.NextFlowStatus(current.FlowStatus)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	var assignedStaffID *string
	if next == appointment.FlowReadyForTreatment {
		assignedStaffID = req.AssignedStaffID
		if assignedStaffID == nil {
			assignedStaffID = current.AssignedStaffID
		}
		if assignedStaffID == nil || *assignedStaffID == "" {
			return appointment.AppointmentResponse{}, appointment.ErrAssignedStaffRequired
		}
		if _, err := s.staffRepo.GetByID(ctx, *assignedStaffID); err != nil {
			return appointment.AppointmentResponse{}, err
		}
	}

	updated, err := s.appointmentRepo.AdvanceFlow(ctx, current.ID, current.FlowStatus, next, assignedStaffID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	return mapToAppointmentResponse(updated), nil
}

// ExpireOverdue force-moves appointments whose scheduled window has elapsed
// and that never reached a terminal flow state to awaiting_payment. The
// repository applies it as a single conditional update, so a manual
// transition that commits first always wins.
func (s *AppointmentServiceImpl) ExpireOverdue(ctx context.Context) (int64, error) {
	moved, err := s.appointmentRepo.ExpireOverdueFlows(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if moved > 0 {
		slog.Info("Expired overdue appointments", "count", moved)
	}
	return moved, nil
}

func mapToAppointmentResponse(a appointment.Appointment) appointment.AppointmentResponse {
	return appointment.AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		PatientName:     a.PatientName,
		DentistID:       a.DentistID,
		DentistName:     a.DentistName,
		AssignedStaffID: a.AssignedStaffID,
		ServiceName:     a.ServiceName,
		Date:            a.Date.Format("2006-01-02"),
		StartTime:       a.StartTime,
		DurationMinutes: a.EffectiveDurationMinutes(),
		BookingStatus:   string(a.BookingStatus),
		FlowStatus:      string(a.FlowStatus),
		Notes:           a.Notes,
	}
}
