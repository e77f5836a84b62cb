package appointment

import (
	"context"
	"time"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Appointment, error)

	// ListWorkedByDentist returns the appointments in the period that count
	// as worked dentist time: confirmed or completed bookings, plus anything
	// currently in treatment.
	ListWorkedByDentist(ctx context.Context, dentistID string, start, end time.Time) ([]Appointment, error)

	UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) error

	// AdvanceFlow performs a conditional update: the row moves from->to only
	// if it is still in the from state, otherwise ErrFlowConflict.
	AdvanceFlow(ctx context.Context, id string, from, to FlowStatus, assignedStaffID *string) (Appointment, error)

	// ExpireOverdueFlows force-moves appointments still in an expirable flow
	// state whose scheduled start plus duration has elapsed by now to
	// awaiting_payment. Returns the number of rows moved.
	ExpireOverdueFlows(ctx context.Context, now time.Time) (int64, error)
}

type Service interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (AppointmentResponse, error)
	Get(ctx context.Context, id string) (AppointmentResponse, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]AppointmentResponse, error)
	UpdateBookingStatus(ctx context.Context, req UpdateBookingStatusRequest) error
	AdvanceFlow(ctx context.Context, req AdvanceFlowRequest) (AppointmentResponse, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}
