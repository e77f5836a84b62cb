package appointment

import "time"

// BookingStatus is the scheduling-level outcome of an appointment. It is a
// separate vocabulary from FlowStatus and the two must never be mixed: a
// booking can be cancelled while the patient-flow never left scheduled.
type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingNoShow    BookingStatus = "no_show"
)

func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingScheduled, BookingConfirmed, BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

// FlowStatus is the in-clinic patient-flow lifecycle on the day of the
// appointment. Transitions are strictly linear; the only exception is the
// overdue sweep, which force-moves stale appointments to awaiting_payment
// as a catch-all safety transition (see service.ExpireOverdue).
type FlowStatus string

const (
	FlowScheduled         FlowStatus = "scheduled"
	FlowArrived           FlowStatus = "arrived"
	FlowReadyForTreatment FlowStatus = "ready_for_treatment"
	FlowInTreatment       FlowStatus = "in_treatment"
	FlowCompleted         FlowStatus = "completed"
	FlowAwaitingPayment   FlowStatus = "awaiting_payment"
)

var nextFlow = map[FlowStatus]FlowStatus{
	FlowScheduled:         FlowArrived,
	FlowArrived:           FlowReadyForTreatment,
	FlowReadyForTreatment: FlowInTreatment,
	FlowInTreatment:       FlowCompleted,
	FlowCompleted:         FlowAwaitingPayment,
}

// NextFlowStatus returns the single legal forward transition from the given
// state. No backward steps, no skipping: an administrative override that jumps
// states is a known policy gap and is deliberately not exposed here.
func NextFlowStatus(current FlowStatus) (FlowStatus, error) {
	next, ok := nextFlow[current]
	if !ok {
		return "", ErrFlowTerminal
	}
	return next, nil
}

// expirableFlowStates are the states the overdue sweep is allowed to touch.
// Once an appointment reaches completed or awaiting_payment the sweep must
// leave it alone, which is what makes a racing manual transition win.
var expirableFlowStates = []FlowStatus{
	FlowScheduled,
	FlowArrived,
	FlowReadyForTreatment,
	FlowInTreatment,
}

func ExpirableFlowStates() []FlowStatus {
	states := make([]FlowStatus, len(expirableFlowStates))
	copy(states, expirableFlowStates)
	return states
}

const DefaultDurationMinutes = 60

type Appointment struct {
	ID              string
	PatientID       string
	DentistID       string
	AssignedStaffID *string
	ServiceName     string
	Date            time.Time
	StartTime       string // "HH:MM" wall clock
	DurationMinutes *int
	BookingStatus   BookingStatus
	FlowStatus      FlowStatus
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	PatientName *string
	DentistName *string
}

// EffectiveDurationMinutes returns the service duration, defaulting when the
// metadata is missing so attendance generation never fails on it.
func (a Appointment) EffectiveDurationMinutes() int {
	if a.DurationMinutes == nil || *a.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return *a.DurationMinutes
}
