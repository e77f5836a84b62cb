package appointment

import "errors"

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrFlowTerminal          = errors.New("appointment flow is already at its final state")
	ErrFlowTransitionInvalid = errors.New("invalid patient-flow transition")
	ErrFlowConflict          = errors.New("appointment flow status changed concurrently")
	ErrAssignedStaffRequired = errors.New("an assigned staff member is required before treatment preparation")
	ErrInvalidBookingStatus  = errors.New("invalid booking status")
)
