package payroll

import "errors"

var (
	ErrPayrollNotFound         = errors.New("payroll record not found")
	ErrPayrollAlreadyGenerated = errors.New("payroll already generated for this period")
	ErrNoAttendanceData        = errors.New("no attendance data found for the requested period")
	ErrInvalidStatusTransition = errors.New("invalid payroll status transition")
)
