package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyClockedIn   = errors.New("staff member already has an open attendance record for this date")
	ErrNoOpenRecord       = errors.New("no open attendance record to clock out of")
)
