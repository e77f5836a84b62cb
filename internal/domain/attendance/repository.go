package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetOpenByStaffAndDate(ctx context.Context, staffID string, date time.Time) (Attendance, error)
	CloseOut(ctx context.Context, id string, clockOut string, breakMinutes int, totalHours float64, dailyPay decimal.Decimal) (Attendance, error)
	ListByStaffAndRange(ctx context.Context, staffID string, start, end time.Time) ([]Attendance, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}

type Service interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
	ListByStaff(ctx context.Context, staffID string, start, end time.Time) ([]AttendanceResponse, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]AttendanceResponse, error)

	// BuildPeriodSummary is the merged attendance view payroll reads: manual
	// clock aggregates for everyone, with appointment-derived hours folded in
	// for dentists. staffID narrows the summary to one staff member.
	BuildPeriodSummary(ctx context.Context, start, end time.Time, staffID *string) ([]PeriodSummary, error)
}
