package attendance

import (
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
	"github.com/shopspring/decimal"
)

// DefaultBreakMinutes applies to manual clock entries. Auto-tracked dentist
// hours are derived from appointment durations and carry no break.
const DefaultBreakMinutes = 60

type Attendance struct {
	ID           string
	StaffID      string
	Date         time.Time
	ClockIn      *string // "HH:MM" wall clock
	ClockOut     *string
	BreakMinutes int
	TotalHours   float64
	DailyPay     decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	StaffName *string
}

// PeriodSummary is the per-staff aggregate over a pay period. For dentists it
// is the post-merge view: manual clock hours plus appointment-derived hours,
// with the regular/overtime split recomputed on the combined period total.
type PeriodSummary struct {
	StaffID       string             `json:"staff_id"`
	StaffName     string             `json:"staff_name"`
	Category      staff.RoleCategory `json:"category"`
	HourlyRate    decimal.Decimal    `json:"hourly_rate"`
	DaysWorked    int                `json:"days_worked"`
	TotalHours    float64            `json:"total_hours"`
	RegularHours  float64            `json:"regular_hours"`
	OvertimeHours float64            `json:"overtime_hours"`
	GrossPay      decimal.Decimal    `json:"gross_pay"`
	IsAutoTracked bool               `json:"is_auto_tracked"`
}
