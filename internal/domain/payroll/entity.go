package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum; transitions are one-way, pending -> approved -> paid.
type PayrollStatus string

const (
	PayrollStatusPending  PayrollStatus = "pending"
	PayrollStatusApproved PayrollStatus = "approved"
	PayrollStatusPaid     PayrollStatus = "paid"
)

// Payroll is one staff member's pay for an inclusive period. Exactly one row
// may exist per (staff, period_start, period_end); the repository enforces
// this with uk_payroll_staff_period.
type Payroll struct {
	ID            string
	StaffID       string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	HoursWorked   float64
	RegularHours  float64
	OvertimeHours float64
	GrossPay      decimal.Decimal
	Deductions    decimal.Decimal
	NetPay        decimal.Decimal
	Status        PayrollStatus
	ApprovedBy    *string
	ApprovedAt    *time.Time
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	StaffName *string
}
