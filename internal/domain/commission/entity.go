package commission

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionType tags which share of the split a record represents.
type CommissionType string

const (
	TypeDentist     CommissionType = "dentist"
	TypeAssistant   CommissionType = "assistant"
	TypeHygienist   CommissionType = "hygienist"
	TypeCoordinator CommissionType = "coordinator"
)

type CommissionStatus string

const (
	StatusPending   CommissionStatus = "pending"
	StatusPaid      CommissionStatus = "paid"
	StatusCancelled CommissionStatus = "cancelled"
)

// Commission is one staff share of a payment. Amount is always
// BaseAmount * Rate.
type Commission struct {
	ID          string
	PaymentID   string
	StaffID     string
	Type        CommissionType
	BaseAmount  decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
	Status      CommissionStatus
	PeriodMonth int
	PeriodYear  int
	CreatedAt   time.Time

	// Joined fields
	StaffName *string
}

// ClinicEarnings is the clinic-retained remainder of a payment after all
// commissions. GrossAmount = TotalCommissions + NetEarnings holds exactly.
// One row per payment, enforced by uk_clinic_earnings_payment.
type ClinicEarnings struct {
	ID               string
	PaymentID        string
	GrossAmount      decimal.Decimal
	TotalCommissions decimal.Decimal
	NetEarnings      decimal.Decimal
	EarningDate      time.Time
	CreatedAt        time.Time
}
