package commission

import (
	"github.com/shopspring/decimal"
)

type CommissionResponse struct {
	ID          string          `json:"id"`
	PaymentID   string          `json:"payment_id"`
	StaffID     string          `json:"staff_id"`
	StaffName   *string         `json:"staff_name,omitempty"`
	Type        string          `json:"commission_type"`
	BaseAmount  decimal.Decimal `json:"base_amount"`
	Rate        decimal.Decimal `json:"commission_rate"`
	Amount      decimal.Decimal `json:"commission_amount"`
	Status      string          `json:"status"`
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
}

type ClinicEarningsResponse struct {
	ID               string          `json:"id"`
	PaymentID        string          `json:"payment_id"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	TotalCommissions decimal.Decimal `json:"total_commissions"`
	NetEarnings      decimal.Decimal `json:"net_earnings"`
	EarningDate      string          `json:"earning_date"`
}

// SplitResponse is the full three-way result of one payment's commission
// calculation.
type SplitResponse struct {
	Commissions []CommissionResponse   `json:"commissions"`
	Earnings    ClinicEarningsResponse `json:"clinic_earnings"`
}

type CommissionFilter struct {
	StaffID     *string
	PeriodMonth *int
	PeriodYear  *int
}
