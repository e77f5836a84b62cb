package report

import (
	"github.com/shopspring/decimal"
)

// FinancialSummary aggregates one calendar month of clinic finances.
type FinancialSummary struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	GrossRevenue     decimal.Decimal `json:"gross_revenue"`
	TotalCommissions decimal.Decimal `json:"total_commissions"`
	NetEarnings      decimal.Decimal `json:"net_earnings"`
	PaymentCount     int64           `json:"payment_count"`
}
