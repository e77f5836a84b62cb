package postgresql

import (
	"context"
	"fmt"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/report"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetFinancialSummary aggregates from clinic_earnings rather than raw
// payments so the monthly totals always reconcile with the per-payment
// splits.
func (r *reportRepository) GetFinancialSummary(ctx context.Context, month, year int) (report.FinancialSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(gross_amount), 0),
			   COALESCE(SUM(total_commissions), 0),
			   COALESCE(SUM(net_earnings), 0),
			   COUNT(*)
		FROM clinic_earnings
		WHERE EXTRACT(MONTH FROM earning_date) = $1
		  AND EXTRACT(YEAR FROM earning_date) = $2
	`

	summary := report.FinancialSummary{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.GrossRevenue,
		&summary.TotalCommissions,
		&summary.NetEarnings,
		&summary.PaymentCount,
	)
	if err != nil {
		return report.FinancialSummary{}, fmt.Errorf("failed to get financial summary: %w", err)
	}

	return summary, nil
}
