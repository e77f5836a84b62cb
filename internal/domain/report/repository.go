package report

import "context"

type ReportRepository interface {
	GetFinancialSummary(ctx context.Context, month, year int) (FinancialSummary, error)
}

type Service interface {
	GetFinancialSummary(ctx context.Context, month, year int) (FinancialSummary, error)
}
