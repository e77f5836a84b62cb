package report

import (
	"context"
	"fmt"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.Service {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

func (s *ReportServiceImpl) GetFinancialSummary(ctx context.Context, month, year int) (report.FinancialSummary, error) {
	if month < 1 || month > 12 {
		return report.FinancialSummary{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 2000 {
		return report.FinancialSummary{}, fmt.Errorf("year must be 2000 or later, got %d", year)
	}
	return s.reportRepo.GetFinancialSummary(ctx, month, year)
}
