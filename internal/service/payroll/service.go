package payroll

import (
	"context"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/attendance"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo       payroll.PayrollRepository
	attendanceService attendance.Service
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceService attendance.Service,
) payroll.Service {
	return &PayrollServiceImpl{
		payrollRepo:       payrollRepo,
		attendanceService: attendanceService,
	}
}

// Generate builds one pending payroll record per staff member with hours in
// the inclusive period, from the merged attendance summary. Records start at
// pending with zero deductions, so net pay equals gross pay until a later
// adjustment step.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	// Full-clinic runs are one-shot per period. Single-staff runs fall
	// through to the per-staff uniqueness check in CreateBatch.
	if req.StaffID == nil {
		exists, err := s.payrollRepo.ExistsForPeriod(ctx, periodStart, periodEnd)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, payroll.ErrPayrollAlreadyGenerated
		}
	}

	summaries, err := s.attendanceService.BuildPeriodSummary(ctx, periodStart, periodEnd, req.StaffID)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, payroll.ErrNoAttendanceData
	}

	records := make([]payroll.Payroll, 0, len(summaries))
	for _, summary := range summaries {
		records = append(records, payroll.Payroll{
			StaffID:       summary.StaffID,
			PeriodStart:   periodStart,
			PeriodEnd:     periodEnd,
			HoursWorked:   summary.TotalHours,
			RegularHours:  summary.RegularHours,
			OvertimeHours: summary.OvertimeHours,
			GrossPay:      summary.GrossPay,
			Deductions:    decimal.Zero,
			NetPay:        summary.GrossPay,
			Status:        payroll.PayrollStatusPending,
		})
	}

	created, err := s.payrollRepo.CreateBatch(ctx, records)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollResponse, 0, len(created))
	for _, record := range created {
		result = append(result, mapToPayrollResponse(record))
	}
	return result, nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return mapToPayrollResponse(record), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		result = append(result, mapToPayrollResponse(record))
	}
	return result, nil
}

func (s *PayrollServiceImpl) Approve(ctx context.Context, id string, approverID *string) error {
	return s.payrollRepo.UpdateStatus(ctx, id, payroll.PayrollStatusPending, payroll.PayrollStatusApproved, approverID)
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) error {
	return s.payrollRepo.UpdateStatus(ctx, id, payroll.PayrollStatusApproved, payroll.PayrollStatusPaid, nil)
}

func mapToPayrollResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:            p.ID,
		StaffID:       p.StaffID,
		PeriodStart:   p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     p.PeriodEnd.Format("2006-01-02"),
		HoursWorked:   p.HoursWorked,
		RegularHours:  p.RegularHours,
		OvertimeHours: p.OvertimeHours,
		GrossPay:      p.GrossPay,
		Deductions:    p.Deductions,
		NetPay:        p.NetPay,
		Status:        string(p.Status),
		ApprovedBy:    p.ApprovedBy,
	}
	if p.StaffName != nil {
		resp.StaffName = *p.StaffName
	}
	return resp
}
