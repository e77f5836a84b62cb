package commission

import (
	"context"
	"fmt"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/commission"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
	"github.com/shopspring/decimal"
)

type CommissionServiceImpl struct {
	commissionRepo  commission.CommissionRepository
	paymentRepo     payment.PaymentRepository
	appointmentRepo appointment.AppointmentRepository
	staffRepo       staff.StaffRepository
}

func NewCommissionService(
	commissionRepo commission.CommissionRepository,
	paymentRepo payment.PaymentRepository,
	appointmentRepo appointment.AppointmentRepository,
	staffRepo staff.StaffRepository,
) commission.Service {
	return &CommissionServiceImpl{
		commissionRepo:  commissionRepo,
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
	}
}

// CalculateForPayment splits one recorded payment three ways: the dentist's
// share, the assisting staff member's share (when one was assigned), and the
// clinic remainder. All arithmetic is exact decimal; the remainder is computed
// by subtraction so gross = commissions + net always holds.
func (s *CommissionServiceImpl) CalculateForPayment(ctx context.Context, paymentID string) (commission.SplitResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return commission.SplitResponse{}, err
	}

	appt, err := s.appointmentRepo.GetByID(ctx, p.AppointmentID)
	if err != nil {
		return commission.SplitResponse{}, fmt.Errorf("failed to load appointment for payment %s: %w", paymentID, err)
	}

	dentist, err := s.staffRepo.GetByID(ctx, appt.DentistID)
	if err != nil {
		return commission.SplitResponse{}, err
	}

	periodMonth := int(p.PaymentDate.Month())
	periodYear := p.PaymentDate.Year()

	// A dentist with a custom zero rate earns nothing on the payment, so no
	// zero-amount record is persisted for them.
	dentistRate := commission.ResolveDentistRate(dentist.CommissionRates)
	commissions := make([]commission.Commission, 0, 2)
	if dentistRate.IsPositive() {
		commissions = append(commissions, commission.Commission{
			PaymentID:   p.ID,
			StaffID:     dentist.ID,
			Type:        commission.TypeDentist,
			BaseAmount:  p.Amount,
			Rate:        dentistRate,
			Amount:      p.Amount.Mul(dentistRate),
			Status:      commission.StatusPending,
			PeriodMonth: periodMonth,
			PeriodYear:  periodYear,
		})
	}

	// Assisting staff earn their category share only when they were actually
	// assigned on the appointment, and a dentist assisting themselves does
	// not earn twice.
	if appt.AssignedStaffID != nil && *appt.AssignedStaffID != dentist.ID {
		assistant, err := s.staffRepo.GetByID(ctx, *appt.AssignedStaffID)
		if err != nil {
			return commission.SplitResponse{}, err
		}
		if assistant.Category != staff.CategoryDentist {
			staffRate := commission.ResolveStaffRate(assistant.Category)
			commissions = append(commissions, commission.Commission{
				PaymentID:   p.ID,
				StaffID:     assistant.ID,
				Type:        commission.TypeForCategory(assistant.Category),
				BaseAmount:  p.Amount,
				Rate:        staffRate,
				Amount:      p.Amount.Mul(staffRate),
				Status:      commission.StatusPending,
				PeriodMonth: periodMonth,
				PeriodYear:  periodYear,
			})
		}
	}

	total := decimal.Zero
	for _, c := range commissions {
		total = total.Add(c.Amount)
	}

	earnings := commission.ClinicEarnings{
		PaymentID:        p.ID,
		GrossAmount:      p.Amount,
		TotalCommissions: total,
		NetEarnings:      p.Amount.Sub(total),
		EarningDate:      p.PaymentDate,
	}

	savedCommissions, savedEarnings, err := s.commissionRepo.SaveSplit(ctx, commissions, earnings)
	if err != nil {
		return commission.SplitResponse{}, err
	}

	return mapToSplitResponse(savedCommissions, savedEarnings), nil
}

func (s *CommissionServiceImpl) List(ctx context.Context, filter commission.CommissionFilter) ([]commission.CommissionResponse, error) {
	records, err := s.commissionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]commission.CommissionResponse, 0, len(records))
	for _, c := range records {
		result = append(result, mapToCommissionResponse(c))
	}
	return result, nil
}

func (s *CommissionServiceImpl) MarkPaid(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.commissionRepo.MarkPaid(ctx, ids)
}

func (s *CommissionServiceImpl) GetEarnings(ctx context.Context, paymentID string) (commission.ClinicEarningsResponse, error) {
	earnings, err := s.commissionRepo.GetEarningsByPaymentID(ctx, paymentID)
	if err != nil {
		return commission.ClinicEarningsResponse{}, err
	}
	return mapToEarningsResponse(earnings), nil
}

func mapToSplitResponse(commissions []commission.Commission, earnings commission.ClinicEarnings) commission.SplitResponse {
	resp := commission.SplitResponse{
		Commissions: make([]commission.CommissionResponse, 0, len(commissions)),
		Earnings:    mapToEarningsResponse(earnings),
	}
	for _, c := range commissions {
		resp.Commissions = append(resp.Commissions, mapToCommissionResponse(c))
	}
	return resp
}

func mapToCommissionResponse(c commission.Commission) commission.CommissionResponse {
	return commission.CommissionResponse{
		ID:          c.ID,
		PaymentID:   c.PaymentID,
		StaffID:     c.StaffID,
		StaffName:   c.StaffName,
		Type:        string(c.Type),
		BaseAmount:  c.BaseAmount,
		Rate:        c.Rate,
		Amount:      c.Amount,
		Status:      string(c.Status),
		PeriodMonth: c.PeriodMonth,
		PeriodYear:  c.PeriodYear,
	}
}

func mapToEarningsResponse(e commission.ClinicEarnings) commission.ClinicEarningsResponse {
	return commission.ClinicEarningsResponse{
		ID:               e.ID,
		PaymentID:        e.PaymentID,
		GrossAmount:      e.GrossAmount,
		TotalCommissions: e.TotalCommissions,
		NetEarnings:      e.NetEarnings,
		EarningDate:      e.EarningDate.Format("2006-01-02"),
	}
}
