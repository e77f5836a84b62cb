package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/commission"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payment"
)

type PaymentServiceImpl struct {
	paymentRepo       payment.PaymentRepository
	appointmentRepo   appointment.AppointmentRepository
	commissionService commission.Service
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	appointmentRepo appointment.AppointmentRepository,
	commissionService commission.Service,
) payment.Service {
	return &PaymentServiceImpl{
		paymentRepo:       paymentRepo,
		appointmentRepo:   appointmentRepo,
		commissionService: commissionService,
	}
}

// Record persists the payment and immediately runs the commission split for
// it. A split failure does not roll the payment back; the split can be rerun
// later and the uniqueness on clinic earnings keeps reruns idempotent.
func (s *PaymentServiceImpl) Record(ctx context.Context, req payment.RecordPaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	appt, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	created, err := s.paymentRepo.Create(ctx, payment.Payment{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Amount:        req.Amount,
		Method:        req.Method,
		PaymentDate:   time.Now(),
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	if _, err := s.commissionService.CalculateForPayment(ctx, created.ID); err != nil {
		slog.Error("Commission split failed for recorded payment",
			"payment_id", created.ID, "error", err)
	}

	return mapToPaymentResponse(created), nil
}

func (s *PaymentServiceImpl) Get(ctx context.Context, id string) (payment.PaymentResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return mapToPaymentResponse(p), nil
}

func (s *PaymentServiceImpl) ListByDateRange(ctx context.Context, start, end time.Time) ([]payment.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, mapToPaymentResponse(p))
	}
	return result, nil
}

func mapToPaymentResponse(p payment.Payment) payment.PaymentResponse {
	return payment.PaymentResponse{
		ID:            p.ID,
		AppointmentID: p.AppointmentID,
		PatientID:     p.PatientID,
		Amount:        p.Amount,
		Method:        p.Method,
		PaymentDate:   p.PaymentDate.Format("2006-01-02"),
	}
}
