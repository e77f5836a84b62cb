package payment

import (
	"context"
	"time"
)

type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Payment, error)
}

type Service interface {
	// Record persists the payment and runs the commission split for it.
	Record(ctx context.Context, req RecordPaymentRequest) (PaymentResponse, error)
	Get(ctx context.Context, id string) (PaymentResponse, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]PaymentResponse, error)
}
