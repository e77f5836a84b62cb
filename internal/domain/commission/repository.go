package commission

import "context"

type CommissionRepository interface {
	// SaveSplit persists the commission records and the clinic earnings row
	// for one payment atomically. A second call for the same payment fails
	// with ErrAlreadyCalculated.
	SaveSplit(ctx context.Context, commissions []Commission, earnings ClinicEarnings) ([]Commission, ClinicEarnings, error)
	GetEarningsByPaymentID(ctx context.Context, paymentID string) (ClinicEarnings, error)
	List(ctx context.Context, filter CommissionFilter) ([]Commission, error)
	MarkPaid(ctx context.Context, ids []string) error
}

type Service interface {
	// CalculateForPayment runs the three-way split for a recorded payment.
	CalculateForPayment(ctx context.Context, paymentID string) (SplitResponse, error)
	List(ctx context.Context, filter CommissionFilter) ([]CommissionResponse, error)
	MarkPaid(ctx context.Context, ids []string) error
	GetEarnings(ctx context.Context, paymentID string) (ClinicEarningsResponse, error)
}
