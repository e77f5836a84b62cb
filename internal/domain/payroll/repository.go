package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// ExistsForPeriod reports whether any payroll row was already generated
	// for this exact inclusive period.
	ExistsForPeriod(ctx context.Context, periodStart, periodEnd time.Time) (bool, error)
	CreateBatch(ctx context.Context, records []Payroll) ([]Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, error)

	// UpdateStatus moves a record from->to only if it is still in the from
	// state, otherwise ErrInvalidStatusTransition.
	UpdateStatus(ctx context.Context, id string, from, to PayrollStatus, actorID *string) error
}

type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) ([]PayrollResponse, error)
	Get(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	Approve(ctx context.Context, id string, approverID *string) error
	MarkPaid(ctx context.Context, id string) error
}
