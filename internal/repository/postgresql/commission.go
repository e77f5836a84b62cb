package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/commission"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type commissionRepository struct {
	db *database.DB
}

func NewCommissionRepository(db *database.DB) commission.CommissionRepository {
	return &commissionRepository{db: db}
}

// SaveSplit writes the commission rows and the clinic earnings row in one
// transaction. The earnings row goes first: its uniqueness on payment_id is
// what makes a rerun of the same payment fail before any commission row
// lands.
func (r *commissionRepository) SaveSplit(ctx context.Context, commissions []commission.Commission, earnings commission.ClinicEarnings) ([]commission.Commission, commission.ClinicEarnings, error) {
	saved := make([]commission.Commission, 0, len(commissions))

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		earningsQuery := `
			INSERT INTO clinic_earnings (payment_id, gross_amount, total_commissions, net_earnings, earning_date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		err := q.QueryRow(txCtx, earningsQuery,
			earnings.PaymentID,
			earnings.GrossAmount,
			earnings.TotalCommissions,
			earnings.NetEarnings,
			earnings.EarningDate,
		).Scan(&earnings.ID, &earnings.CreatedAt)

		if err != nil {
			if strings.Contains(err.Error(), "uk_clinic_earnings_payment") {
				return commission.ErrAlreadyCalculated
			}
			return fmt.Errorf("failed to create clinic earnings: %w", err)
		}

		commissionQuery := `
			INSERT INTO commissions (
				payment_id, staff_id, commission_type, base_amount,
				commission_rate, commission_amount, status, period_month, period_year
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`

		for _, c := range commissions {
			err := q.QueryRow(txCtx, commissionQuery,
				c.PaymentID,
				c.StaffID,
				c.Type,
				c.BaseAmount,
				c.Rate,
				c.Amount,
				c.Status,
				c.PeriodMonth,
				c.PeriodYear,
			).Scan(&c.ID, &c.CreatedAt)

			if err != nil {
				return fmt.Errorf("failed to create commission: %w", err)
			}
			saved = append(saved, c)
		}

		return nil
	})
	if err != nil {
		return nil, commission.ClinicEarnings{}, err
	}

	return saved, earnings, nil
}

func (r *commissionRepository) GetEarningsByPaymentID(ctx context.Context, paymentID string) (commission.ClinicEarnings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payment_id, gross_amount, total_commissions, net_earnings, earning_date, created_at
		FROM clinic_earnings
		WHERE payment_id = $1
	`

	var e commission.ClinicEarnings
	err := q.QueryRow(ctx, query, paymentID).Scan(
		&e.ID, &e.PaymentID, &e.GrossAmount, &e.TotalCommissions,
		&e.NetEarnings, &e.EarningDate, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return commission.ClinicEarnings{}, commission.ErrEarningsNotFound
		}
		return commission.ClinicEarnings{}, fmt.Errorf("failed to get clinic earnings: %w", err)
	}

	return e, nil
}

func (r *commissionRepository) List(ctx context.Context, filter commission.CommissionFilter) ([]commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.payment_id, c.staff_id, c.commission_type, c.base_amount,
			   c.commission_rate, c.commission_amount, c.status,
			   c.period_month, c.period_year, c.created_at,
			   s.full_name AS staff_name
		FROM commissions c
		JOIN staff_members s ON s.id = c.staff_id
		WHERE ($1::text IS NULL OR c.staff_id = $1)
		  AND ($2::int IS NULL OR c.period_month = $2)
		  AND ($3::int IS NULL OR c.period_year = $3)
		ORDER BY c.created_at DESC
	`

	rows, err := q.Query(ctx, query, filter.StaffID, filter.PeriodMonth, filter.PeriodYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	defer rows.Close()

	var commissions []commission.Commission
	for rows.Next() {
		var c commission.Commission
		if err := rows.Scan(
			&c.ID, &c.PaymentID, &c.StaffID, &c.Type, &c.BaseAmount,
			&c.Rate, &c.Amount, &c.Status,
			&c.PeriodMonth, &c.PeriodYear, &c.CreatedAt,
			&c.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		commissions = append(commissions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate commissions: %w", err)
	}

	return commissions, nil
}

func (r *commissionRepository) MarkPaid(ctx context.Context, ids []string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE commissions SET status = 'paid' WHERE id = ANY($1) AND status = 'pending'`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("failed to mark commissions paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return commission.ErrCommissionNotFound
	}

	return nil
}
