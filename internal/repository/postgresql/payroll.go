package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payroll"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollSelect = `
	SELECT p.id, p.staff_id, p.period_start, p.period_end,
		   p.hours_worked, p.regular_hours, p.overtime_hours,
		   p.gross_pay, p.deductions, p.net_pay, p.status,
		   p.approved_by, p.approved_at, p.paid_at, p.created_at, p.updated_at,
		   s.full_name AS staff_name
	FROM payroll_records p
	JOIN staff_members s ON s.id = p.staff_id
`

func (r *payrollRepository) ExistsForPeriod(ctx context.Context, periodStart, periodEnd time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payroll_records WHERE period_start = $1 AND period_end = $2)`,
		periodStart, periodEnd,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}

	return exists, nil
}

// CreateBatch inserts all records in one transaction so a partial payroll run
// never persists.
func (r *payrollRepository) CreateBatch(ctx context.Context, records []payroll.Payroll) ([]payroll.Payroll, error) {
	created := make([]payroll.Payroll, 0, len(records))

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO payroll_records (
				staff_id, period_start, period_end,
				hours_worked, regular_hours, overtime_hours,
				gross_pay, deductions, net_pay, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, created_at, updated_at
		`

		for _, record := range records {
			err := q.QueryRow(txCtx, query,
				record.StaffID,
				record.PeriodStart,
				record.PeriodEnd,
				record.HoursWorked,
				record.RegularHours,
				record.OvertimeHours,
				record.GrossPay,
				record.Deductions,
				record.NetPay,
				record.Status,
			).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

			if err != nil {
				if strings.Contains(err.Error(), "uk_payroll_staff_period") {
					return payroll.ErrPayrollAlreadyGenerated
				}
				return fmt.Errorf("failed to create payroll record: %w", err)
			}
			created = append(created, record)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayroll(q.QueryRow(ctx, payrollSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollSelect + `
		WHERE ($1::text IS NULL OR p.staff_id = $1)
		  AND ($2::text IS NULL OR p.status = $2)
		ORDER BY p.period_start DESC, s.full_name
	`

	rows, err := q.Query(ctx, query, filter.StaffID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, nil
}

// UpdateStatus is a compare-and-set on the status column; a record already
// past the expected state makes it a no-op and an error.
func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, from, to payroll.PayrollStatus, actorID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $3,
			approved_by = CASE WHEN $3 = 'approved' THEN $4 ELSE approved_by END,
			approved_at = CASE WHEN $3 = 'approved' THEN NOW() ELSE approved_at END,
			paid_at = CASE WHEN $3 = 'paid' THEN NOW() ELSE paid_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	tag, err := q.Exec(ctx, query, id, from, to, actorID)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return payroll.ErrInvalidStatusTransition
	}

	return nil
}

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.StaffID, &p.PeriodStart, &p.PeriodEnd,
		&p.HoursWorked, &p.RegularHours, &p.OvertimeHours,
		&p.GrossPay, &p.Deductions, &p.NetPay, &p.Status,
		&p.ApprovedBy, &p.ApprovedAt, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
		&p.StaffName,
	)
	return p, err
}
