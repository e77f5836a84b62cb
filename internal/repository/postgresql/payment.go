package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (appointment_id, patient_id, amount, method, payment_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.AppointmentID,
		p.PatientID,
		p.Amount,
		p.Method,
		p.PaymentDate,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return p, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, appointment_id, patient_id, amount, method, payment_date, created_at
		FROM payments
		WHERE id = $1
	`

	var p payment.Payment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AppointmentID, &p.PatientID, &p.Amount,
		&p.Method, &p.PaymentDate, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

func (r *paymentRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, appointment_id, patient_id, amount, method, payment_date, created_at
		FROM payments
		WHERE payment_date BETWEEN $1 AND $2
		ORDER BY payment_date DESC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(
			&p.ID, &p.AppointmentID, &p.PatientID, &p.Amount,
			&p.Method, &p.PaymentDate, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
