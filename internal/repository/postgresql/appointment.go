package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type appointmentRepository struct {
	db *database.DB
}

func NewAppointmentRepository(db *database.DB) appointment.AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentSelect = `
	SELECT a.id, a.patient_id, a.dentist_id, a.assigned_staff_id, a.service_name,
		   a.date, a.start_time, a.duration_minutes, a.booking_status, a.flow_status,
		   a.notes, a.created_at, a.updated_at,
		   p.full_name AS patient_name, s.full_name AS dentist_name
	FROM appointments a
	JOIN patients p ON p.id = a.patient_id
	JOIN staff_members s ON s.id = a.dentist_id
`

func (r *appointmentRepository) Create(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO appointments (
			patient_id, dentist_id, assigned_staff_id, service_name,
			date, start_time, duration_minutes, booking_status, flow_status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.PatientID,
		a.DentistID,
		a.AssignedStaffID,
		a.ServiceName,
		a.Date,
		a.StartTime,
		a.DurationMinutes,
		a.BookingStatus,
		a.FlowStatus,
		a.Notes,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}

	return a, nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := appointmentSelect + ` WHERE a.id = $1`

	a, err := scanAppointment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.Appointment{}, appointment.ErrAppointmentNotFound
		}
		return appointment.Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}

	return a, nil
}

func (r *appointmentRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := appointmentSelect + `
		WHERE a.date BETWEEN $1 AND $2
		ORDER BY a.date, a.start_time
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// ListWorkedByDentist returns the appointments that count as worked time for
// attendance generation: confirmed or completed bookings, plus appointments
// currently in treatment.
func (r *appointmentRepository) ListWorkedByDentist(ctx context.Context, dentistID string, start, end time.Time) ([]appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := appointmentSelect + `
		WHERE a.dentist_id = $1
		  AND a.date BETWEEN $2 AND $3
		  AND (a.booking_status IN ('completed', 'confirmed') OR a.flow_status = 'in_treatment')
		ORDER BY a.date, a.start_time
	`

	rows, err := q.Query(ctx, query, dentistID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list worked appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *appointmentRepository) UpdateBookingStatus(ctx context.Context, id string, status appointment.BookingStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE appointments SET booking_status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return appointment.ErrAppointmentNotFound
	}

	return nil
}

// AdvanceFlow applies the transition as a single conditional update keyed on
// the expected current state. A concurrent writer that got there first makes
// the update match zero rows, which surfaces as ErrFlowConflict rather than a
// silent overwrite.
func (r *appointmentRepository) AdvanceFlow(ctx context.Context, id string, from, to appointment.FlowStatus, assignedStaffID *string) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE appointments
		SET flow_status = $3,
			assigned_staff_id = COALESCE($4, assigned_staff_id),
			updated_at = NOW()
		WHERE id = $1 AND flow_status = $2
	`

	tag, err := q.Exec(ctx, query, id, from, to, assignedStaffID)
	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("failed to advance appointment flow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return appointment.Appointment{}, getErr
		}
		return appointment.Appointment{}, appointment.ErrFlowConflict
	}

	return r.GetByID(ctx, id)
}

// ExpireOverdueFlows force-moves stale appointments to awaiting_payment. The
// state filter keeps the sweep away from rows a manual transition already
// moved to completed or awaiting_payment.
func (r *appointmentRepository) ExpireOverdueFlows(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE appointments
		SET flow_status = 'awaiting_payment', updated_at = NOW()
		WHERE flow_status = ANY($1)
		  AND date + start_time::interval + make_interval(mins => COALESCE(duration_minutes, 60)) < $2
	`

	states := make([]string, 0, len(appointment.ExpirableFlowStates()))
	for _, st := range appointment.ExpirableFlowStates() {
		states = append(states, string(st))
	}

	tag, err := q.Exec(ctx, query, states, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire overdue appointments: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanAppointment(row pgx.Row) (appointment.Appointment, error) {
	var a appointment.Appointment
	err := row.Scan(
		&a.ID, &a.PatientID, &a.DentistID, &a.AssignedStaffID, &a.ServiceName,
		&a.Date, &a.StartTime, &a.DurationMinutes, &a.BookingStatus, &a.FlowStatus,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt,
		&a.PatientName, &a.DentistName,
	)
	return a, err
}

func collectAppointments(rows pgx.Rows) ([]appointment.Appointment, error) {
	var appointments []appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}
	return appointments, nil
}
