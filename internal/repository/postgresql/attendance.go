package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/attendance"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.staff_id, a.date, a.clock_in, a.clock_out, a.break_minutes,
		   a.total_hours, a.daily_pay, a.created_at, a.updated_at,
		   s.full_name AS staff_name
	FROM attendance_records a
	JOIN staff_members s ON s.id = a.staff_id
`

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (staff_id, date, clock_in, clock_out, break_minutes, total_hours, daily_pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.StaffID,
		a.Date,
		a.ClockIn,
		a.ClockOut,
		a.BreakMinutes,
		a.TotalHours,
		a.DailyPay,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetOpenByStaffAndDate(ctx context.Context, staffID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.staff_id = $1
		  AND a.date = $2
		  AND a.clock_out IS NULL
		ORDER BY a.created_at DESC
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) CloseOut(ctx context.Context, id string, clockOut string, breakMinutes int, totalHours float64, dailyPay decimal.Decimal) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_out = $2, break_minutes = $3, total_hours = $4, daily_pay = $5, updated_at = NOW()
		WHERE id = $1 AND clock_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, clockOut, breakMinutes, totalHours, dailyPay)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to close out attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.Attendance{}, attendance.ErrNoOpenRecord
	}

	return r.getByID(ctx, id)
}

func (r *attendanceRepository) ListByStaffAndRange(ctx context.Context, staffID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.staff_id = $1
		  AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.date BETWEEN $1 AND $2
		ORDER BY a.date, s.full_name
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *attendanceRepository) getByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.StaffID, &a.Date, &a.ClockIn, &a.ClockOut, &a.BreakMinutes,
		&a.TotalHours, &a.DailyPay, &a.CreatedAt, &a.UpdatedAt,
		&a.StaffName,
	)
	return a, err
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
