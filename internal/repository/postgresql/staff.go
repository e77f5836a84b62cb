package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, full_name, position, category, hourly_rate, commission_rates, is_active, created_at, updated_at`

func (r *staffRepository) Create(ctx context.Context, s staff.StaffMember) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_members (full_name, position, category, hourly_rate, commission_rates, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.FullName,
		s.Position,
		s.Category,
		s.HourlyRate,
		s.CommissionRates,
		s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return staff.StaffMember{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return s, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE id = $1`

	s, err := scanStaffMember(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return s, nil
}

func (r *staffRepository) ListActive(ctx context.Context) ([]staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE is_active = true ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	defer rows.Close()

	return collectStaffMembers(rows)
}

func (r *staffRepository) ListActiveByCategory(ctx context.Context, category staff.RoleCategory) ([]staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE is_active = true AND category = $1 ORDER BY full_name`

	rows, err := q.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff by category: %w", err)
	}
	defer rows.Close()

	return collectStaffMembers(rows)
}

func (r *staffRepository) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	q := GetQuerier(ctx, r.db)

	// Category is re-derived whenever the position changes so the two never
	// drift apart.
	query := `
		UPDATE staff_members
		SET full_name = COALESCE($2, full_name),
			position = COALESCE($3, position),
			category = CASE WHEN $4::text IS NOT NULL THEN $4 ELSE category END,
			hourly_rate = COALESCE($5, hourly_rate),
			commission_rates = COALESCE($6, commission_rates),
			updated_at = NOW()
		WHERE id = $1
	`

	var category *staff.RoleCategory
	if req.Position != nil {
		c := staff.CategoryFromPosition(*req.Position)
		category = &c
	}

	tag, err := q.Exec(ctx, query,
		req.ID,
		req.FullName,
		req.Position,
		category,
		req.HourlyRate,
		req.CommissionRates,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

func (r *staffRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE staff_members SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

func scanStaffMember(row pgx.Row) (staff.StaffMember, error) {
	var s staff.StaffMember
	err := row.Scan(
		&s.ID, &s.FullName, &s.Position, &s.Category, &s.HourlyRate,
		&s.CommissionRates, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func collectStaffMembers(rows pgx.Rows) ([]staff.StaffMember, error) {
	var members []staff.StaffMember
	for rows.Next() {
		s, err := scanStaffMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff members: %w", err)
	}
	return members, nil
}
