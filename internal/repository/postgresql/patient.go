package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/patient"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type patientRepository struct {
	db *database.DB
}

func NewPatientRepository(db *database.DB) patient.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, p patient.Patient) (patient.Patient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO patients (full_name, phone_number, email, address, medical_notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.FullName,
		p.PhoneNumber,
		p.Email,
		p.Address,
		p.MedicalNotes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return patient.Patient{}, fmt.Errorf("failed to create patient: %w", err)
	}

	return p, nil
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (patient.Patient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, phone_number, email, address, medical_notes, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	var p patient.Patient
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FullName, &p.PhoneNumber, &p.Email,
		&p.Address, &p.MedicalNotes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return patient.Patient{}, patient.ErrPatientNotFound
		}
		return patient.Patient{}, fmt.Errorf("failed to get patient: %w", err)
	}

	return p, nil
}

func (r *patientRepository) List(ctx context.Context, search string) ([]patient.Patient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, phone_number, email, address, medical_notes, created_at, updated_at
		FROM patients
		WHERE $1 = '' OR full_name ILIKE '%' || $1 || '%'
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var patients []patient.Patient
	for rows.Next() {
		var p patient.Patient
		if err := rows.Scan(
			&p.ID, &p.FullName, &p.PhoneNumber, &p.Email,
			&p.Address, &p.MedicalNotes, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate patients: %w", err)
	}

	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, req patient.UpdatePatientRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE patients
		SET full_name = COALESCE($2, full_name),
			phone_number = COALESCE($3, phone_number),
			email = COALESCE($4, email),
			address = COALESCE($5, address),
			medical_notes = COALESCE($6, medical_notes),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID,
		req.FullName,
		req.PhoneNumber,
		req.Email,
		req.Address,
		req.MedicalNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return patient.ErrPatientNotFound
	}

	return nil
}
