package patient

import "time"

type Patient struct {
	ID           string
	FullName     string
	PhoneNumber  *string
	Email        *string
	Address      *string
	MedicalNotes *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
