package patient

import (
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/validator"
)

type CreatePatientRequest struct {
	FullName     string  `json:"full_name"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Email        *string `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	MedicalNotes *string `json:"medical_notes,omitempty"`
}

func (r *CreatePatientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePatientRequest struct {
	ID           string  `json:"-"`
	FullName     *string `json:"full_name,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Email        *string `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	MedicalNotes *string `json:"medical_notes,omitempty"`
}

type PatientResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Email        *string `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	MedicalNotes *string `json:"medical_notes,omitempty"`
}
