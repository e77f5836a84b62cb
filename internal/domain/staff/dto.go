package staff

import (
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	FullName        string           `json:"full_name"`
	Position        string           `json:"position"`
	HourlyRate      *decimal.Decimal `json:"hourly_rate,omitempty"`
	CommissionRates *CommissionRates `json:"commission_rates,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	ID              string           `json:"-"`
	FullName        *string          `json:"full_name,omitempty"`
	Position        *string          `json:"position,omitempty"`
	HourlyRate      *decimal.Decimal `json:"hourly_rate,omitempty"`
	CommissionRates *CommissionRates `json:"commission_rates,omitempty"`
}

type StaffResponse struct {
	ID              string           `json:"id"`
	FullName        string           `json:"full_name"`
	Position        string           `json:"position"`
	Category        string           `json:"category"`
	HourlyRate      *decimal.Decimal `json:"hourly_rate,omitempty"`
	CommissionRates *CommissionRates `json:"commission_rates,omitempty"`
	IsActive        bool             `json:"is_active"`
}
