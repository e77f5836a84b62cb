package payment

import (
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	AppointmentID string          `json:"appointment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AppointmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "appointment_id",
			Message: "appointment_id is required",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if !validator.IsInSlice(r.Method, []string{"cash", "card", "gcash", "bank_transfer", "insurance"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be one of cash, card, gcash, bank_transfer, insurance",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	AppointmentID string          `json:"appointment_id"`
	PatientID     string          `json:"patient_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	PaymentDate   string          `json:"payment_date"`
}
