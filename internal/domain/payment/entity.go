package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            string
	AppointmentID string
	PatientID     string
	Amount        decimal.Decimal
	Method        string
	PaymentDate   time.Time
	CreatedAt     time.Time
}
