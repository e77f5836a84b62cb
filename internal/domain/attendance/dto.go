package attendance

import (
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ClockInRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	ClockIn string `json:"clock_in"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	StaffID      string `json:"staff_id"`
	Date         string `json:"date"`
	ClockOut     string `json:"clock_out"`
	BreakMinutes *int   `json:"break_minutes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be in HH:MM format",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string          `json:"id"`
	StaffID      string          `json:"staff_id"`
	StaffName    *string         `json:"staff_name,omitempty"`
	Date         string          `json:"date"`
	ClockIn      *string         `json:"clock_in,omitempty"`
	ClockOut     *string         `json:"clock_out,omitempty"`
	BreakMinutes int             `json:"break_minutes"`
	TotalHours   float64         `json:"total_hours"`
	DailyPay     decimal.Decimal `json:"daily_pay"`
}

type PeriodSummaryResponse struct {
	StaffID       string          `json:"staff_id"`
	StaffName     string          `json:"staff_name"`
	Category      string          `json:"category"`
	DaysWorked    int             `json:"days_worked"`
	TotalHours    float64         `json:"total_hours"`
	RegularHours  float64         `json:"regular_hours"`
	OvertimeHours float64         `json:"overtime_hours"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	IsAutoTracked bool            `json:"is_auto_tracked"`
}
