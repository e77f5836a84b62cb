package staff

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type StaffMember struct {
	ID              string
	FullName        string
	Position        string
	Category        RoleCategory
	HourlyRate      *decimal.Decimal
	CommissionRates *CommissionRates
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveHourlyRate returns the hourly rate, treating an unset rate as zero.
func (s StaffMember) EffectiveHourlyRate() decimal.Decimal {
	if s.HourlyRate == nil {
		return decimal.Zero
	}
	return *s.HourlyRate
}

// RoleCategory is the tagged classification of a staff member. The free-text
// Position stays as a display label only; the category is derived from it on
// write so commission resolution never has to re-scan raw position strings.
type RoleCategory string

const (
	CategoryDentist     RoleCategory = "dentist"
	CategoryAssistant   RoleCategory = "assistant"
	CategoryHygienist   RoleCategory = "hygienist"
	CategoryCoordinator RoleCategory = "coordinator"
	CategoryOther       RoleCategory = "other"
)

// CategoryFromPosition classifies a free-text position. Dentist matches
// exactly; the assisting categories match on substring, case-insensitive.
// Anything unrecognized is CategoryOther.
func CategoryFromPosition(position string) RoleCategory {
	p := strings.ToLower(strings.TrimSpace(position))
	switch {
	case p == "dentist":
		return CategoryDentist
	case strings.Contains(p, "assistant"):
		return CategoryAssistant
	case strings.Contains(p, "hygienist"):
		return CategoryHygienist
	case strings.Contains(p, "coordinator"):
		return CategoryCoordinator
	default:
		return CategoryOther
	}
}

// CommissionRates is a dentist's custom commission structure, stored as JSONB.
// Either field may be absent; resolution order is handled by the commission
// engine.
type CommissionRates struct {
	TreatmentRate *float64 `json:"treatment_rate,omitempty"`
	OwnerShare    *float64 `json:"owner_share,omitempty"`
}
