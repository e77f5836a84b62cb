package commission

import (
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
	"github.com/shopspring/decimal"
)

// Default commission rates as fractions of the payment amount.
var (
	DefaultDentistRate = decimal.NewFromFloat(0.40)
	AssistantRate      = decimal.NewFromFloat(0.05)
	HygienistRate      = decimal.NewFromFloat(0.08)
	CoordinatorRate    = decimal.NewFromFloat(0.03)
)

// ResolveDentistRate picks exactly one rate source for a dentist: the custom
// treatment_rate if set, else the custom owner_share, else the global default.
// The sources are never blended.
func ResolveDentistRate(rates *staff.CommissionRates) decimal.Decimal {
	if rates != nil {
		if rates.TreatmentRate != nil {
			return decimal.NewFromFloat(*rates.TreatmentRate)
		}
		if rates.OwnerShare != nil {
			return decimal.NewFromFloat(*rates.OwnerShare)
		}
	}
	return DefaultDentistRate
}

// ResolveStaffRate maps an assisting staff member's category to their
// commission rate. Unrecognized categories fall back to the assistant rate.
func ResolveStaffRate(category staff.RoleCategory) decimal.Decimal {
	switch category {
	case staff.CategoryHygienist:
		return HygienistRate
	case staff.CategoryCoordinator:
		return CoordinatorRate
	default:
		return AssistantRate
	}
}

// TypeForCategory tags the staff share with the matching commission type.
// Unrecognized categories are recorded as assistant, consistent with the rate
// fallback.
func TypeForCategory(category staff.RoleCategory) CommissionType {
	switch category {
	case staff.CategoryHygienist:
		return TypeHygienist
	case staff.CategoryCoordinator:
		return TypeCoordinator
	default:
		return TypeAssistant
	}
}
