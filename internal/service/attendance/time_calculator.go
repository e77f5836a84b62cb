package attendance

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// StandardDailyHours is the threshold above which hours count as overtime.
	StandardDailyHours = 8.0
	// OvertimeMultiplier is the premium applied to overtime hours.
	OvertimeMultiplier = 1.25
)

type TimeCalculator struct {
}

func NewTimeCalculator() *TimeCalculator {
	return &TimeCalculator{}
}

// HoursWorked converts "HH:MM" clock strings and a break duration into worked
// hours. Missing or malformed clock times yield 0 hours rather than an error,
// so an in-progress or badly entered day never corrupts period aggregates.
func (c *TimeCalculator) HoursWorked(clockIn, clockOut string, breakMinutes int) float64 {
	in, ok := parseClockMinutes(clockIn)
	if !ok {
		return 0
	}
	out, ok := parseClockMinutes(clockOut)
	if !ok {
		return 0
	}

	worked := float64(out-in-breakMinutes) / 60.0
	if worked < 0 {
		return 0
	}
	return worked
}

// SplitHours divides a period total into regular and overtime hours against
// the standard-day allowance for the number of days worked.
func (c *TimeCalculator) SplitHours(totalHours float64, daysWorked int) (regular, overtime float64) {
	allowance := float64(daysWorked) * StandardDailyHours
	if totalHours <= allowance {
		return totalHours, 0
	}
	return allowance, totalHours - allowance
}

// DailyPay computes gross pay for a single day's hours at the given hourly
// rate, with the overtime premium above the standard day.
func (c *TimeCalculator) DailyPay(hours float64, hourlyRate decimal.Decimal) decimal.Decimal {
	regular := hours
	overtime := 0.0
	if hours > StandardDailyHours {
		regular = StandardDailyHours
		overtime = hours - StandardDailyHours
	}
	return c.GrossPay(regular, overtime, hourlyRate)
}

// GrossPay prices an already-split regular/overtime pair.
func (c *TimeCalculator) GrossPay(regularHours, overtimeHours float64, hourlyRate decimal.Decimal) decimal.Decimal {
	regularPay := decimal.NewFromFloat(regularHours).Mul(hourlyRate)
	overtimePay := decimal.NewFromFloat(overtimeHours).Mul(hourlyRate).Mul(decimal.NewFromFloat(OvertimeMultiplier))
	return regularPay.Add(overtimePay)
}

// parseClockMinutes parses "HH:MM" into minutes since midnight.
func parseClockMinutes(clock string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}
