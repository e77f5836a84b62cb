package attendance

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTimeCalculator_HoursWorked(t *testing.T) {
	t.Parallel()
	calc := NewTimeCalculator()

	tests := []struct {
		name         string
		clockIn      string
		clockOut     string
		breakMinutes int
		want         float64
	}{
		{"full day with lunch", "08:00", "17:00", 60, 8},
		{"half day no break", "08:00", "12:00", 0, 4},
		{"overtime day", "08:00", "19:00", 60, 10},
		{"break longer than shift", "09:00", "09:30", 60, 0},
		{"clock out before clock in", "17:00", "08:00", 0, 0},
		{"missing clock in", "", "17:00", 60, 0},
		{"missing clock out", "08:00", "", 60, 0},
		{"malformed clock in", "eight", "17:00", 60, 0},
		{"malformed clock out", "08:00", "25:99", 60, 0},
		{"thirty minute shift", "13:15", "13:45", 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.HoursWorked(tt.clockIn, tt.clockOut, tt.breakMinutes)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTimeCalculator_SplitHours(t *testing.T) {
	t.Parallel()
	calc := NewTimeCalculator()

	tests := []struct {
		name         string
		total        float64
		daysWorked   int
		wantRegular  float64
		wantOvertime float64
	}{
		{"under allowance", 6, 1, 6, 0},
		{"exactly allowance", 8, 1, 8, 0},
		{"single day overtime", 10, 1, 8, 2},
		{"period overtime", 30, 3, 24, 6},
		{"zero hours", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regular, overtime := calc.SplitHours(tt.total, tt.daysWorked)
			assert.InDelta(t, tt.wantRegular, regular, 1e-9)
			assert.InDelta(t, tt.wantOvertime, overtime, 1e-9)
		})
	}
}

// regular + overtime must always reassemble to the original total.
func TestTimeCalculator_SplitHoursConserved(t *testing.T) {
	t.Parallel()
	calc := NewTimeCalculator()

	for _, h := range []float64{0, 0.25, 4, 8, 8.5, 10, 12.75, 16, 24} {
		t.Run(fmt.Sprintf("h=%v", h), func(t *testing.T) {
			regular, overtime := calc.SplitHours(h, 1)
			assert.InDelta(t, h, regular+overtime, 1e-9)
			assert.LessOrEqual(t, regular, StandardDailyHours)
			assert.GreaterOrEqual(t, overtime, 0.0)
		})
	}
}

func TestTimeCalculator_DailyPay(t *testing.T) {
	t.Parallel()
	calc := NewTimeCalculator()

	tests := []struct {
		name  string
		hours float64
		rate  string
		want  string
	}{
		{"regular day", 8, "100", "800"},
		{"overtime day", 10, "100", "1050"},
		{"short day", 4, "150", "600"},
		{"zero hours", 0, "100", "0"},
		{"zero rate", 10, "0", "0"},
		{"fractional overtime", 8.5, "200", "1725"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := decimal.RequireFromString(tt.rate)
			got := calc.DailyPay(tt.hours, rate)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}
