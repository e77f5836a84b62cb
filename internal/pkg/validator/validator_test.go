package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("frontdesk@kreativdental.com"))
	assert.True(t, IsValidEmail("dr.cruz+billing@clinic.ph"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-01-15")
	assert.True(t, ok)

	_, ok = IsValidDate("15-01-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-40")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "12:00", "23:59"}
	for _, v := range valid {
		assert.True(t, IsValidClockTime(v), v)
	}

	invalid := []string{"24:00", "8:30", "12:60", "12:5", "noon", ""}
	for _, v := range invalid {
		assert.False(t, IsValidClockTime(v), v)
	}
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"admin", "front_desk", "dentist"}
	assert.True(t, IsInSlice("admin", roles))
	assert.False(t, IsInSlice("patient", roles))
	assert.False(t, IsInSlice("", roles))
}
