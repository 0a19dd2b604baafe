package utils_test

import (
	"testing"
	"time"

	"advisory-server/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAge(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	t.Run("BirthdayPassedThisYear", func(t *testing.T) {
		dob := time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 46, utils.CalculateAge(dob, now))
	})

	t.Run("BirthdayNotYetReached", func(t *testing.T) {
		dob := time.Date(1980, 11, 2, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 45, utils.CalculateAge(dob, now))
	})

	t.Run("BirthdayToday", func(t *testing.T) {
		dob := time.Date(1990, 8, 28, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 36, utils.CalculateAge(dob, now))
	})

	t.Run("FutureDateOfBirthClampsToZero", func(t *testing.T) {
		dob := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, utils.CalculateAge(dob, now))
	})
}
