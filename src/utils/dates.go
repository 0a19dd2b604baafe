package utils

import "time"

const ShortDashDateLayout = "2006-01-02"

// CalculateAge returns full years elapsed between dateOfBirth and now,
// accounting for a birthday not yet reached in the current year.
func CalculateAge(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
