package validator

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsNonBlank checks if the string has at least one non-whitespace character
func IsNonBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidLatitude checks if the latitude is within WGS84 bounds
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude checks if the longitude is within WGS84 bounds
func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
