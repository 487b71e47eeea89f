package utils

import (
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`[\d]+(?:,\d{3})*(?:\.\d+)?`)

// ParsePrice extracts the numeric value from a display price like "$1,299.99".
// Returns 0 when no number is present.
func ParsePrice(priceStr string) float64 {
	return extractNumber(priceStr)
}

// ParseRating extracts the numeric rating from strings like
// "4.5 out of 5 stars". Returns 0 when no number is present.
func ParseRating(ratingStr string) float64 {
	return extractNumber(ratingStr)
}

func extractNumber(s string) float64 {
	if s == "" {
		return 0
	}

	match := numberPattern.FindString(s)
	if match == "" {
		return 0
	}

	// Strip thousands separators before parsing.
	cleaned := make([]byte, 0, len(match))
	for i := 0; i < len(match); i++ {
		if match[i] != ',' {
			cleaned = append(cleaned, match[i])
		}
	}

	value, err := strconv.ParseFloat(string(cleaned), 64)
	if err != nil {
		return 0
	}
	return value
}
