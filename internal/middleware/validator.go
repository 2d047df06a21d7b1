package middleware

import (
	"fmt"
	"strings"
)

// Input validation and sanitization utilities

// MaxInputLength caps pasted input; anything longer than a generous
// message-sized text is rejected before it reaches the classifier.
const MaxInputLength = 10000

// ValidateInput checks pasted text before a check is started.
func ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}
	if len([]rune(input)) > MaxInputLength {
		return fmt.Errorf("input exceeds %d characters", MaxInputLength)
	}
	return nil
}

// ClampScore forces a reported score into the 0-100 contract range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// SanitizeString removes null bytes and control characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
