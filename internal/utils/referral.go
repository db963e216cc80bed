package utils

import "strings"

const maxReferralCodeLen = 50

// IsValidReferralCode accepts short upper-case alphanumeric codes such as
// "ADMIN" or "CLINIC10". An empty string is not a valid code; callers treat
// absence separately.
func IsValidReferralCode(code string) bool {
	if code == "" || len(code) > maxReferralCodeLen {
		return false
	}
	for _, r := range code {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// NormalizeReferralCode trims and upper-cases user-supplied codes before
// validation, so "admin " and "ADMIN" attribute to the same partner.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
