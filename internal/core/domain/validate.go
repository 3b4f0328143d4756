package domain

import "regexp"

// Field-format invariants enforced before any submission reaches storage.
var (
	mobilePattern = regexp.MustCompile(`^\d{10}$`)
	aadharPattern = regexp.MustCompile(`^\d{12}$`)
	pinPattern    = regexp.MustCompile(`^\d{6}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidMobile reports whether the value is exactly ten decimal digits.
func ValidMobile(value string) bool {
	return mobilePattern.MatchString(value)
}

// ValidAadhar reports whether the value is exactly twelve decimal digits.
func ValidAadhar(value string) bool {
	return aadharPattern.MatchString(value)
}

// ValidPin reports whether the value is exactly six decimal digits.
func ValidPin(value string) bool {
	return pinPattern.MatchString(value)
}

// ValidEmail reports whether the value has a basic local@domain.tld shape.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}
