package order

import "regexp"

var (
	nonDigits     = regexp.MustCompile(`[^0-9]`)
	mobilePattern = regexp.MustCompile(`^0(5|6|7)[0-9]{8}$`)
)

// NormalizePhone strips every non-digit character from the input.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidPhone reports whether the input reduces to a 10-digit Algerian mobile
// number starting with 05, 06 or 07.
func ValidPhone(phone string) bool {
	return mobilePattern.MatchString(NormalizePhone(phone))
}
