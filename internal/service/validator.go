package service

import (
	"regexp"
	"strings"

	"github.com/hanoutdz/landingapi/pkg/errors"
)

// RequiredFields is the set of payload fields a submission must carry.
// Variants that sell products without color or size can shrink this list
// without touching the checks themselves. It must mirror the calculator's
// required-field set: a payload the page accepts must never be rejected
// here for a missing field, and vice versa.
var RequiredFields = []string{
	"customerName",
	"phone",
	"wilaya",
	"baldia",
	"deliveryType",
	"productName",
	"productPrice",
	"quantity",
	"deliveryFee",
	"total",
}

// Must stay in step with the phone rule in internal/order. The validators
// are deliberately separate: this one trusts nothing the page computed.
var serverPhonePattern = regexp.MustCompile(`^0(5|6|7)[0-9]{8}$`)
var serverNonDigits = regexp.MustCompile(`[^0-9]`)

// ValidateSubmission re-derives validity from the raw payload alone,
// independently of the client-side calculator. Zero is a present numeric
// value; only a missing field fails the presence check.
func ValidateSubmission(p *SubmissionPayload) error {
	present := map[string]func() bool{
		"customerName": func() bool { return strings.TrimSpace(p.CustomerName) != "" },
		"phone":        func() bool { return strings.TrimSpace(p.Phone) != "" },
		"wilaya":       func() bool { return strings.TrimSpace(p.Wilaya) != "" },
		"baldia":       func() bool { return strings.TrimSpace(p.Commune) != "" },
		"deliveryType": func() bool { return strings.TrimSpace(p.DeliveryType) != "" },
		"productName":  func() bool { return strings.TrimSpace(p.ProductName) != "" },
		"productPrice": func() bool { return p.UnitPrice != nil },
		"quantity":     func() bool { return p.Quantity != nil },
		"deliveryFee":  func() bool { return p.DeliveryFee != nil },
		"total":        func() bool { return p.Total != nil },
	}

	for _, field := range RequiredFields {
		check, ok := present[field]
		if !ok {
			continue
		}
		if !check() {
			return &errors.ErrInvalidPayload{Field: field, Reason: "حقل مطلوب: " + field}
		}
	}

	phone := serverNonDigits.ReplaceAllString(p.Phone, "")
	if len(phone) != 10 || !serverPhonePattern.MatchString(phone) {
		return &errors.ErrInvalidPayload{Field: "phone", Reason: "رقم هاتف غير صالح"}
	}

	return nil
}
