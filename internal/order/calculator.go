package order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hanoutdz/landingapi/internal/catalog"
	"github.com/hanoutdz/landingapi/internal/domain"
)

// Validation messages shown next to form fields.
const (
	msgNameRequired    = "الاسم مطلوب"
	msgNameTooShort    = "الاسم قصير جداً"
	msgNameTooLong     = "الاسم طويل جداً"
	msgPhoneRequired   = "رقم الهاتف مطلوب"
	msgPhoneInvalid    = "رقم الهاتف غير صحيح (يجب أن يبدأ بـ 05، 06، أو 07)"
	msgWilayaRequired  = "الولاية مطلوبة"
	msgCommuneRequired = "البلدية مطلوبة"
	msgAddressRequired = "العنوان مطلوب للتوصيل إلى المنزل"
	msgColorRequired   = "اللون مطلوب"
	msgSizeRequired    = "المقاس مطلوب"
)

// Calculator maintains an order draft and keeps its derived totals
// consistent. All operations are synchronous; every call completes fully,
// including total recomputation, before returning.
type Calculator struct {
	draft  domain.OrderDraft
	errors domain.FieldErrors
}

// NewCalculator creates a calculator with the default bundle and delivery
// type pre-selected.
func NewCalculator() *Calculator {
	c := &Calculator{}
	c.Reset()
	return c
}

// Draft returns a copy of the current draft.
func (c *Calculator) Draft() domain.OrderDraft {
	return c.draft
}

// Errors returns the current field errors.
func (c *Calculator) Errors() domain.FieldErrors {
	return c.errors
}

// SetFullName updates the customer name and clears its field error.
func (c *Calculator) SetFullName(name string) {
	c.draft.FullName = name
	delete(c.errors, "fullName")
}

// SetPhone updates the phone number and clears its field error.
func (c *Calculator) SetPhone(phone string) {
	c.draft.Phone = phone
	delete(c.errors, "phone")
}

// SetCommune updates the commune and clears its field error.
func (c *Calculator) SetCommune(commune string) {
	c.draft.Commune = commune
	delete(c.errors, "commune")
}

// SetAddress updates the street address and clears its field error.
func (c *Calculator) SetAddress(address string) {
	c.draft.Address = address
	delete(c.errors, "address")
}

// SelectWilaya selects a delivery zone and recomputes the delivery fee and
// total. The catalog is closed, so an unknown id is a caller bug and is
// reported instead of being ignored.
func (c *Calculator) SelectWilaya(id int) error {
	w, ok := catalog.WilayaByID(id)
	if !ok {
		return fmt.Errorf("unknown wilaya id %d", id)
	}
	c.draft.WilayaID = w.ID
	c.recalcDelivery()
	delete(c.errors, "wilaya")
	return nil
}

// SelectDeliveryType selects a delivery type and recomputes the delivery fee
// using the currently selected wilaya. Switching to a type that needs no
// address discards any previously entered address so stale data is never
// submitted for office delivery.
func (c *Calculator) SelectDeliveryType(id string) error {
	dt, ok := catalog.DeliveryTypeByID(id)
	if !ok {
		return fmt.Errorf("unknown delivery type %q", id)
	}
	c.draft.DeliveryTypeID = dt.ID
	if !dt.RequiresAddress {
		c.draft.Address = ""
	}
	c.recalcDelivery()
	return nil
}

// SelectColor selects a product color.
func (c *Calculator) SelectColor(id string) error {
	col, ok := catalog.ColorByID(id)
	if !ok {
		return fmt.Errorf("unknown color %q", id)
	}
	c.draft.ColorID = col.ID
	delete(c.errors, "color")
	return nil
}

// SelectSize selects a product size.
func (c *Calculator) SelectSize(id string) error {
	s, ok := catalog.SizeByID(id)
	if !ok {
		return fmt.Errorf("unknown size %q", id)
	}
	c.draft.SizeID = s.ID
	delete(c.errors, "size")
	return nil
}

// SelectBundle selects a quantity tier and recomputes subtotal, savings and
// total.
func (c *Calculator) SelectBundle(id string) error {
	b, ok := catalog.BundleByID(id)
	if !ok {
		return fmt.Errorf("unknown bundle %q", id)
	}
	c.draft.BundleID = b.ID
	c.draft.Subtotal = b.TotalPrice
	c.draft.Savings = b.Savings
	c.draft.Total = c.draft.Subtotal + c.draft.DeliveryFee
	return nil
}

func (c *Calculator) recalcDelivery() {
	base := catalog.DeliveryFee(c.draft.WilayaID)
	modifier := 0
	if dt, ok := catalog.DeliveryTypeByID(c.draft.DeliveryTypeID); ok {
		modifier = dt.FeeModifier
	}
	c.draft.DeliveryFee = base + modifier
	c.draft.Total = c.draft.Subtotal + c.draft.DeliveryFee
}

// Validate checks every field and collects all errors; it does not stop at
// the first failure. An empty result means the draft is submittable.
func (c *Calculator) Validate() domain.FieldErrors {
	errs := domain.FieldErrors{}

	name := strings.TrimSpace(c.draft.FullName)
	switch {
	case name == "":
		errs["fullName"] = msgNameRequired
	case utf8.RuneCountInString(name) < 3:
		errs["fullName"] = msgNameTooShort
	case utf8.RuneCountInString(name) > 50:
		errs["fullName"] = msgNameTooLong
	}

	if strings.TrimSpace(c.draft.Phone) == "" {
		errs["phone"] = msgPhoneRequired
	} else if !ValidPhone(c.draft.Phone) {
		errs["phone"] = msgPhoneInvalid
	}

	if c.draft.WilayaID == 0 {
		errs["wilaya"] = msgWilayaRequired
	}

	if strings.TrimSpace(c.draft.Commune) == "" {
		errs["commune"] = msgCommuneRequired
	}

	if dt, ok := catalog.DeliveryTypeByID(c.draft.DeliveryTypeID); ok && dt.RequiresAddress {
		if strings.TrimSpace(c.draft.Address) == "" {
			errs["address"] = msgAddressRequired
		}
	}

	if c.draft.ColorID == "" {
		errs["color"] = msgColorRequired
	}

	if c.draft.SizeID == "" {
		errs["size"] = msgSizeRequired
	}

	c.errors = errs
	return errs
}

// Reset restores the draft to its default state: first bundle and delivery
// type selected, all text fields and errors cleared.
func (c *Calculator) Reset() {
	b := catalog.DefaultBundle()
	dt := catalog.DefaultDeliveryType()
	c.draft = domain.OrderDraft{
		DeliveryTypeID: dt.ID,
		BundleID:       b.ID,
		Subtotal:       b.TotalPrice,
		DeliveryFee:    0,
		Total:          b.TotalPrice,
		Savings:        b.Savings,
	}
	c.errors = domain.FieldErrors{}
}

// Submission builds the immutable wire payload from the draft. It fails if
// the draft does not pass validation.
func (c *Calculator) Submission() (domain.OrderSubmission, error) {
	if errs := c.Validate(); len(errs) > 0 {
		return domain.OrderSubmission{}, fmt.Errorf("draft is not submittable: %d invalid fields", len(errs))
	}

	wilaya, _ := catalog.WilayaByID(c.draft.WilayaID)
	dt, _ := catalog.DeliveryTypeByID(c.draft.DeliveryTypeID)
	color, _ := catalog.ColorByID(c.draft.ColorID)
	size, _ := catalog.SizeByID(c.draft.SizeID)
	bundle, _ := catalog.BundleByID(c.draft.BundleID)

	return domain.OrderSubmission{
		CustomerName: strings.TrimSpace(c.draft.FullName),
		Phone:        NormalizePhone(c.draft.Phone),
		Wilaya:       wilaya.Name,
		Commune:      strings.TrimSpace(c.draft.Commune),
		Address:      strings.TrimSpace(c.draft.Address),
		DeliveryType: dt.Label,
		DeliveryFee:  c.draft.DeliveryFee,
		ProductName:  catalog.TheProduct.Name,
		UnitPrice:    bundle.UnitPrice,
		Quantity:     bundle.Quantity,
		Color:        color.Name,
		Size:         size.Label,
		Total:        c.draft.Total,
	}, nil
}
