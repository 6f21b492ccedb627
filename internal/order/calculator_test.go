package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanoutdz/landingapi/internal/catalog"
)

func TestNewCalculatorDefaults(t *testing.T) {
	c := NewCalculator()
	d := c.Draft()

	assert.Equal(t, "bundle-1", d.BundleID)
	assert.Equal(t, "desk", d.DeliveryTypeID)
	assert.Equal(t, 2900, d.Subtotal)
	assert.Equal(t, 0, d.DeliveryFee)
	assert.Equal(t, 2900, d.Total)
	assert.Equal(t, 0, d.Savings)
}

func TestBundleTwoWithHomeDelivery(t *testing.T) {
	c := NewCalculator()
	require.NoError(t, c.SelectBundle("bundle-2"))
	require.NoError(t, c.SelectWilaya(16)) // base fee 400
	require.NoError(t, c.SelectDeliveryType("home"))

	d := c.Draft()
	assert.Equal(t, 5400, d.Subtotal)
	assert.Equal(t, 700, d.DeliveryFee)
	assert.Equal(t, 6100, d.Total)
	assert.Equal(t, 400, d.Savings)
}

func TestDeliveryFeeOrderIndependence(t *testing.T) {
	a := NewCalculator()
	require.NoError(t, a.SelectWilaya(31))
	require.NoError(t, a.SelectDeliveryType("home"))

	b := NewCalculator()
	require.NoError(t, b.SelectDeliveryType("home"))
	require.NoError(t, b.SelectWilaya(31))

	assert.Equal(t, a.Draft().DeliveryFee, b.Draft().DeliveryFee)
	assert.Equal(t, a.Draft().Total, b.Draft().Total)
	assert.Equal(t, 800, a.Draft().DeliveryFee)
}

func TestDeliveryFeeCompositionAllPairs(t *testing.T) {
	for _, w := range catalog.Wilayas {
		for _, dt := range catalog.DeliveryTypes {
			c := NewCalculator()
			require.NoError(t, c.SelectWilaya(w.ID))
			require.NoError(t, c.SelectDeliveryType(dt.ID))
			assert.Equal(t, w.DeliveryFee+dt.FeeModifier, c.Draft().DeliveryFee,
				"wilaya %s type %s", w.Code, dt.ID)
		}
	}
}

func TestUnknownSelectionsError(t *testing.T) {
	c := NewCalculator()
	assert.Error(t, c.SelectWilaya(999))
	assert.Error(t, c.SelectDeliveryType("drone"))
	assert.Error(t, c.SelectBundle("bundle-9"))
	assert.Error(t, c.SelectColor("purple"))
	assert.Error(t, c.SelectSize("xs"))

	// Nothing moved
	assert.Equal(t, NewCalculator().Draft(), c.Draft())
}

func TestSwitchingToDeskClearsAddress(t *testing.T) {
	c := NewCalculator()
	require.NoError(t, c.SelectDeliveryType("home"))
	c.SetAddress("حي 5 جويلية، رقم 12")

	require.NoError(t, c.SelectDeliveryType("desk"))
	assert.Empty(t, c.Draft().Address)

	// Switching back does not restore the discarded address
	require.NoError(t, c.SelectDeliveryType("home"))
	assert.Empty(t, c.Draft().Address)
}

func fillValidDraft(t *testing.T, c *Calculator) {
	t.Helper()
	c.SetFullName("أمينة بن يوسف")
	c.SetPhone("0555123456")
	c.SetCommune("باب الوادي")
	require.NoError(t, c.SelectWilaya(16))
	require.NoError(t, c.SelectColor("black"))
	require.NoError(t, c.SelectSize("l"))
}

func TestValidateCollectsAllErrors(t *testing.T) {
	c := NewCalculator()
	errs := c.Validate()

	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "wilaya")
	assert.Contains(t, errs, "commune")
	assert.Contains(t, errs, "color")
	assert.Contains(t, errs, "size")
	// Desk delivery: no address error
	assert.NotContains(t, errs, "address")
}

func TestValidateAddressOnlyForHomeDelivery(t *testing.T) {
	c := NewCalculator()
	fillValidDraft(t, c)

	assert.Empty(t, c.Validate())

	require.NoError(t, c.SelectDeliveryType("home"))
	errs := c.Validate()
	assert.Contains(t, errs, "address")
	assert.Len(t, errs, 1)

	c.SetAddress("حي 5 جويلية، رقم 12")
	assert.Empty(t, c.Validate())
}

func TestValidateNameLength(t *testing.T) {
	c := NewCalculator()
	fillValidDraft(t, c)

	c.SetFullName("أب")
	assert.Contains(t, c.Validate(), "fullName")

	long := ""
	for i := 0; i < 51; i++ {
		long += "م"
	}
	c.SetFullName(long)
	assert.Contains(t, c.Validate(), "fullName")

	c.SetFullName("أمينة")
	assert.NotContains(t, c.Validate(), "fullName")
}

func TestPhoneValidation(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"0555123456", true},
		{"0455123456", false}, // prefix not in 05/06/07
		{"055512345", false},  // 9 digits
		{"05 55 12 34 56", true},
		{"06-61-23-45-67", true},
		{"05551234567", false}, // 11 digits
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidPhone(tc.phone), "phone %q", tc.phone)
	}
}

func TestSettersClearFieldErrors(t *testing.T) {
	c := NewCalculator()
	c.Validate()
	require.Contains(t, c.Errors(), "phone")

	c.SetPhone("0661234567")
	assert.NotContains(t, c.Errors(), "phone")
}

func TestResetIsIdempotent(t *testing.T) {
	c := NewCalculator()
	fillValidDraft(t, c)
	require.NoError(t, c.SelectBundle("bundle-3"))

	c.Reset()
	once := c.Draft()
	c.Reset()
	twice := c.Draft()

	assert.Equal(t, once, twice)
	assert.Equal(t, NewCalculator().Draft(), twice)
	assert.Empty(t, c.Errors())
}

func TestSubmissionResolvesLabels(t *testing.T) {
	c := NewCalculator()
	fillValidDraft(t, c)
	require.NoError(t, c.SelectBundle("bundle-2"))
	require.NoError(t, c.SelectDeliveryType("home"))
	c.SetAddress("شارع ديدوش مراد 14")
	c.SetPhone("05 55 12 34 56")

	sub, err := c.Submission()
	require.NoError(t, err)

	assert.Equal(t, "أمينة بن يوسف", sub.CustomerName)
	assert.Equal(t, "0555123456", sub.Phone, "phone is normalized")
	assert.Equal(t, "الجزائر", sub.Wilaya)
	assert.Equal(t, "التوصيل للمنزل", sub.DeliveryType)
	assert.Equal(t, "أسود", sub.Color)
	assert.Equal(t, "L", sub.Size)
	assert.Equal(t, 2900, sub.UnitPrice)
	assert.Equal(t, 2, sub.Quantity)
	assert.Equal(t, 700, sub.DeliveryFee)
	assert.Equal(t, 6100, sub.Total)
}

func TestSubmissionFailsOnInvalidDraft(t *testing.T) {
	c := NewCalculator()
	_, err := c.Submission()
	assert.Error(t, err)
}
