package catalog

// Bundle is a purchasable quantity tier with its own total price and savings
// relative to per-unit pricing.
type Bundle struct {
	ID             string
	Quantity       int
	UnitPrice      int
	TotalPrice     int
	Savings        int
	SavingsPercent float64
	Popular        bool
	Label          string
}

// Color is a selectable product color.
type Color struct {
	ID   string
	Name string
	Hex  string
}

// Size is a selectable product size.
type Size struct {
	ID    string
	Label string
	Range string
}

// DeliveryType modifies the wilaya base fee and controls whether a street
// address is required.
type DeliveryType struct {
	ID              string
	Label           string
	FeeModifier     int
	RequiresAddress bool
}

// Wilaya is a delivery zone with its base fee and expected delivery window.
type Wilaya struct {
	ID             int
	Code           string
	Name           string
	DeliveryFee    int
	DeliveryWindow string
}

// Product holds the single product sold by the landing page.
type Product struct {
	ID            string
	Name          string
	BasePrice     int
	OriginalPrice int
}

// All monetary values are whole Algerian dinars.
var TheProduct = Product{
	ID:            "hijab-princess-001",
	Name:          "حجاب الأميرة الفاخر",
	BasePrice:     2900,
	OriginalPrice: 3500,
}

var DeliveryTypes = []DeliveryType{
	{ID: "desk", Label: "التوصيل للمكتب", FeeModifier: 0, RequiresAddress: false},
	{ID: "home", Label: "التوصيل للمنزل", FeeModifier: 300, RequiresAddress: true},
}

var Colors = []Color{
	{ID: "pink", Name: "وردي", Hex: "#E879A5"},
	{ID: "aubergine", Name: "أوبرجين", Hex: "#522339"},
	{ID: "black", Name: "أسود", Hex: "#000000"},
	{ID: "beige", Name: "بيج", Hex: "#F5F5DC"},
	{ID: "royal-green", Name: "أخضر ملكي", Hex: "#1B4D3E"},
}

var Sizes = []Size{
	{ID: "m", Label: "M", Range: "36-38"},
	{ID: "l", Label: "L", Range: "40-42"},
	{ID: "xl", Label: "XL", Range: "44-46"},
	{ID: "xxl", Label: "XXL", Range: "48-50"},
}

var Bundles = []Bundle{
	{ID: "bundle-1", Quantity: 1, UnitPrice: 2900, TotalPrice: 2900, Savings: 0, SavingsPercent: 0, Popular: false, Label: "قطعة واحدة"},
	{ID: "bundle-2", Quantity: 2, UnitPrice: 2900, TotalPrice: 5400, Savings: 400, SavingsPercent: 6.9, Popular: true, Label: "قطعتين - وفّر 400 دج"},
	{ID: "bundle-3", Quantity: 3, UnitPrice: 2900, TotalPrice: 8000, Savings: 700, SavingsPercent: 8.0, Popular: false, Label: "3 قطع - عرض العائلة"},
}

// Wilayas is ordered by wilaya code. Fees reflect the courier's current
// price grid per zone (coast, highlands, deep south).
var Wilayas = []Wilaya{
	{ID: 1, Code: "01", Name: "أدرار", DeliveryFee: 900, DeliveryWindow: "72+ ساعة"},
	{ID: 2, Code: "02", Name: "الشلف", DeliveryFee: 480, DeliveryWindow: "24-48 ساعة"},
	{ID: 3, Code: "03", Name: "الأغواط", DeliveryFee: 600, DeliveryWindow: "48-72 ساعة"},
	{ID: 4, Code: "04", Name: "أم البواقي", DeliveryFee: 520, DeliveryWindow: "48-72 ساعة"},
	{ID: 5, Code: "05", Name: "باتنة", DeliveryFee: 550, DeliveryWindow: "48-72 ساعة"},
	{ID: 6, Code: "06", Name: "بجاية", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 7, Code: "07", Name: "بسكرة", DeliveryFee: 600, DeliveryWindow: "48-72 ساعة"},
	{ID: 8, Code: "08", Name: "بشار", DeliveryFee: 750, DeliveryWindow: "72+ ساعة"},
	{ID: 9, Code: "09", Name: "البليدة", DeliveryFee: 400, DeliveryWindow: "24-48 ساعة"},
	{ID: 10, Code: "10", Name: "البويرة", DeliveryFee: 460, DeliveryWindow: "24-48 ساعة"},
	{ID: 11, Code: "11", Name: "تمنراست", DeliveryFee: 900, DeliveryWindow: "72+ ساعة"},
	{ID: 12, Code: "12", Name: "تبسة", DeliveryFee: 580, DeliveryWindow: "48-72 ساعة"},
	{ID: 13, Code: "13", Name: "تلمسان", DeliveryFee: 550, DeliveryWindow: "48-72 ساعة"},
	{ID: 14, Code: "14", Name: "تيارت", DeliveryFee: 520, DeliveryWindow: "48-72 ساعة"},
	{ID: 15, Code: "15", Name: "تيزي وزو", DeliveryFee: 480, DeliveryWindow: "24-48 ساعة"},
	{ID: 16, Code: "16", Name: "الجزائر", DeliveryFee: 400, DeliveryWindow: "24-48 ساعة"},
	{ID: 17, Code: "17", Name: "الجلفة", DeliveryFee: 580, DeliveryWindow: "48-72 ساعة"},
	{ID: 18, Code: "18", Name: "جيجل", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 19, Code: "19", Name: "سطيف", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 20, Code: "20", Name: "سعيدة", DeliveryFee: 540, DeliveryWindow: "48-72 ساعة"},
	{ID: 21, Code: "21", Name: "سكيكدة", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 22, Code: "22", Name: "سيدي بلعباس", DeliveryFee: 550, DeliveryWindow: "48-72 ساعة"},
	{ID: 23, Code: "23", Name: "عنابة", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 24, Code: "24", Name: "قالمة", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 25, Code: "25", Name: "قسنطينة", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 26, Code: "26", Name: "المدية", DeliveryFee: 450, DeliveryWindow: "24-48 ساعة"},
	{ID: 27, Code: "27", Name: "مستغانم", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 28, Code: "28", Name: "المسيلة", DeliveryFee: 550, DeliveryWindow: "48-72 ساعة"},
	{ID: 29, Code: "29", Name: "معسكر", DeliveryFee: 520, DeliveryWindow: "24-48 ساعة"},
	{ID: 30, Code: "30", Name: "ورقلة", DeliveryFee: 700, DeliveryWindow: "48-72+ ساعة"},
	{ID: 31, Code: "31", Name: "وهران", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 32, Code: "32", Name: "البيض", DeliveryFee: 650, DeliveryWindow: "48-72+ ساعة"},
	{ID: 33, Code: "33", Name: "إليزي", DeliveryFee: 900, DeliveryWindow: "72+ ساعة"},
	{ID: 34, Code: "34", Name: "برج بوعريريج", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 35, Code: "35", Name: "بومرداس", DeliveryFee: 400, DeliveryWindow: "24-48 ساعة"},
	{ID: 36, Code: "36", Name: "الطارف", DeliveryFee: 520, DeliveryWindow: "48-72 ساعة"},
	{ID: 37, Code: "37", Name: "تندوف", DeliveryFee: 850, DeliveryWindow: "72+ ساعة"},
	{ID: 38, Code: "38", Name: "تسمسيلت", DeliveryFee: 520, DeliveryWindow: "48-72 ساعة"},
	{ID: 39, Code: "39", Name: "الوادي", DeliveryFee: 650, DeliveryWindow: "48-72 ساعة"},
	{ID: 40, Code: "40", Name: "خنشلة", DeliveryFee: 560, DeliveryWindow: "48-72 ساعة"},
	{ID: 41, Code: "41", Name: "سوق أهراس", DeliveryFee: 540, DeliveryWindow: "48-72 ساعة"},
	{ID: 42, Code: "42", Name: "تيبازة", DeliveryFee: 450, DeliveryWindow: "24-48 ساعة"},
	{ID: 43, Code: "43", Name: "ميلة", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
	{ID: 44, Code: "44", Name: "عين الدفلى", DeliveryFee: 460, DeliveryWindow: "24-48 ساعة"},
	{ID: 45, Code: "45", Name: "النعامة", DeliveryFee: 680, DeliveryWindow: "48-72+ ساعة"},
	{ID: 46, Code: "46", Name: "عين تيموشنت", DeliveryFee: 560, DeliveryWindow: "48-72 ساعة"},
	{ID: 47, Code: "47", Name: "غرداية", DeliveryFee: 680, DeliveryWindow: "48-72+ ساعة"},
	{ID: 48, Code: "48", Name: "غليزان", DeliveryFee: 500, DeliveryWindow: "24-48 ساعة"},
}

// BundleByID returns the bundle with the given id.
func BundleByID(id string) (Bundle, bool) {
	for _, b := range Bundles {
		if b.ID == id {
			return b, true
		}
	}
	return Bundle{}, false
}

// ColorByID returns the color with the given id.
func ColorByID(id string) (Color, bool) {
	for _, c := range Colors {
		if c.ID == id {
			return c, true
		}
	}
	return Color{}, false
}

// SizeByID returns the size with the given id.
func SizeByID(id string) (Size, bool) {
	for _, s := range Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}

// DeliveryTypeByID returns the delivery type with the given id.
func DeliveryTypeByID(id string) (DeliveryType, bool) {
	for _, d := range DeliveryTypes {
		if d.ID == id {
			return d, true
		}
	}
	return DeliveryType{}, false
}

// WilayaByID returns the wilaya with the given id.
func WilayaByID(id int) (Wilaya, bool) {
	for _, w := range Wilayas {
		if w.ID == id {
			return w, true
		}
	}
	return Wilaya{}, false
}

// DeliveryFee returns the base delivery fee for a wilaya, 0 if unknown.
func DeliveryFee(wilayaID int) int {
	w, ok := WilayaByID(wilayaID)
	if !ok {
		return 0
	}
	return w.DeliveryFee
}

// DefaultBundle is the bundle pre-selected on a fresh draft.
func DefaultBundle() Bundle {
	return Bundles[0]
}

// DefaultDeliveryType is the delivery type pre-selected on a fresh draft.
func DefaultDeliveryType() DeliveryType {
	return DeliveryTypes[0]
}
