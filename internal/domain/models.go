package domain

import (
	"strconv"
	"time"
)

// OrderDraft is the in-progress order state held during one visit to the
// page. The four derived fields (Subtotal, DeliveryFee, Total, Savings) are
// recomputed by the calculator on every selection change and are never set
// independently.
type OrderDraft struct {
	FullName string
	Phone    string
	WilayaID int // 0 means no wilaya selected
	Commune  string
	Address  string

	DeliveryTypeID string
	ColorID        string
	SizeID         string
	BundleID       string

	Subtotal    int
	DeliveryFee int
	Total       int
	Savings     int
}

// OrderSubmission is the finalized, immutable payload built from a valid
// draft. Display labels are already resolved; all money is whole dinars.
type OrderSubmission struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Wilaya       string `json:"wilaya"`
	Commune      string `json:"baldia"`
	Address      string `json:"address,omitempty"`
	DeliveryType string `json:"deliveryType"`
	DeliveryFee  int    `json:"deliveryFee"`
	ProductName  string `json:"productName"`
	UnitPrice    int    `json:"productPrice"`
	Quantity     int    `json:"quantity"`
	Color        string `json:"color,omitempty"`
	Size         string `json:"size,omitempty"`
	Total        int    `json:"total"`
}

// FieldErrors maps a field name to a human-readable message. A non-empty set
// means the draft or payload is not submittable.
type FieldErrors map[string]string

// SheetHeaders is the fixed column order of the orders sheet.
var SheetHeaders = []string{
	"التاريخ والوقت",
	"اسم العميل",
	"رقم الهاتف",
	"الولاية",
	"البلدية",
	"العنوان",
	"نوع التوصيل",
	"رسوم التوصيل",
	"اسم المنتج",
	"سعر المنتج",
	"الكمية",
	"اللون",
	"المقاس",
	"المجموع الكلي",
}

// OrderRow is one spreadsheet row, values in SheetHeaders order.
type OrderRow []string

// NewOrderRow flattens a submission into a sheet row stamped with the
// submission time.
func NewOrderRow(ts time.Time, sub OrderSubmission) OrderRow {
	return OrderRow{
		ts.Format("2006-01-02 15:04:05"),
		sub.CustomerName,
		sub.Phone,
		sub.Wilaya,
		sub.Commune,
		sub.Address,
		sub.DeliveryType,
		strconv.Itoa(sub.DeliveryFee),
		sub.ProductName,
		strconv.Itoa(sub.UnitPrice),
		strconv.Itoa(sub.Quantity),
		sub.Color,
		sub.Size,
		strconv.Itoa(sub.Total),
	}
}
