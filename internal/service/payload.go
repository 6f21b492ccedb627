package service

import "github.com/hanoutdz/landingapi/internal/domain"

// SubmissionPayload is the raw order submission as posted by the page.
// Numeric fields are pointers so that an explicit zero can be told apart
// from an absent field.
type SubmissionPayload struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Wilaya       string `json:"wilaya"`
	Commune      string `json:"baldia"`
	Address      string `json:"address"`
	DeliveryType string `json:"deliveryType"`
	DeliveryFee  *int   `json:"deliveryFee"`
	ProductName  string `json:"productName"`
	UnitPrice    *int   `json:"productPrice"`
	Quantity     *int   `json:"quantity"`
	Color        string `json:"color"`
	Size         string `json:"size"`
	Total        *int   `json:"total"`
}

// Submission converts a validated payload into the immutable order record.
// Callers must run ValidateSubmission first; nil numerics panic here.
func (p *SubmissionPayload) Submission() domain.OrderSubmission {
	return domain.OrderSubmission{
		CustomerName: p.CustomerName,
		Phone:        p.Phone,
		Wilaya:       p.Wilaya,
		Commune:      p.Commune,
		Address:      p.Address,
		DeliveryType: p.DeliveryType,
		DeliveryFee:  *p.DeliveryFee,
		ProductName:  p.ProductName,
		UnitPrice:    *p.UnitPrice,
		Quantity:     *p.Quantity,
		Color:        p.Color,
		Size:         p.Size,
		Total:        *p.Total,
	}
}
