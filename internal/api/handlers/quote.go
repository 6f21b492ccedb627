package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanoutdz/landingapi/internal/domain"
	"github.com/hanoutdz/landingapi/internal/order"
)

// QuoteRequest carries the current form selections for server-side pricing.
type QuoteRequest struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	WilayaID     int    `json:"wilayaId"`
	Commune      string `json:"baldia"`
	Address      string `json:"address"`
	DeliveryType string `json:"deliveryType"`
	Color        string `json:"color"`
	Size         string `json:"size"`
	BundleID     string `json:"bundleId"`
}

// QuoteResponse returns the derived totals and any field errors for the
// given selections.
type QuoteResponse struct {
	Success     bool               `json:"success"`
	Subtotal    int                `json:"subtotal"`
	DeliveryFee int                `json:"deliveryFee"`
	Total       int                `json:"total"`
	Savings     int                `json:"savings"`
	Errors      domain.FieldErrors `json:"errors,omitempty"`
}

// HandleQuote handles POST /v1/quote. It evaluates the order calculator
// server-side so the page and the backend agree on one pricing truth.
func HandleQuote(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "صيغة الطلب غير صالحة"})
			return
		}

		calc := order.NewCalculator()
		calc.SetFullName(req.FullName)
		calc.SetPhone(req.Phone)
		calc.SetCommune(req.Commune)

		// Selections are optional in a quote, but a given id must exist.
		selections := []struct {
			field string
			apply func() error
			given bool
		}{
			{"bundleId", func() error { return calc.SelectBundle(req.BundleID) }, req.BundleID != ""},
			{"deliveryType", func() error { return calc.SelectDeliveryType(req.DeliveryType) }, req.DeliveryType != ""},
			{"wilayaId", func() error { return calc.SelectWilaya(req.WilayaID) }, req.WilayaID != 0},
			{"color", func() error { return calc.SelectColor(req.Color) }, req.Color != ""},
			{"size", func() error { return calc.SelectSize(req.Size) }, req.Size != ""},
		}
		for _, sel := range selections {
			if !sel.given {
				continue
			}
			if err := sel.apply(); err != nil {
				logger.Warn("quote rejected", zap.String("field", sel.field), zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "قيمة غير معروفة: " + sel.field,
				})
				return
			}
		}
		// Address is set after the delivery type so a home-delivery quote
		// keeps it.
		calc.SetAddress(req.Address)

		draft := calc.Draft()
		resp := QuoteResponse{
			Success:     true,
			Subtotal:    draft.Subtotal,
			DeliveryFee: draft.DeliveryFee,
			Total:       draft.Total,
			Savings:     draft.Savings,
		}
		if errs := calc.Validate(); len(errs) > 0 {
			resp.Errors = errs
		}
		c.JSON(http.StatusOK, resp)
	}
}
