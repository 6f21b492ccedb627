package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanoutdz/landingapi/internal/config"
	"github.com/hanoutdz/landingapi/internal/service"
	"github.com/hanoutdz/landingapi/pkg/errors"
)

// OrderResponse is the submission endpoint response body.
type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
	Details string `json:"details,omitempty"`
}

// SheetsProbe checks that the configured spreadsheet is reachable.
type SheetsProbe interface {
	Title(ctx context.Context) (string, error)
}

// HandleSubmitOrder handles POST /v1/orders
func HandleSubmitOrder(pipeline *service.Pipeline, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload service.SubmissionPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, OrderResponse{
				Success: false,
				Message: "صيغة الطلب غير صالحة",
			})
			return
		}

		result, err := pipeline.Submit(c.Request.Context(), &payload)
		if err != nil {
			// Caller error: name the field, never retry
			if verr, ok := err.(*errors.ErrInvalidPayload); ok {
				c.JSON(http.StatusBadRequest, OrderResponse{
					Success: false,
					Message: verr.Reason,
				})
				return
			}
			// Transient infrastructure error: tell the user to retry,
			// distinctly from a validation failure
			if perr, ok := err.(*errors.ErrPersistFailed); ok {
				logger.Error("order persistence failed", zap.Error(perr))
				c.JSON(http.StatusBadGateway, OrderResponse{
					Success: false,
					Message: "تعذر حفظ الطلب، يرجى المحاولة مرة أخرى",
					Details: perr.Error(),
				})
				return
			}
			logger.Error("order submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, OrderResponse{
				Success: false,
				Message: "حدث خطأ أثناء معالجة الطلب",
			})
			return
		}

		c.JSON(http.StatusOK, OrderResponse{
			Success: true,
			Message: "تم استلام الطلب بنجاح",
			OrderID: result.OrderID.String(),
		})
	}
}

// StatusResponse is the liveness/configuration probe response body.
type StatusResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Config  *StatusConfig `json:"config,omitempty"`
}

type StatusConfig struct {
	Enabled    bool `json:"enabled"`
	Configured bool `json:"configured"`
}

// HandleOrdersStatus handles GET /v1/orders/status. Operational
// smoke-testing only; it never touches the calculator.
func HandleOrdersStatus(cfg *config.Config, probe SheetsProbe, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := StatusResponse{
			Success: true,
			Message: "Orders API is active",
			Config: &StatusConfig{
				Enabled:    cfg.Sheets.Enabled,
				Configured: cfg.Sheets.SheetID != "" && cfg.Sheets.CredentialsJSON != "",
			},
		}

		if cfg.Sheets.Enabled && probe != nil {
			title, err := probe.Title(c.Request.Context())
			if err != nil {
				logger.Warn("sheets probe failed", zap.Error(err))
				status.Message = "Orders API is active, spreadsheet unreachable"
			} else {
				status.Message = "Orders API is active, spreadsheet: " + title
			}
		}

		c.JSON(http.StatusOK, status)
	}
}
