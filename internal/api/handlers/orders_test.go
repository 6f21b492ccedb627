package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hanoutdz/landingapi/internal/api"
	"github.com/hanoutdz/landingapi/internal/config"
	"github.com/hanoutdz/landingapi/internal/domain"
	"github.com/hanoutdz/landingapi/internal/service"
)

type stubSheet struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubSheet) AppendRow(ctx context.Context, row domain.OrderRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubSheet) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestRouter(t *testing.T, cfg *config.Config, sheet service.SheetAppender) http.Handler {
	t.Helper()
	pipeline := service.NewPipeline(service.PipelineConfig{
		PersistenceEnabled: cfg.Sheets.Enabled,
		RetryAttempts:      2,
		Timeout:            100 * time.Millisecond,
		RetryDelay:         0,
	}, sheet, nil, zap.NewNop())
	return api.NewRouter(cfg, pipeline, nil, zap.NewNop())
}

func orderBody() map[string]interface{} {
	return map[string]interface{}{
		"customerName": "أمينة بن يوسف",
		"phone":        "0555123456",
		"wilaya":       "الجزائر",
		"baldia":       "باب الوادي",
		"address":      "شارع ديدوش مراد 14",
		"deliveryType": "التوصيل للمنزل",
		"deliveryFee":  700,
		"productName":  "حجاب الأميرة الفاخر",
		"productPrice": 2900,
		"quantity":     2,
		"color":        "أسود",
		"size":         "L",
		"total":        6100,
	}
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitOrderSuccess(t *testing.T) {
	cfg := &config.Config{Sheets: config.SheetsConfig{Enabled: true, SheetID: "sheet", CredentialsJSON: "{}"}}
	sheet := &stubSheet{}
	router := newTestRouter(t, cfg, sheet)

	w := postJSON(t, router, "/v1/orders", orderBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["orderId"])
	assert.Equal(t, 1, sheet.callCount())
}

func TestSubmitOrderValidationFailure(t *testing.T) {
	cfg := &config.Config{Sheets: config.SheetsConfig{Enabled: true, SheetID: "sheet", CredentialsJSON: "{}"}}
	sheet := &stubSheet{}
	router := newTestRouter(t, cfg, sheet)

	body := orderBody()
	body["phone"] = "123"
	w := postJSON(t, router, "/v1/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], "رقم هاتف")
	assert.Equal(t, 0, sheet.callCount(), "validation failure must run no side effects")
}

func TestSubmitOrderMissingField(t *testing.T) {
	cfg := &config.Config{Sheets: config.SheetsConfig{Enabled: true, SheetID: "sheet", CredentialsJSON: "{}"}}
	router := newTestRouter(t, cfg, &stubSheet{})

	body := orderBody()
	delete(body, "total")
	w := postJSON(t, router, "/v1/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "total")
}

func TestSubmitOrderPersistenceFailure(t *testing.T) {
	cfg := &config.Config{Sheets: config.SheetsConfig{Enabled: true, SheetID: "sheet", CredentialsJSON: "{}"}}
	sheet := &stubSheet{err: errors.New("quota exceeded")}
	router := newTestRouter(t, cfg, sheet)

	w := postJSON(t, router, "/v1/orders", orderBody())
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["details"])
	assert.Equal(t, 2, sheet.callCount(), "bounded retries")
}

func TestSubmitOrderWithoutPersistence(t *testing.T) {
	cfg := &config.Config{}
	router := newTestRouter(t, cfg, nil)

	w := postJSON(t, router, "/v1/orders", orderBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestOrdersStatus(t *testing.T) {
	cfg := &config.Config{}
	router := newTestRouter(t, cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	probe := resp["config"].(map[string]interface{})
	assert.Equal(t, false, probe["enabled"])
	assert.Equal(t, false, probe["configured"])
}

func TestQuote(t *testing.T) {
	router := newTestRouter(t, &config.Config{}, nil)

	w := postJSON(t, router, "/v1/quote", map[string]interface{}{
		"bundleId":     "bundle-2",
		"wilayaId":     16,
		"deliveryType": "home",
		"address":      "شارع ديدوش مراد 14",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(5400), resp["subtotal"])
	assert.Equal(t, float64(700), resp["deliveryFee"])
	assert.Equal(t, float64(6100), resp["total"])
	assert.Equal(t, float64(400), resp["savings"])

	// Incomplete form: errors reported but pricing still returned
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "phone")
}

func TestQuoteUnknownWilaya(t *testing.T) {
	router := newTestRouter(t, &config.Config{}, nil)

	w := postJSON(t, router, "/v1/quote", map[string]interface{}{"wilayaId": 999})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &config.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
