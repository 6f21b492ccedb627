package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Sheets.Enabled)
	assert.False(t, cfg.SMTP.Enabled)
	assert.Equal(t, 3, cfg.Pipeline.RetryAttempts)
	assert.Positive(t, cfg.Pipeline.Timeout)
}

func TestLoadRequiresSheetCredentialsWhenEnabled(t *testing.T) {
	t.Setenv("SHEETS_ENABLED", "true")
	t.Setenv("GOOGLE_SHEET_ID", "")
	t.Setenv("GOOGLE_CREDENTIALS_JSON", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSheetsEnabled(t *testing.T) {
	t.Setenv("SHEETS_ENABLED", "true")
	t.Setenv("GOOGLE_SHEET_ID", "sheet-id")
	t.Setenv("GOOGLE_CREDENTIALS_JSON", `{"type":"service_account"}`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Sheets.Enabled)
	assert.Equal(t, "sheet-id", cfg.Sheets.SheetID)
}

func TestLoadRejectsBadRetrySettings(t *testing.T) {
	t.Setenv("RETRY_ATTEMPTS", "0")
	_, err := Load()
	assert.Error(t, err)
}
