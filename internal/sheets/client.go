package sheets

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/hanoutdz/landingapi/internal/domain"
)

// Config holds the spreadsheet destination and service-account credentials.
type Config struct {
	SheetID         string
	CredentialsJSON []byte
}

// Client appends order rows to a Google Sheet.
type Client struct {
	svc     *sheets.Service
	sheetID string
	logger  *zap.Logger

	mu          sync.Mutex
	headerReady bool
}

// NewClient creates a Sheets client authenticated with a service account.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{
		svc:     svc,
		sheetID: cfg.SheetID,
		logger:  logger,
	}, nil
}

// AppendRow appends one order row to the sheet, initializing the header row
// first if the sheet is empty.
func (c *Client) AppendRow(ctx context.Context, row domain.OrderRow) error {
	if err := c.ensureHeaders(ctx); err != nil {
		return err
	}

	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{values}}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.sheetID, "A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append order row: %w", err)
	}
	return nil
}

// ensureHeaders writes the header row once if the sheet is empty. Existing
// headers that do not match the expected schema are logged as a warning but
// must not block orders from being recorded.
func (c *Client) ensureHeaders(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.headerReady {
		return nil
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, "1:1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}

	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		header := make([]interface{}, len(domain.SheetHeaders))
		for i, h := range domain.SheetHeaders {
			header[i] = h
		}
		vr := &sheets.ValueRange{Values: [][]interface{}{header}}
		_, err := c.svc.Spreadsheets.Values.
			Update(c.sheetID, "1:1", vr).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to initialize header row: %w", err)
		}
		c.logger.Info("sheet headers initialized", zap.String("sheet_id", c.sheetID))
	} else if !headersMatch(resp.Values[0]) {
		c.logger.Warn("sheet headers do not match expected schema",
			zap.String("sheet_id", c.sheetID),
		)
	}

	c.headerReady = true
	return nil
}

func headersMatch(existing []interface{}) bool {
	if len(existing) < len(domain.SheetHeaders) {
		return false
	}
	for i, want := range domain.SheetHeaders {
		got, ok := existing[i].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Title fetches the spreadsheet title, confirming credentials and sharing
// are set up. Used by the status probe.
func (c *Client) Title(ctx context.Context) (string, error) {
	doc, err := c.svc.Spreadsheets.Get(c.sheetID).Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	return doc.Properties.Title, nil
}
