package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanoutdz/landingapi/internal/domain"
	"github.com/hanoutdz/landingapi/pkg/errors"
)

// SheetAppender appends one order row to the durable spreadsheet.
type SheetAppender interface {
	AppendRow(ctx context.Context, row domain.OrderRow) error
}

// Notifier sends the merchant a best-effort order notification.
type Notifier interface {
	SendOrderNotification(recipient string, sub domain.OrderSubmission) error
}

// PipelineConfig controls the submission pipeline. Worst-case persistence
// latency is RetryAttempts*Timeout plus the inter-attempt delays, where the
// delay before attempt n+1 is n*RetryDelay.
type PipelineConfig struct {
	PersistenceEnabled    bool
	NotificationEnabled   bool
	NotificationRecipient string
	RetryAttempts         int           // minimum 1
	Timeout               time.Duration // per append attempt
	RetryDelay            time.Duration // scaled linearly by attempt number
}

// SubmitResult is the outcome of an accepted submission.
type SubmitResult struct {
	OrderID   uuid.UUID
	Persisted bool
}

// Pipeline turns a raw payload into a spreadsheet row and a best-effort
// notification. Each submission is self-contained; there is no shared
// mutable state across requests.
type Pipeline struct {
	cfg    PipelineConfig
	sheet  SheetAppender
	mailer Notifier
	logger *zap.Logger

	sleep func(time.Duration)
	now   func() time.Time
}

// NewPipeline creates a submission pipeline. sheet and mailer may be nil
// when the corresponding feature is disabled.
func NewPipeline(cfg PipelineConfig, sheet SheetAppender, mailer Notifier, logger *zap.Logger) *Pipeline {
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return &Pipeline{
		cfg:    cfg,
		sheet:  sheet,
		mailer: mailer,
		logger: logger,
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// Submit validates the payload, appends the order to the spreadsheet and
// dispatches the notification. Validation failures return before any side
// effect; persistence failures abort before the notification; notification
// failures are only logged.
func (p *Pipeline) Submit(ctx context.Context, payload *SubmissionPayload) (*SubmitResult, error) {
	if err := ValidateSubmission(payload); err != nil {
		return nil, err
	}

	sub := payload.Submission()
	orderID := uuid.New()

	if !p.cfg.PersistenceEnabled {
		p.logger.Info("order accepted without persistence",
			zap.String("order_id", orderID.String()),
			zap.Int("total", sub.Total),
		)
		return &SubmitResult{OrderID: orderID, Persisted: false}, nil
	}

	row := domain.NewOrderRow(p.now(), sub)
	if err := p.appendWithRetry(ctx, row); err != nil {
		return nil, &errors.ErrPersistFailed{Attempts: p.cfg.RetryAttempts, Last: err}
	}

	p.logger.Info("order persisted",
		zap.String("order_id", orderID.String()),
		zap.String("wilaya", sub.Wilaya),
		zap.Int("quantity", sub.Quantity),
		zap.Int("total", sub.Total),
	)

	p.dispatchNotification(orderID, sub)

	return &SubmitResult{OrderID: orderID, Persisted: true}, nil
}

// appendWithRetry runs bounded sequential attempts against the sheet, each
// under its own timeout, with a linearly increasing delay in between.
func (p *Pipeline) appendWithRetry(ctx context.Context, row domain.OrderRow) error {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.RetryAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
		err := p.sheet.AppendRow(attemptCtx, row)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		p.logger.Warn("sheet append attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", p.cfg.RetryAttempts),
			zap.Error(err),
		)
		if attempt < p.cfg.RetryAttempts {
			p.sleep(time.Duration(attempt) * p.cfg.RetryDelay)
		}
	}
	return lastErr
}

// dispatchNotification hands the email to a goroutine with its own logging
// boundary. The HTTP response is already determined when this runs; the
// outcome never reaches the caller.
func (p *Pipeline) dispatchNotification(orderID uuid.UUID, sub domain.OrderSubmission) {
	if !p.cfg.NotificationEnabled || p.cfg.NotificationRecipient == "" || p.mailer == nil {
		return
	}
	go func() {
		if err := p.mailer.SendOrderNotification(p.cfg.NotificationRecipient, sub); err != nil {
			p.logger.Error("order notification failed",
				zap.String("order_id", orderID.String()),
				zap.Error(err),
			)
			return
		}
		p.logger.Info("order notification sent", zap.String("order_id", orderID.String()))
	}()
}
