package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/hanoutdz/landingapi/internal/domain"
)

// Config holds SMTP settings for the merchant notification mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends order notification emails over SMTP.
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	logger *zap.Logger
}

// New creates a Mailer.
func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}
}

// SendOrderNotification renders the order template and sends it to the
// merchant. The caller decides what to do with a failure; this method never
// affects the submission outcome by itself.
func (m *Mailer) SendOrderNotification(recipient string, sub domain.OrderSubmission) error {
	body, err := renderBody(sub)
	if err != nil {
		return fmt.Errorf("failed to render notification body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "طلب جديد من "+sub.CustomerName)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

func renderBody(sub domain.OrderSubmission) (string, error) {
	var buf bytes.Buffer
	if err := orderTemplate.Execute(&buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Same fields as the spreadsheet row, in an RTL layout.
var orderTemplate = template.Must(template.New("order").Parse(`<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="UTF-8"><title>طلب جديد</title></head>
<body style="font-family: Arial, sans-serif; direction: rtl;">
  <h1>طلب جديد</h1>
  <h2>معلومات العميل</h2>
  <table>
    <tr><td>الاسم:</td><td>{{.CustomerName}}</td></tr>
    <tr><td>الهاتف:</td><td>{{.Phone}}</td></tr>
    <tr><td>الولاية:</td><td>{{.Wilaya}}</td></tr>
    <tr><td>البلدية:</td><td>{{.Commune}}</td></tr>
    {{if .Address}}<tr><td>العنوان:</td><td>{{.Address}}</td></tr>{{end}}
  </table>
  <h2>تفاصيل الطلب</h2>
  <table>
    <tr><td>المنتج:</td><td>{{.ProductName}}</td></tr>
    <tr><td>السعر:</td><td>{{.UnitPrice}} دج</td></tr>
    <tr><td>الكمية:</td><td>{{.Quantity}}</td></tr>
    {{if .Color}}<tr><td>اللون:</td><td>{{.Color}}</td></tr>{{end}}
    {{if .Size}}<tr><td>المقاس:</td><td>{{.Size}}</td></tr>{{end}}
    <tr><td>نوع التوصيل:</td><td>{{.DeliveryType}}</td></tr>
    <tr><td>رسوم التوصيل:</td><td>{{.DeliveryFee}} دج</td></tr>
  </table>
  <h3>المجموع الكلي: {{.Total}} دج</h3>
  <p>هذا البريد الإلكتروني تم إنشاؤه تلقائياً من نظام الطلبات</p>
</body>
</html>`))
