package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/lavkashop/lavka/internal/domain"
)

// SMTPConfig holds SMTP connection parameters.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string // optional - some servers allow unauthenticated relay
	Password string // optional
	From     string
	FromName string
}

// SMTPSender implements Sender over SMTP using go-mail. TLS mode is
// picked from the port: implicit TLS on 465, mandatory STARTTLS on
// 587, opportunistic elsewhere (including local dev relays like
// Mailpit on 1025).
type SMTPSender struct {
	config SMTPConfig
	logger *slog.Logger
}

// NewSMTPSender creates an SMTP sender.
func NewSMTPSender(config SMTPConfig, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{config: config, logger: logger}
}

// SendOrderConfirmation emails the customer a plain-text order summary.
func (s *SMTPSender) SendOrderConfirmation(ctx context.Context, order *domain.Order) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(s.config.FromName, s.config.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(order.CustomerEmail); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}

	msg.Subject(fmt.Sprintf("Order %s confirmed", order.ID))
	msg.SetBodyString(mail.TypeTextPlain, orderConfirmationBody(order))

	client, err := mail.NewClient(s.config.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("order confirmation sent",
		slog.String("order_id", order.ID),
		slog.String("to", order.CustomerEmail))
	return nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTimeout(30 * time.Second),
	}

	switch s.config.Port {
	case 465:
		opts = append(opts, mail.WithSSL())
	case 587:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if s.config.Username != "" && s.config.Password != "" {
		opts = append(opts,
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
			mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover),
		)
	}

	return opts
}

func orderConfirmationBody(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", order.CustomerName)
	fmt.Fprintf(&b, "Thank you for your order %s.\n\n", order.ID)
	for _, item := range order.Items {
		variant := ""
		if item.Size != "" || item.Color != "" {
			variant = fmt.Sprintf(" (%s)", strings.TrimSpace(strings.Join([]string{item.Size, item.Color}, " ")))
		}
		fmt.Fprintf(&b, "  %dx %s%s - %d\n", item.Quantity, item.Name, variant, item.Price*int64(item.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: %d\n", order.Total)
	fmt.Fprintf(&b, "Delivery address: %s\n", order.DeliveryAddress)
	return b.String()
}
