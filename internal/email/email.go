// Package email sends transactional mail. Order confirmation is the
// only message the storefront sends; delivery is best effort and never
// blocks or fails the operation that triggered it.
package email

import (
	"context"

	"github.com/lavkashop/lavka/internal/domain"
)

// Sender delivers storefront mail.
type Sender interface {
	// SendOrderConfirmation emails the customer a summary of their order.
	SendOrderConfirmation(ctx context.Context, order *domain.Order) error
}

// NopSender discards all mail. Used when no SMTP host is configured.
type NopSender struct{}

func (NopSender) SendOrderConfirmation(ctx context.Context, order *domain.Order) error {
	return nil
}
