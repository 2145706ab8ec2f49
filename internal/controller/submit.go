package controller

import (
	"context"
	"errors"
	"log/slog"

	"github.com/utafrali/storefront/internal/client"
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/page"
)

// Submit sends the cart as an order and waits for the outcome. It returns
// without doing anything when checkout is disabled.
//
// On success the cart is cleared and navigation to the storefront root is
// scheduled after RedirectDelay. On failure the error is logged, the cart is
// kept and the checkout button stays disabled until the page is reloaded.
func (c *Controller) Submit(ctx context.Context) {
	req, ok := c.beginSubmit()
	if !ok {
		return
	}
	c.finishSubmit(ctx, req)
}

// beginSubmit disables checkout and snapshots the order. It reports false if
// checkout was already disabled.
func (c *Controller) beginSubmit() (domain.OrderRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	btn, ok := c.doc.ElementByID(page.IDCheckoutButton)
	if !ok || btn.Disabled() {
		return domain.OrderRequest{}, false
	}
	btn.SetDisabled(true)

	form := make(map[string]string, len(domain.RequiredFields))
	for _, id := range domain.RequiredFields {
		if el, ok := c.doc.ElementByID(id); ok {
			form[id] = el.Value()
		}
	}
	return domain.NewOrderRequest(form, c.cart.Snapshot(), c.now()), true
}

func (c *Controller) finishSubmit(ctx context.Context, req domain.OrderRequest) {
	if err := c.orders.Submit(ctx, req); err != nil {
		attrs := []any{slog.String("error", err.Error())}
		var subErr *client.SubmissionError
		if errors.As(err, &subErr) {
			attrs = append(attrs, slog.Int("status", subErr.Status))
		}
		c.logger.ErrorContext(ctx, "error during checkout process", attrs...)
		return
	}

	c.doc.Alert(MsgOrderSubmitted)

	c.mu.Lock()
	c.clear(ctx)
	c.mu.Unlock()

	c.scheduler.AfterFunc(RedirectDelay, func() { c.doc.Navigate(c.rootURL) })
}
