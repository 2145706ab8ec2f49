package controller

import (
	"bytes"
	"html/template"
	"log/slog"
	"strconv"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/page"
)

var cartItemsTmpl = template.Must(template.New("cart-items").Parse(
	`{{if not .}}<p>` + MsgCartEmpty + `</p>{{else}}{{range .}}<div class="cart-item">
  <p>Title: {{.Title}}</p>
  <p>Container Qty: {{.ContainerQty}}</p>
  <p>Order Amount: {{.Quantity}}</p>
</div>{{end}}{{end}}`))

// renderCounter expects c.mu to be held.
func (c *Controller) renderCounter() {
	total := c.cart.TotalQuantity()
	if el, ok := c.doc.ElementByID(page.IDCartCounter); ok {
		el.SetText(strconv.Itoa(total))
	}
	if el, ok := c.doc.ElementByID(page.IDGoToCartButton); ok {
		el.SetDisabled(total == 0)
	}
	c.validateCheckout()
}

// renderCartPage expects c.mu to be held.
func (c *Controller) renderCartPage() {
	el, ok := c.doc.ElementByID(page.IDCartItems)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := cartItemsTmpl.Execute(&buf, c.cart.Lines); err != nil {
		c.logger.Error("failed to render cart items", slog.String("error", err.Error()))
		return
	}
	el.SetHTML(buf.String())
	c.validateCheckout()
}

// validateCheckout expects c.mu to be held.
func (c *Controller) validateCheckout() {
	btn, ok := c.doc.ElementByID(page.IDCheckoutButton)
	if !ok {
		return
	}
	btn.SetDisabled(!domain.CheckoutEligible(c.formValues(), c.cart.TotalQuantity()))
}

func (c *Controller) formValues() map[string]string {
	inputs := c.doc.RequiredInputs(page.IDCheckoutForm)
	values := make(map[string]string, len(inputs))
	for _, in := range inputs {
		values[in.ID()] = in.Value()
	}
	return values
}
