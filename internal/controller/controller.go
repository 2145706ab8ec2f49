// Package controller drives the storefront cart: it owns the cart, mirrors it
// into the page and submits orders.
package controller

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/page"
	"github.com/utafrali/storefront/internal/store"
)

// User-facing messages.
const (
	MsgItemAdded      = "Item added to cart!"
	MsgOrderSubmitted = "Order successfully sent and processed!"
	MsgCartEmpty      = "Cart is Empty"
)

// RedirectDelay is how long a successful checkout waits before leaving the page.
const RedirectDelay = 2 * time.Second

// OrderSubmitter sends an order to the backend.
type OrderSubmitter interface {
	Submit(ctx context.Context, req domain.OrderRequest) error
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// Options tunes a Controller. Zero values select defaults.
type Options struct {
	// RootURL is the storefront root navigated to after checkout. Default "/".
	RootURL   string
	Scheduler Scheduler
	Now       func() time.Time
	Logger    *slog.Logger
}

// Controller is the cart controller of one page. All exported methods are
// safe for concurrent use.
type Controller struct {
	mu     sync.Mutex
	doc    page.Document
	store  *store.CartStore
	orders OrderSubmitter
	cart   *domain.Cart

	rootURL   string
	scheduler Scheduler
	now       func() time.Time
	logger    *slog.Logger

	inflight sync.WaitGroup
}

// New loads the persisted cart, renders it into doc and binds the page's
// event handlers. Handlers are bound exactly once, here.
func New(ctx context.Context, doc page.Document, cartStore *store.CartStore, orders OrderSubmitter, opts Options) *Controller {
	c := &Controller{
		doc:       doc,
		store:     cartStore,
		orders:    orders,
		rootURL:   opts.RootURL,
		scheduler: opts.Scheduler,
		now:       opts.Now,
		logger:    opts.Logger,
	}
	if c.rootURL == "" {
		c.rootURL = "/"
	}
	if c.scheduler == nil {
		c.scheduler = timerScheduler{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	cart, err := cartStore.Load(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to load cart", slog.String("error", err.Error()))
	}
	c.cart = cart

	c.mu.Lock()
	c.renderCartPage()
	c.renderCounter()
	c.mu.Unlock()

	c.wireAddToCartButtons(ctx)
	c.wireFormValidation()
	c.wireCheckout(ctx)
	if back, ok := doc.ElementByID(page.IDBackButton); ok {
		back.On(page.EventClick, c.GoBack)
	}

	return c
}

// Lines returns a copy of the current cart lines.
func (c *Controller) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Snapshot()
}

// TotalQuantity returns the number of units in the cart.
func (c *Controller) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.TotalQuantity()
}

// Add puts quantity units of an item into the cart, persists it, acknowledges
// the user and re-renders. Out-of-stock items are ignored.
func (c *Controller) Add(ctx context.Context, itemID int, title, status, containerQty string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	added, err := c.store.Add(ctx, c.cart, itemID, title, status, containerQty, quantity)
	if !added {
		return
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to persist cart", slog.String("error", err.Error()))
	}
	c.doc.Alert(MsgItemAdded)
	c.renderCounter()
}

// Clear empties the cart and re-renders.
func (c *Controller) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear(ctx)
}

func (c *Controller) clear(ctx context.Context) {
	if err := c.store.Clear(ctx, c.cart); err != nil {
		c.logger.ErrorContext(ctx, "failed to persist cart", slog.String("error", err.Error()))
	}
	c.renderCartPage()
	c.renderCounter()
}

// RenderCounter writes the item count and refreshes dependent controls.
func (c *Controller) RenderCounter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderCounter()
}

// RenderCartPage redraws the cart listing when the page has one.
func (c *Controller) RenderCartPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderCartPage()
}

// ValidateCheckout enables the checkout button iff the cart is non-empty and
// every required checkout input is filled.
func (c *Controller) ValidateCheckout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.validateCheckout()
}

// GoBack returns to the storefront root.
func (c *Controller) GoBack() {
	c.doc.Navigate(c.rootURL)
}

// Wait blocks until in-flight order submissions have completed.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) wireAddToCartButtons(ctx context.Context) {
	for _, btn := range c.doc.ElementsByClass(page.ClassAddToCart) {
		rawID := btn.Attr(page.AttrItemID)
		title := btn.Attr(page.AttrTitle)
		status := btn.Attr(page.AttrItemStatus)

		itemID, err := strconv.Atoi(rawID)
		if err != nil {
			c.logger.WarnContext(ctx, "add-to-cart control has invalid item id", slog.String("item_id", rawID))
			continue
		}

		if status == domain.OutOfStock {
			btn.SetDisabled(true)
			btn.AddClass(page.ClassDisabledButton)
		}

		btn.On(page.EventClick, func() {
			containerQty, quantity := c.readSelectors(rawID)
			c.Add(ctx, itemID, title, status, containerQty, quantity)
		})
	}
}

// readSelectors reads the container size and amount selectors of an item as
// they are at call time.
func (c *Controller) readSelectors(rawID string) (string, int) {
	containerQty := domain.DefaultContainerQty
	if el, ok := c.doc.ElementByID(page.ContainerQtyID(rawID)); ok {
		containerQty = el.Value()
	}
	quantity := domain.DefaultQuantity
	if el, ok := c.doc.ElementByID(page.OrderAmountID(rawID)); ok {
		quantity = domain.ParseQuantity(el.Value())
	}
	return containerQty, quantity
}

func (c *Controller) wireFormValidation() {
	for _, input := range c.doc.RequiredInputs(page.IDCheckoutForm) {
		input.On(page.EventInput, c.ValidateCheckout)
	}
}

func (c *Controller) wireCheckout(ctx context.Context) {
	form, ok := c.doc.ElementByID(page.IDCheckoutForm)
	if !ok {
		return
	}
	form.On(page.EventSubmit, func() {
		req, ok := c.beginSubmit()
		if !ok {
			return
		}
		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			c.finishSubmit(ctx, req)
		}()
	})
}
