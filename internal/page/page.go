// Package page abstracts the storefront document the cart controller drives.
package page

// Element IDs, classes and attributes of the storefront pages.
const (
	IDCartCounter    = "cart-counter"
	IDGoToCartButton = "go-to-cart-button"
	IDCheckoutButton = "checkout-btn"
	IDCartItems      = "cart-items"
	IDCheckoutForm   = "checkout-form"
	IDBackButton     = "back-button"

	ClassAddToCart      = "add-to-cart"
	ClassDisabledButton = "disabled-button"

	AttrItemID     = "data-itemid"
	AttrTitle      = "data-title"
	AttrItemStatus = "data-itemstatus"

	EventClick  = "click"
	EventInput  = "input"
	EventSubmit = "submit"
)

// ContainerQtyID is the container size selector of an item.
func ContainerQtyID(itemID string) string { return "containerQty-" + itemID }

// OrderAmountID is the order amount selector of an item.
func OrderAmountID(itemID string) string { return "orderAmount-" + itemID }

// Element is a node of the document.
type Element interface {
	ID() string
	Value() string
	Attr(name string) string
	SetText(text string)
	SetHTML(html string)
	Disabled() bool
	SetDisabled(disabled bool)
	AddClass(class string)

	// On registers fn for event. Submit handlers suppress the default
	// form submission.
	On(event string, fn func())
}

// Document is the page the controller reads from and renders into.
type Document interface {
	// ElementByID returns the element with id, or false if the page has none.
	ElementByID(id string) (Element, bool)

	// ElementsByClass returns every element carrying class, in document order.
	ElementsByClass(class string) []Element

	// RequiredInputs returns the inputs marked required inside the form.
	RequiredInputs(formID string) []Element

	// Alert shows a blocking acknowledgment to the user.
	Alert(message string)

	// Navigate sends the page to url.
	Navigate(url string)
}
