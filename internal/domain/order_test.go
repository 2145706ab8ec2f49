package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/pkg/validator"
)

func TestNewOrderRequest_MapsFormAndLines(t *testing.T) {
	form := filledForm()
	form[FieldCustomerName] = "Ada"
	form[FieldCustomerZip] = "12345"
	form[FieldOrderNotes] = "leave at dock"
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("x", 3600))

	req := NewOrderRequest(form, []CartLine{{ItemID: 1, Title: "Widget", ContainerQty: "Default", Quantity: 3}}, now)

	assert.Equal(t, "Ada", req.Customer.Name)
	assert.Equal(t, "12345", req.Customer.ZipStandard)
	assert.Equal(t, "leave at dock", req.Customer.OrderNotes)
	require.Len(t, req.Items, 1)
	assert.Equal(t, OrderItem{Title: "Widget", Quantity: 3, ContainerQty: "Default"}, req.Items[0])
	assert.Equal(t, "2026-03-04T04:06:07Z", req.OrderDate)
}

func TestFormatOrderedItems(t *testing.T) {
	got := FormatOrderedItems([]OrderItem{{Title: "Widget", Quantity: 3}, {Title: "Gadget", Quantity: 1}})
	assert.Equal(t, "Widget (Qty: 3)\nGadget (Qty: 1)", got)
	assert.Equal(t, "", FormatOrderedItems(nil))
}

func TestNewOrder_UsesFullAddress(t *testing.T) {
	req := OrderRequest{
		Customer: CustomerInfo{Name: "Ada", Email: "ada@example.com", Address: "1 Main", City: "Town", State: "TX", ZipStandard: "75001", OrderNotes: "n"},
		Items:    []OrderItem{{Title: "Widget", Quantity: 2}},
	}
	now := time.Now()

	c := NewCustomer(req, now)
	c.ID = 42
	o := NewOrder(c, req, now)

	assert.Equal(t, int64(42), o.CustomerID)
	assert.Equal(t, "1 Main, Town, TX, 75001", o.Address)
	assert.Equal(t, "Widget (Qty: 2)", o.OrderedItems)
	assert.Equal(t, "n", o.OrderNotes)
}

func TestItem_Options(t *testing.T) {
	it := Item{ContainerQty: "1 gal, 5 gal,", QtyAndAmt: ""}
	assert.Equal(t, []string{"1 gal", "5 gal"}, it.ContainerOptions())
	assert.Len(t, it.AmountOptions(), 10)
	assert.Equal(t, []string{DefaultContainerQty}, Item{}.ContainerOptions())
	assert.False(t, Item{ItemStatus: OutOfStock}.InStock())
}

func TestOrderRequest_EligibleCheckoutPassesValidation(t *testing.T) {
	lines := []CartLine{{ItemID: 1, Title: "Widget", ContainerQty: "Default", Quantity: 1}}

	for _, email := range []string{"value", "a@b", "user@localhost"} {
		form := filledForm()
		form[FieldCustomerEmail] = email
		require.True(t, CheckoutEligible(form, 1))

		assert.NoError(t, validator.Validate(NewOrderRequest(form, lines, time.Now())), email)
	}
}

func TestOrderRequest_BlankNameFailsValidation(t *testing.T) {
	form := filledForm()
	form[FieldCustomerName] = "  "

	err := validator.Validate(NewOrderRequest(form, []CartLine{{ItemID: 1, Title: "Widget", Quantity: 1}}, time.Now()))

	var valErr *validator.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "is required", valErr.Fields()["name"])
}
