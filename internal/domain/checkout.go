package domain

import (
	"strconv"
	"strings"
)

// Checkout form field IDs, in page order.
const (
	FieldCustomerName    = "customerName"
	FieldCustomerEmail   = "customerEmail"
	FieldCustomerAddress = "customerAddress"
	FieldCustomerCity    = "customerCity"
	FieldCustomerState   = "customerState"
	FieldCustomerZip     = "customerZip"
	FieldCustomerPhone   = "customerPhone"
	FieldCustomerClient  = "customerClient"
	FieldOrderNotes      = "orderNotes"
)

// RequiredFields lists the inputs the checkout form marks as required.
var RequiredFields = []string{
	FieldCustomerName,
	FieldCustomerEmail,
	FieldCustomerAddress,
	FieldCustomerCity,
	FieldCustomerState,
	FieldCustomerZip,
	FieldCustomerPhone,
	FieldCustomerClient,
	FieldOrderNotes,
}

// FormComplete reports whether every value in fields is non-empty after
// trimming. An empty map is complete.
func FormComplete(fields map[string]string) bool {
	for _, v := range fields {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// CheckoutEligible reports whether checkout may proceed: the required
// form values are all filled and the cart holds at least one unit.
func CheckoutEligible(fields map[string]string, totalQuantity int) bool {
	return totalQuantity > 0 && FormComplete(fields)
}

// ParseQuantity reads an order amount selector value. Values that are not a
// positive integer fall back to DefaultQuantity.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultQuantity
	}
	return n
}
