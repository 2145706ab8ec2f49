package domain

import (
	"fmt"
	"strings"
	"time"
)

// CustomerInfo is the customer block of an order submission. Field widths are
// bounded by the checkout form's maxlength attributes, not re-checked here.
type CustomerInfo struct {
	Name        string `json:"name" validate:"required,notblank"`
	Email       string `json:"email" validate:"required,notblank"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipStandard string `json:"zipstandard"`
	Phone       string `json:"phone"`
	Client      string `json:"client"`
	OrderNotes  string `json:"orderNotes"`
}

// OrderItem is one line of an order submission.
type OrderItem struct {
	Title        string `json:"title" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gte=1"`
	ContainerQty string `json:"containerQty"`
}

// OrderRequest is the body of POST /submit_order.
type OrderRequest struct {
	Customer  CustomerInfo `json:"customer"`
	Items     []OrderItem  `json:"items" validate:"required,min=1,dive"`
	OrderDate string       `json:"orderDate"`
}

// NewOrderRequest builds a submission from checkout form values and cart lines.
func NewOrderRequest(form map[string]string, lines []CartLine, now time.Time) OrderRequest {
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{Title: l.Title, Quantity: l.Quantity, ContainerQty: l.ContainerQty})
	}
	return OrderRequest{
		Customer: CustomerInfo{
			Name:        form[FieldCustomerName],
			Email:       form[FieldCustomerEmail],
			Address:     form[FieldCustomerAddress],
			City:        form[FieldCustomerCity],
			State:       form[FieldCustomerState],
			ZipStandard: form[FieldCustomerZip],
			Phone:       form[FieldCustomerPhone],
			Client:      form[FieldCustomerClient],
			OrderNotes:  form[FieldOrderNotes],
		},
		Items:     items,
		OrderDate: now.UTC().Format(time.RFC3339Nano),
	}
}

// Customer is a stored customer record.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	Address      string
	City         string
	State        string
	ZipStandard  string
	Phone        string
	Client       string
	OrderedItems string
	CreatedAt    time.Time
}

// Order is a stored order record.
type Order struct {
	ID           int64
	CustomerID   int64
	Name         string
	Email        string
	Client       string
	Address      string
	OrderedItems string
	OrderNotes   string
	OrderDate    time.Time
}

// FormatOrderedItems flattens items into "Title (Qty: n)" lines.
func FormatOrderedItems(items []OrderItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s (Qty: %d)", it.Title, it.Quantity)
	}
	return strings.Join(parts, "\n")
}

// FullAddress joins the address parts as "address, city, state, zip".
func (c CustomerInfo) FullAddress() string {
	return strings.Join([]string{c.Address, c.City, c.State, c.ZipStandard}, ", ")
}

// NewCustomer builds the customer record stored for a submission.
func NewCustomer(req OrderRequest, now time.Time) *Customer {
	return &Customer{
		Name:         req.Customer.Name,
		Email:        req.Customer.Email,
		Address:      req.Customer.Address,
		City:         req.Customer.City,
		State:        req.Customer.State,
		ZipStandard:  req.Customer.ZipStandard,
		Phone:        req.Customer.Phone,
		Client:       req.Customer.Client,
		OrderedItems: FormatOrderedItems(req.Items),
		CreatedAt:    now,
	}
}

// NewOrder builds the order record for a stored customer.
func NewOrder(customer *Customer, req OrderRequest, now time.Time) *Order {
	return &Order{
		CustomerID:   customer.ID,
		Name:         customer.Name,
		Email:        customer.Email,
		Client:       customer.Client,
		Address:      req.Customer.FullAddress(),
		OrderedItems: customer.OrderedItems,
		OrderNotes:   req.Customer.OrderNotes,
		OrderDate:    now,
	}
}
