package domain

import "strings"

// Item is a catalog entry shown on the storefront page.
type Item struct {
	ID           int
	TitleName    string
	Description  string
	Image        string
	ItemStatus   string
	Title        string
	QtyAndAmt    string
	ContainerQty string
}

// InStock reports whether the item can be added to a cart.
func (i Item) InStock() bool {
	return i.ItemStatus != OutOfStock
}

// ContainerOptions splits the comma-separated container sizes. Items without
// any get a single DefaultContainerQty option.
func (i Item) ContainerOptions() []string {
	var opts []string
	for _, s := range strings.Split(i.ContainerQty, ",") {
		if s = strings.TrimSpace(s); s != "" {
			opts = append(opts, s)
		}
	}
	if len(opts) == 0 {
		return []string{DefaultContainerQty}
	}
	return opts
}

// AmountOptions splits QtyAndAmt into order amounts, 1 through 10 when unset.
func (i Item) AmountOptions() []string {
	var opts []string
	for _, s := range strings.Split(i.QtyAndAmt, ",") {
		if s = strings.TrimSpace(s); s != "" {
			opts = append(opts, s)
		}
	}
	if len(opts) == 0 {
		return []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	}
	return opts
}
