package domain

// Stock status and selector defaults used by the storefront page.
const (
	OutOfStock          = "Out of Stock"
	DefaultContainerQty = "Default"
	DefaultQuantity     = 1
)

// CartLine is one (item, container size) pairing with an aggregated quantity.
type CartLine struct {
	ItemID       int    `json:"id"`
	Title        string `json:"title"`
	ContainerQty string `json:"containerQty"`
	Quantity     int    `json:"quantity"`
}

// Cart is the ordered collection of lines a shopper intends to purchase.
// It holds at most one line per (ItemID, ContainerQty).
type Cart struct {
	Lines []CartLine
}

// NewCart returns a cart holding lines, merging any duplicate pairs.
func NewCart(lines []CartLine) *Cart {
	c := &Cart{Lines: make([]CartLine, 0, len(lines))}
	for _, l := range lines {
		c.merge(l)
	}
	return c
}

// Add merges a line into the cart. It returns false and leaves the cart
// untouched when status is OutOfStock.
func (c *Cart) Add(itemID int, title, status, containerQty string, quantity int) bool {
	if status == OutOfStock {
		return false
	}
	if containerQty == "" {
		containerQty = DefaultContainerQty
	}
	c.merge(CartLine{ItemID: itemID, Title: title, ContainerQty: containerQty, Quantity: quantity})
	return true
}

func (c *Cart) merge(line CartLine) {
	if i := c.FindLineIndex(line.ItemID, line.ContainerQty); i >= 0 {
		c.Lines[i].Quantity += line.Quantity
		return
	}
	c.Lines = append(c.Lines, line)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}

// FindLineIndex returns the index of the line for (itemID, containerQty), or -1.
func (c *Cart) FindLineIndex(itemID int, containerQty string) int {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID && c.Lines[i].ContainerQty == containerQty {
			return i
		}
	}
	return -1
}

// TotalQuantity sums quantities across all lines.
func (c *Cart) TotalQuantity() int {
	var total int
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot returns a copy of the lines that callers may keep.
func (c *Cart) Snapshot() []CartLine {
	out := make([]CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}
