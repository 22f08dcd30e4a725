package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// Product is one catalog entry. Ids are assigned by the catalog store.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Cart maps a string-encoded product id to a quantity. Keys stay strings so a
// stale or garbage entry survives round-trips through the cookie and is simply
// skipped when the cart is resolved against the catalog.
type Cart map[string]int

// Count returns the total number of items across all lines.
func (c Cart) Count() int {
	n := 0
	for _, qty := range c {
		n += qty
	}
	return n
}

// CartLine is one cart entry joined against the live catalog.
type CartLine struct {
	Product  Product
	Qty      int
	Subtotal float64
}

type CartView struct {
	Lines []CartLine
	Total float64
	Count int
}

// OrderItem is a frozen copy of product fields at checkout time. Later catalog
// edits never reach back into a stored order.
type OrderItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type Order struct {
	ID            int64
	Created       string
	CustomerName  string
	CustomerEmail string
	Address       string
	Items         []OrderItem
	Total         float64
}
