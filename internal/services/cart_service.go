package services

import (
	"strconv"

	"shopfront/internal/catalog"
	"shopfront/internal/domain"
)

// CartService mutates and resolves carts. It is persistence-agnostic: the
// handler layer loads the cart from a session.Store, hands it here, and saves
// it back.
type CartService struct {
	Catalog catalog.Store
}

func NewCartService(cat catalog.Store) *CartService { return &CartService{Catalog: cat} }

// Add increments the quantity for productID by one after checking the product
// still exists. Returns the new total item count; the cart is untouched on
// error.
func (s *CartService) Add(cart domain.Cart, productID int) (int, error) {
	if _, err := s.Catalog.Get(productID); err != nil {
		return cart.Count(), err
	}
	key := strconv.Itoa(productID)
	cart[key]++
	return cart.Count(), nil
}

// SetQuantities replaces the listed entries: qty <= 0 deletes the line, qty > 0
// sets it exactly. Entries are taken as-is; unknown ids fall out when the cart
// is resolved.
func (s *CartService) SetQuantities(cart domain.Cart, changes map[string]int) int {
	for key, qty := range changes {
		if qty <= 0 {
			delete(cart, key)
		} else {
			cart[key] = qty
		}
	}
	return cart.Count()
}

// View joins the cart against the current catalog. Entries whose product no
// longer exists (or whose key is not a product id) are silently dropped.
func (s *CartService) View(cart domain.Cart) (domain.CartView, error) {
	products, err := s.Catalog.Load()
	if err != nil {
		return domain.CartView{}, err
	}
	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := domain.CartView{Lines: []domain.CartLine{}}
	for key, qty := range cart {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		p, ok := byID[id]
		if !ok {
			continue
		}
		sub := p.Price * float64(qty)
		view.Lines = append(view.Lines, domain.CartLine{Product: p, Qty: qty, Subtotal: sub})
		view.Total += sub
		view.Count += qty
	}
	return view, nil
}
