package services

import (
	"errors"

	"shopfront/internal/domain"
	"shopfront/internal/repos"
)

var ErrCartEmpty = errors.New("cart empty")

type CheckoutService struct {
	Cart   *CartService
	Orders *repos.OrderRepo
}

func NewCheckoutService(cart *CartService, orders *repos.OrderRepo) *CheckoutService {
	return &CheckoutService{Cart: cart, Orders: orders}
}

// Place resolves the cart the same way the cart page does, freezes each line
// into an order item snapshot and persists the order. Products deleted since
// they were added are dropped, not rejected; a cart that resolves to nothing
// is rejected with ErrCartEmpty. Customer fields are free text.
func (s *CheckoutService) Place(cart domain.Cart, name, email, address string) (int64, error) {
	view, err := s.Cart.View(cart)
	if err != nil {
		return 0, err
	}
	if len(view.Lines) == 0 {
		return 0, ErrCartEmpty
	}

	items := make([]domain.OrderItem, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, domain.OrderItem{
			ID:    line.Product.ID,
			Name:  line.Product.Name,
			Qty:   line.Qty,
			Price: line.Product.Price,
		})
	}

	return s.Orders.Insert(domain.Order{
		CustomerName:  name,
		CustomerEmail: email,
		Address:       address,
		Items:         items,
		Total:         view.Total,
	})
}
