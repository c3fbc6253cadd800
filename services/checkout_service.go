package services

import (
	"fmt"

	"github.com/yeremiapane/restaurant-pos/cart"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/store"
)

// CheckoutService turns a cart snapshot into a durable order.
type CheckoutService struct {
	Orders *store.OrderStore
}

func NewCheckoutService(orders *store.OrderStore) *CheckoutService {
	return &CheckoutService{Orders: orders}
}

// Finalize computes the total from the snapshot exactly as the UI displayed
// it (no re-pricing) and persists the order with its lines in one
// transaction. On failure nothing is written and the caller must leave the
// cart untouched so the user can retry.
func (s *CheckoutService) Finalize(lines []cart.Line) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", store.ErrValidation)
	}

	var total float64
	inputs := make([]store.OrderLineInput, 0, len(lines))
	for _, line := range lines {
		total += float64(line.Qty) * line.Price
		inputs = append(inputs, store.OrderLineInput{
			MenuID: line.MenuID,
			Qty:    line.Qty,
			Price:  line.Price,
		})
	}

	return s.Orders.SaveOrder(inputs, total)
}
