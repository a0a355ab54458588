package services

import (
	"context"
	"errors"
	"fmt"

	"restaurant-ordering/cartlogic"
	"restaurant-ordering/gateway"
	"restaurant-ordering/mockstore"
	"restaurant-ordering/models"
	"restaurant-ordering/resilience"
)

type Orders struct {
	gw     *gateway.Client
	store  *mockstore.Store
	policy *resilience.Policy
}

// CheckoutRequest is what the client submits when placing an order. The
// total is the client-side checkout computation; the backend accepts it
// as-is.
type CheckoutRequest struct {
	UserID       string              `json:"user_id"`
	RestaurantID string              `json:"restaurant_id"`
	Items        []models.CartItem   `json:"items"`
	TotalAmount  float64             `json:"total_amount"`
	DeliveryType models.DeliveryType `json:"delivery_type"`
	Note         string              `json:"note,omitempty"`
}

// Checkout turns the user's current cart into an order. The new order
// always starts with status PENDING and payment PENDING regardless of
// input, and the cart is cleared afterwards.
func (s *Orders) Checkout(ctx context.Context, userID string, deliveryType models.DeliveryType, note string) (models.Order, error) {
	carts := &Carts{gw: s.gw, store: s.store, policy: s.policy}
	cart, err := carts.Get(ctx, userID)
	if err != nil {
		return models.Order{}, fmt.Errorf("load cart for checkout: %w", err)
	}
	if len(cart.Items) == 0 {
		return models.Order{}, fmt.Errorf("cart is empty: %w", ErrValidation)
	}

	req := CheckoutRequest{
		UserID:       userID,
		RestaurantID: cart.RestaurantID,
		Items:        cart.Items,
		TotalAmount:  cartlogic.Total(cart.Items),
		DeliveryType: deliveryType,
		Note:         note,
	}

	order, err := resilience.WithFallback(ctx, s.policy, "orders.checkout",
		func(ctx context.Context) (models.Order, error) {
			var out models.Order
			return out, s.gw.Post(ctx, "/order", req, &out)
		},
		func(ctx context.Context) (models.Order, error) {
			return s.store.CreateOrder(ctx, req.UserID, req.RestaurantID, req.Items, req.TotalAmount, req.DeliveryType, req.Note)
		})
	if err != nil {
		return models.Order{}, err
	}

	if err := carts.Clear(ctx, userID); err != nil && !errors.Is(err, ErrNotFound) {
		s.policy.Log.Warn("cart not cleared after checkout", "user_id", userID, "error", err)
	}
	return order, nil
}

// Ongoing returns the user's not-yet-terminal orders
func (s *Orders) Ongoing(ctx context.Context, userID string) ([]models.Order, error) {
	return resilience.WithFallback(ctx, s.policy, "orders.ongoing",
		func(ctx context.Context) ([]models.Order, error) {
			var out []models.Order
			return out, s.gw.Get(ctx, "/order/ongoing", &out)
		},
		func(ctx context.Context) ([]models.Order, error) {
			return s.store.OngoingOrders(ctx, userID)
		})
}

// History returns the user's finished orders
func (s *Orders) History(ctx context.Context, userID string) ([]models.Order, error) {
	return resilience.WithFallback(ctx, s.policy, "orders.history",
		func(ctx context.Context) ([]models.Order, error) {
			var out []models.Order
			return out, s.gw.Get(ctx, "/order/history", &out)
		},
		func(ctx context.Context) ([]models.Order, error) {
			return s.store.OrderHistory(ctx, userID)
		})
}

// Get returns one order
func (s *Orders) Get(ctx context.Context, id string) (models.Order, error) {
	return resilience.WithFallback(ctx, s.policy, "orders.get",
		func(ctx context.Context) (models.Order, error) {
			var out models.Order
			return out, s.gw.Get(ctx, "/order/"+id, &out)
		},
		func(ctx context.Context) (models.Order, error) {
			return s.store.GetOrder(ctx, id)
		})
}

// Cancel cancels an order still in a cancellable state. Payment status
// is untouched either way.
func (s *Orders) Cancel(ctx context.Context, id string) (models.Order, error) {
	return resilience.WithFallback(ctx, s.policy, "orders.cancel",
		func(ctx context.Context) (models.Order, error) {
			var out models.Order
			return out, s.gw.Delete(ctx, "/order/"+id, &out)
		},
		func(ctx context.Context) (models.Order, error) {
			return s.store.CancelOrder(ctx, id)
		})
}

// UpdateStatus advances the fulfillment axis (employee surface)
func (s *Orders) UpdateStatus(ctx context.Context, id string, to models.OrderStatus) (models.Order, error) {
	return resilience.WithFallback(ctx, s.policy, "orders.update_status",
		func(ctx context.Context) (models.Order, error) {
			var out models.Order
			return out, s.gw.Put(ctx, "/order/"+id+"/status", map[string]models.OrderStatus{"status": to}, &out)
		},
		func(ctx context.Context) (models.Order, error) {
			return s.store.UpdateOrderStatus(ctx, id, to)
		})
}

// UpdatePayment moves the payment axis (admin surface)
func (s *Orders) UpdatePayment(ctx context.Context, id string, to models.PaymentStatus) (models.Order, error) {
	return resilience.WithFallback(ctx, s.policy, "orders.update_payment",
		func(ctx context.Context) (models.Order, error) {
			var out models.Order
			return out, s.gw.Put(ctx, "/order/"+id+"/payment", map[string]models.PaymentStatus{"payment_status": to}, &out)
		},
		func(ctx context.Context) (models.Order, error) {
			return s.store.UpdatePaymentStatus(ctx, id, to)
		})
}

// All returns every order (admin surface)
func (s *Orders) All(ctx context.Context) ([]models.Order, error) {
	return resilience.WithFallback(ctx, s.policy, "orders.all",
		func(ctx context.Context) ([]models.Order, error) {
			var out []models.Order
			return out, s.gw.Get(ctx, "/order/admin/all", &out)
		},
		func(ctx context.Context) ([]models.Order, error) {
			return s.store.AllOrders(ctx)
		})
}
