package mockstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"restaurant-ordering/cartlogic"
	"restaurant-ordering/models"
	"restaurant-ordering/statemachine"
)

// CreateOrder places an order from the given cart lines. Status and
// payment status always start PENDING no matter what the caller asked
// for. The total is taken from the caller's checkout computation, same
// as the real backend accepts it.
func (s *Store) CreateOrder(ctx context.Context, userID, restaurantID string, items []models.CartItem, total float64, deliveryType models.DeliveryType, note string) (models.Order, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("order needs at least one item: %w", ErrValidation)
	}
	if deliveryType != models.DeliveryPickup && deliveryType != models.DeliveryDineIn {
		return models.Order{}, fmt.Errorf("unknown delivery type %q: %w", deliveryType, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		RestaurantID:  restaurantID,
		TotalAmount:   total,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		DeliveryType:  deliveryType,
		Note:          note,
		CreatedAt:     time.Now(),
	}
	order.UpdatedAt = order.CreatedAt
	order.Items = cartlogic.SnapshotItems(order.ID, items)
	s.orders = append(s.orders, order)
	return order.Clone(), nil
}

// OngoingOrders returns the user's not-yet-terminal orders, newest first
func (s *Store) OngoingOrders(ctx context.Context, userID string) ([]models.Order, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordersFor(userID, false), nil
}

// OrderHistory returns the user's completed and cancelled orders, newest
// first
func (s *Store) OrderHistory(ctx context.Context, userID string) ([]models.Order, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordersFor(userID, true), nil
}

// GetOrder returns one order by id
func (s *Store) GetOrder(ctx context.Context, id string) (models.Order, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Order{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.findOrder(id)
	if order == nil {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order.Clone(), nil
}

// AllOrders returns every order, newest first (admin view)
func (s *Store) AllOrders(ctx context.Context) ([]models.Order, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i].Clone())
	}
	return out, nil
}

// CancelOrder cancels an order still in a cancellable state. The payment
// record is left untouched; the two axes never move each other.
func (s *Store) CancelOrder(ctx context.Context, id string) (models.Order, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Order{}, err
	}

	unlock := s.lockKey("order", id)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(id)
	if order == nil {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err := statemachine.CanCancel(order.Status); err != nil {
		return models.Order{}, fmt.Errorf("order %s is not cancellable: %w", id, err)
	}
	order.Status = models.StatusCancelled
	order.UpdatedAt = time.Now()
	s.pushMessage(order.UserID, "Order cancelled",
		fmt.Sprintf("Your order of %s has been cancelled.", order.CreatedAt.Format("Jan 2 15:04")),
		models.MessageWarning)
	return order.Clone(), nil
}

// UpdateOrderStatus advances the fulfillment state machine and notifies
// the owner's inbox
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, to models.OrderStatus) (models.Order, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Order{}, err
	}

	unlock := s.lockKey("order", id)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(id)
	if order == nil {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err := statemachine.CanTransition(order.Status, to); err != nil {
		return models.Order{}, err
	}
	order.Status = to
	order.UpdatedAt = time.Now()
	s.pushMessage(order.UserID, "Order update",
		fmt.Sprintf("Your order is now %s.", to), models.MessageInfo)
	return order.Clone(), nil
}

// UpdatePaymentStatus moves the payment axis. Fulfillment status is
// never touched here.
func (s *Store) UpdatePaymentStatus(ctx context.Context, id string, to models.PaymentStatus) (models.Order, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Order{}, err
	}

	unlock := s.lockKey("order", id)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(id)
	if order == nil {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err := statemachine.CanTransitionPayment(order.PaymentStatus, to); err != nil {
		return models.Order{}, err
	}
	order.PaymentStatus = to
	order.UpdatedAt = time.Now()
	return order.Clone(), nil
}

func (s *Store) findOrder(id string) *models.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *Store) ordersFor(userID string, terminal bool) []models.Order {
	out := []models.Order{}
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if o.UserID != userID {
			continue
		}
		if o.Status.IsTerminal() == terminal {
			out = append(out, o.Clone())
		}
	}
	return out
}
