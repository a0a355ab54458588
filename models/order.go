package models

import "time"

// OrderStatus represents fulfillment progress of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// PaymentStatus is the money axis. It is independent of OrderStatus:
// cancelling an order never touches its payment record and vice versa.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// DeliveryType covers the two ways this product serves orders
type DeliveryType string

const (
	DeliveryPickup DeliveryType = "pickup"
	DeliveryDineIn DeliveryType = "dine_in"
)

type Order struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	UserID        string        `json:"user_id" gorm:"not null;index"`
	RestaurantID  string        `json:"restaurant_id" gorm:"not null;index"`
	Items         []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `json:"status" gorm:"not null;default:'PENDING'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'PENDING'"`
	DeliveryType  DeliveryType  `json:"delivery_type" gorm:"not null;default:'pickup'"`
	Note          string        `json:"note"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a cart line at checkout time
type OrderItem struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	OrderID    string     `json:"order_id" gorm:"not null;index"`
	MenuItemID string     `json:"menu_item_id" gorm:"not null"`
	Name       string     `json:"name"`                  // snapshot name
	Price      float64    `json:"price" gorm:"not null"` // snapshot price at time of order
	Quantity   int        `json:"quantity" gorm:"not null"`
	Selections Selections `json:"selections,omitempty" gorm:"type:text"`
	Note       string     `json:"note"`
}

// Clone returns a deep copy
func (o Order) Clone() Order {
	out := o
	out.Items = make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		out.Items[i] = it
		out.Items[i].Selections = it.Selections.Clone()
	}
	return out
}

// IsTerminal reports whether no further status transition is possible
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
