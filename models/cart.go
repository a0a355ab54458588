package models

import "time"

// CartItem is one line of a cart. MenuItem is a snapshot taken when the
// line was added, so later menu edits do not reprice an open cart.
type CartItem struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	CartID     string     `json:"cart_id" gorm:"not null;index"`
	MenuItem   MenuItem   `json:"menu_item" gorm:"serializer:json"`
	Quantity   int        `json:"quantity" gorm:"not null"`
	Selections Selections `json:"selections,omitempty" gorm:"type:text"`
	Note       string     `json:"note"`
}

// IdentityKey decides whether two lines are "the same line": same menu
// item with the same canonical selections merge into one entry.
func (ci *CartItem) IdentityKey() string {
	return ci.MenuItem.ID + "|" + ci.Selections.CanonicalKey()
}

// Clone returns a deep copy
func (ci CartItem) Clone() CartItem {
	out := ci
	out.Selections = ci.Selections.Clone()
	return out
}

type Cart struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"not null;uniqueIndex"`
	RestaurantID string     `json:"restaurant_id" gorm:"not null"`
	Items        []CartItem `json:"items" gorm:"foreignKey:CartID"`
	// TotalAmount is derived, never authoritative. It is recomputed
	// after every mutation and again before a cart leaves the store.
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy
func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]CartItem, len(c.Items))
	for i, it := range c.Items {
		out.Items[i] = it.Clone()
	}
	return out
}
