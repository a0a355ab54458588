// Package cartlogic holds the merge and total rules every cart holder
// (the client store and the backend) must agree on.
package cartlogic

import (
	"github.com/google/uuid"

	"restaurant-ordering/models"
)

// Total computes Σ price × quantity over the given lines. This is the
// checkout computation; cart.TotalAmount is never trusted, always derived.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.MenuItem.Price * float64(it.Quantity)
	}
	return total
}

// Recompute refreshes the cart's derived total
func Recompute(cart *models.Cart) {
	cart.TotalAmount = Total(cart.Items)
}

// AddItem adds a line to the cart. A line with the same identity key
// (menu item + canonical selections) has its quantity bumped instead of a
// duplicate being appended. Returns the line that was created or merged.
func AddItem(cart *models.Cart, menuItem models.MenuItem, quantity int, selections models.Selections, note string) *models.CartItem {
	line := models.CartItem{
		MenuItem:   menuItem,
		Quantity:   quantity,
		Selections: selections.Clone(),
		Note:       note,
	}
	key := line.IdentityKey()

	for i := range cart.Items {
		if cart.Items[i].IdentityKey() == key {
			cart.Items[i].Quantity += quantity
			Recompute(cart)
			return &cart.Items[i]
		}
	}

	line.ID = uuid.NewString()
	line.CartID = cart.ID
	cart.Items = append(cart.Items, line)
	Recompute(cart)
	return &cart.Items[len(cart.Items)-1]
}

// UpdateQuantity sets the quantity of one line and recomputes the total.
// Returns false when no line has that id.
func UpdateQuantity(cart *models.Cart, itemID string, quantity int) bool {
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			Recompute(cart)
			return true
		}
	}
	return false
}

// RemoveItem deletes one line and recomputes the total. Removing the last
// line leaves an empty cart, it does not delete the cart entity.
func RemoveItem(cart *models.Cart, itemID string) bool {
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			Recompute(cart)
			return true
		}
	}
	return false
}

// SnapshotItems converts cart lines into immutable order items at
// checkout time
func SnapshotItems(orderID string, items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			MenuItemID: it.MenuItem.ID,
			Name:       it.MenuItem.Name,
			Price:      it.MenuItem.Price,
			Quantity:   it.Quantity,
			Selections: it.Selections.Clone(),
			Note:       it.Note,
		})
	}
	return out
}
