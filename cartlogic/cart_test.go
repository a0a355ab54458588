package cartlogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ordering/models"
)

func pizza() models.MenuItem {
	return models.MenuItem{ID: "item-margherita", RestaurantID: "rest-1", Name: "Pizza Margherita", Price: 10.00}
}

func tiramisu() models.MenuItem {
	return models.MenuItem{ID: "item-tiramisu", RestaurantID: "rest-1", Name: "Tiramisu", Price: 5.00}
}

func TestAddItemMergesSameIdentity(t *testing.T) {
	t.Parallel()

	cart := &models.Cart{ID: "cart-1"}
	sel := models.Selections{"toppings": {"olives", "mushrooms"}}

	AddItem(cart, pizza(), 1, sel, "")
	// Same options in a different order land on the same line.
	AddItem(cart, pizza(), 2, models.Selections{"toppings": {"mushrooms", "olives"}}, "")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.InDelta(t, 30.00, cart.TotalAmount, 1e-9)
}

func TestAddItemDistinctSelectionsStaySeparate(t *testing.T) {
	t.Parallel()

	cart := &models.Cart{ID: "cart-1"}
	AddItem(cart, pizza(), 1, models.Selections{"size": {"regular"}}, "")
	AddItem(cart, pizza(), 1, models.Selections{"size": {"large"}}, "")

	require.Len(t, cart.Items, 2)
	assert.NotEqual(t, cart.Items[0].ID, cart.Items[1].ID)
}

func TestAddItemSnapshotsMenuItem(t *testing.T) {
	t.Parallel()

	cart := &models.Cart{ID: "cart-1"}
	item := pizza()
	AddItem(cart, item, 1, nil, "")

	// Repricing the menu later must not reprice the open cart.
	item.Price = 99.00
	Recompute(cart)
	assert.InDelta(t, 10.00, cart.TotalAmount, 1e-9)
}

func TestTotal(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{
		{MenuItem: pizza(), Quantity: 2},
		{MenuItem: tiramisu(), Quantity: 1},
	}
	assert.InDelta(t, 25.00, Total(items), 1e-9)
	assert.Zero(t, Total(nil))
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	cart := &models.Cart{ID: "cart-1"}
	line := AddItem(cart, pizza(), 1, nil, "")

	require.True(t, UpdateQuantity(cart, line.ID, 4))
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.InDelta(t, 40.00, cart.TotalAmount, 1e-9)

	assert.False(t, UpdateQuantity(cart, "missing", 1))
}

func TestRemoveItemLeavesEmptyCart(t *testing.T) {
	t.Parallel()

	cart := &models.Cart{ID: "cart-1"}
	line := AddItem(cart, pizza(), 2, nil, "")

	require.True(t, RemoveItem(cart, line.ID))
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount)

	assert.False(t, RemoveItem(cart, line.ID))
}

func TestSnapshotItems(t *testing.T) {
	t.Parallel()

	sel := models.Selections{"size": {"large"}}
	items := []models.CartItem{
		{ID: "line-1", MenuItem: pizza(), Quantity: 2, Selections: sel, Note: "well done"},
	}
	out := SnapshotItems("order-1", items)

	require.Len(t, out, 1)
	assert.Equal(t, "order-1", out[0].OrderID)
	assert.Equal(t, "item-margherita", out[0].MenuItemID)
	assert.Equal(t, "Pizza Margherita", out[0].Name)
	assert.InDelta(t, 10.00, out[0].Price, 1e-9)
	assert.Equal(t, 2, out[0].Quantity)
	assert.Equal(t, "well done", out[0].Note)
	assert.NotEmpty(t, out[0].ID)

	// The snapshot owns its selections.
	out[0].Selections["size"][0] = "regular"
	assert.Equal(t, "large", sel["size"][0])
}
