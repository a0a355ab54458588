package mockstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ordering/models"
)

func TestCreateRestaurantRatingFixesOverall(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	r, err := s.CreateRestaurantRating(ctx, models.RestaurantRating{
		UserID:       "user-demo",
		RestaurantID: "rest-bella-vista",
		OrderID:      "order-1",
		TasteRating:  5,
		ValueRating:  4,
		Comment:      "great crust",
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, r.OverallRating, 1e-9)
	assert.NotEmpty(t, r.ID)
}

func TestCreateRatingLeavesCachedSummaryAlone(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	before, err := s.GetRestaurant(ctx, "rest-bella-vista")
	require.NoError(t, err)

	_, err = s.CreateRestaurantRating(ctx, models.RestaurantRating{
		UserID: "user-demo", RestaurantID: "rest-bella-vista", OrderID: "order-1",
		TasteRating: 1, ValueRating: 1,
	})
	require.NoError(t, err)

	after, err := s.GetRestaurant(ctx, "rest-bella-vista")
	require.NoError(t, err)
	assert.Equal(t, before.Rating, after.Rating)
	assert.Equal(t, before.TotalRatings, after.TotalRatings)
}

func TestRestaurantRatingValidation(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	_, err := s.CreateRestaurantRating(ctx, models.RestaurantRating{
		RestaurantID: "rest-bella-vista", TasteRating: 0, ValueRating: 3,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateRestaurantRating(ctx, models.RestaurantRating{
		RestaurantID: "rest-bella-vista", TasteRating: 3, ValueRating: 6,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateRestaurantRating(ctx, models.RestaurantRating{
		RestaurantID: "no-such", TasteRating: 3, ValueRating: 3,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRestaurantRatingRecomputesOverall(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	r, err := s.CreateRestaurantRating(ctx, models.RestaurantRating{
		UserID: "user-demo", RestaurantID: "rest-bella-vista", OrderID: "order-1",
		TasteRating: 5, ValueRating: 5,
	})
	require.NoError(t, err)

	updated, err := s.UpdateRestaurantRating(ctx, r.ID, 2, 3, "changed my mind")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, updated.OverallRating, 1e-9)
	assert.Equal(t, "changed my mind", updated.Comment)

	require.NoError(t, s.DeleteRestaurantRating(ctx, r.ID))
	assert.ErrorIs(t, s.DeleteRestaurantRating(ctx, r.ID), ErrNotFound)
}

func TestRestaurantRatingsNewestFirst(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	first, err := s.CreateRestaurantRating(ctx, models.RestaurantRating{
		UserID: "user-demo", RestaurantID: "rest-bella-vista", OrderID: "o1",
		TasteRating: 4, ValueRating: 4,
	})
	require.NoError(t, err)
	second, err := s.CreateRestaurantRating(ctx, models.RestaurantRating{
		UserID: "user-demo", RestaurantID: "rest-bella-vista", OrderID: "o2",
		TasteRating: 5, ValueRating: 5,
	})
	require.NoError(t, err)

	list, err := s.RestaurantRatings(ctx, "rest-bella-vista")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestDishAverage(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	for _, score := range []int{5, 4, 5} {
		_, err := s.CreateDishRating(ctx, models.DishRating{
			UserID: "user-demo", DishID: "item-margherita", OrderID: "o1", Rating: score,
		})
		require.NoError(t, err)
	}

	avg, err := s.DishAverage(ctx, "item-margherita")
	require.NoError(t, err)
	assert.InDelta(t, 4.7, avg.Rating, 1e-9)
	assert.Equal(t, 3, avg.Count)
}

func TestDishAverageNoRatings(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	avg, err := s.DishAverage(context.Background(), "item-tiramisu")
	require.NoError(t, err)
	assert.Zero(t, avg.Rating)
	assert.Zero(t, avg.Count)
}

func TestDishRatingLifecycle(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	_, err := s.CreateDishRating(ctx, models.DishRating{DishID: "no-such", Rating: 4})
	assert.ErrorIs(t, err, ErrNotFound)

	r, err := s.CreateDishRating(ctx, models.DishRating{
		UserID: "user-demo", DishID: "item-shoyu-ramen", OrderID: "o1", Rating: 3,
	})
	require.NoError(t, err)

	updated, err := s.UpdateDishRating(ctx, r.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	_, err = s.UpdateDishRating(ctx, r.ID, 9)
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, s.DeleteDishRating(ctx, r.ID))

	avg, err := s.DishAverage(ctx, "item-shoyu-ramen")
	require.NoError(t, err)
	assert.Zero(t, avg.Count)
}
