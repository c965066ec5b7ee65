package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-order/models"
)

func newCachedOrderService(t *testing.T) (*OrderService, *fakeOrderRepo, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	repo := newFakeOrderRepo()
	return NewOrderService(repo, client), repo, mini
}

func TestList_PopulatesCache(t *testing.T) {
	svc, _, mini := newCachedOrderService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner.ID)
	require.NoError(t, err)

	orders, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.True(t, mini.Exists("orders:all"))
}

func TestList_ServesFromCache(t *testing.T) {
	svc, repo, _ := newCachedOrderService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner.ID)
	require.NoError(t, err)

	first, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A write behind the service's back is invisible until the cache is
	// invalidated or expires.
	require.NoError(t, repo.Create(ctx, &models.Order{
		UserID: stranger.ID,
		Status: models.OrderStatusPending,
	}))

	second, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestMutationsInvalidateCache(t *testing.T) {
	svc, _, mini := newCachedOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, owner.ID)
	require.NoError(t, err)

	_, err = svc.List(ctx, "")
	require.NoError(t, err)
	require.True(t, mini.Exists("orders:all"))

	_, err = svc.Cancel(ctx, order.ID, owner)
	require.NoError(t, err)
	assert.False(t, mini.Exists("orders:all"))

	orders, err := svc.List(ctx, models.OrderStatusCancelled)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusCancelled, orders[0].Status)
}
