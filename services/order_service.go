package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"food-order/models"
	"food-order/repositories"
)

const listCacheTTL = 60 * time.Second

// OrderService drives the order lifecycle: PENDING on creation, CANCELLED
// via an authorized cancel. cache may be nil; every mutation invalidates it.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cache     *redis.Client
}

func NewOrderService(orderRepo repositories.OrderRepository, cache *redis.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// Create inserts a new PENDING order with price 0. The owner id is not
// checked against existing users.
func (s *OrderService) Create(ctx context.Context, ownerID int) (*models.Order, error) {
	order := &models.Order{
		UserID:     ownerID,
		Status:     models.OrderStatusPending,
		TotalPrice: 0,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return order, nil
}

// List returns all orders, optionally filtered by exact status match.
func (s *OrderService) List(ctx context.Context, status string) ([]models.Order, error) {
	key := listCacheKey(status)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var orders []models.Order
			if err := json.Unmarshal([]byte(cached), &orders); err == nil {
				return orders, nil
			}
		}
	}

	orders, err := s.orderRepo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(orders); err == nil {
			s.cache.Set(ctx, key, payload, listCacheTTL)
		}
	}

	return orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, id int, actor *models.User) (*models.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanAccessOrder(actor, order) {
		return nil, ErrForbidden
	}

	return order, nil
}

// Cancel loads the order, checks the actor may touch it, and persists the
// CANCELLED status. Cancelling an already-cancelled order is not rejected.
func (s *OrderService) Cancel(ctx context.Context, id int, actor *models.User) (*models.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanAccessOrder(actor, order) {
		return nil, ErrForbidden
	}

	order.Status = models.OrderStatusCancelled
	if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.invalidateListCache(ctx)
	return order, nil
}

// AddItem attaches a line item to the order and persists the recomputed
// total atomically with the item write.
func (s *OrderService) AddItem(ctx context.Context, orderID int, actor *models.User, item models.OrderItem) (*models.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !CanAccessOrder(actor, order) {
		return nil, ErrForbidden
	}

	item.OrderID = order.ID
	order.Items = append(order.Items, item)
	s.RecomputePrice(order)

	if err := s.orderRepo.AddItem(ctx, order, &order.Items[len(order.Items)-1]); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return order, nil
}

// RemoveItem detaches a line item, identified by its own id, from the order
// that owns it.
func (s *OrderService) RemoveItem(ctx context.Context, itemID int, actor *models.User) (*models.Order, error) {
	order, err := s.orderRepo.FindByItemID(ctx, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !CanAccessOrder(actor, order) {
		return nil, ErrForbidden
	}

	items := order.Items[:0]
	for _, it := range order.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	order.Items = items
	s.RecomputePrice(order)

	if err := s.orderRepo.RemoveItem(ctx, order, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.invalidateListCache(ctx)
	return order, nil
}

// RecomputePrice sets the order total to the sum of unit price times
// quantity over its items. An order with no items has price 0.
func (s *OrderService) RecomputePrice(order *models.Order) {
	total := 0.0
	for _, item := range order.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	order.TotalPrice = total
}

func (s *OrderService) findOrder(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func listCacheKey(status string) string {
	if status == "" {
		return "orders:all"
	}
	return "orders:status:" + status
}

func (s *OrderService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx,
		listCacheKey(""),
		listCacheKey(models.OrderStatusPending),
		listCacheKey(models.OrderStatusCancelled),
		listCacheKey(models.OrderStatusFinalized),
	)
}
