package services

import (
	"context"

	"food-order/models"
	"food-order/repositories"
)

// In-memory repository fakes. They copy on read and write so tests observe
// only what the service actually persisted.

type fakeUserRepo struct {
	users  map[int]models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := u
	return &found, nil
}

type fakeOrderRepo struct {
	orders     map[int]models.Order
	nextID     int
	nextItemID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int]models.Order{}, nextID: 1, nextItemID: 1}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = copyOrder(*order)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := copyOrder(o)
	return &found, nil
}

func (r *fakeOrderRepo) FindByItemID(_ context.Context, itemID int) (*models.Order, error) {
	for _, o := range r.orders {
		for _, it := range o.Items {
			if it.ID == itemID {
				found := copyOrder(o)
				return &found, nil
			}
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeOrderRepo) FindAll(_ context.Context, status string) ([]models.Order, error) {
	orders := []models.Order{}
	for id := 1; id < r.nextID; id++ {
		o, ok := r.orders[id]
		if !ok {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		orders = append(orders, copyOrder(o))
	}
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, order *models.Order) error {
	stored, ok := r.orders[order.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	stored.Status = order.Status
	r.orders[order.ID] = stored
	return nil
}

func (r *fakeOrderRepo) AddItem(_ context.Context, order *models.Order, item *models.OrderItem) error {
	stored, ok := r.orders[order.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	item.ID = r.nextItemID
	r.nextItemID++
	stored.Items = append(stored.Items, *item)
	stored.TotalPrice = order.TotalPrice
	r.orders[order.ID] = stored
	return nil
}

func (r *fakeOrderRepo) RemoveItem(_ context.Context, order *models.Order, itemID int) error {
	stored, ok := r.orders[order.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	items := []models.OrderItem{}
	removed := false
	for _, it := range stored.Items {
		if it.ID == itemID {
			removed = true
			continue
		}
		items = append(items, it)
	}
	if !removed {
		return repositories.ErrNotFound
	}
	stored.Items = items
	stored.TotalPrice = order.TotalPrice
	r.orders[order.ID] = stored
	return nil
}

func copyOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
