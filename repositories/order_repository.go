package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"food-order/models"
)

// OrderRepository persists orders and their line items. Multi-step writes
// run in a single transaction and roll back if any step fails.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindByItemID(ctx context.Context, itemID int) (*models.Order, error)
	FindAll(ctx context.Context, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, order *models.Order) error
	AddItem(ctx context.Context, order *models.Order, item *models.OrderItem) error
	RemoveItem(ctx context.Context, order *models.Order, itemID int) error
}

type pgOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &pgOrderRepository{db: db}
}

func (r *pgOrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (user_id, status, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(
		ctx,
		query,
		order.UserID,
		order.Status,
		order.TotalPrice,
		now,
		now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *pgOrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	query := `
		SELECT id, user_id, status, total_price, created_at, updated_at
		FROM orders WHERE id = $1
	`

	order := &models.Order{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.TotalPrice,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if order.Items, err = r.findItems(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *pgOrderRepository) FindByItemID(ctx context.Context, itemID int) (*models.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.status, o.total_price, o.created_at, o.updated_at
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE i.id = $1
	`

	order := &models.Order{}
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.TotalPrice,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if order.Items, err = r.findItems(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *pgOrderRepository) FindAll(ctx context.Context, status string) ([]models.Order, error) {
	query := `
		SELECT id, user_id, status, total_price, created_at, updated_at
		FROM orders
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.TotalPrice,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func (r *pgOrderRepository) UpdateStatus(ctx context.Context, order *models.Order) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, order.Status, time.Now(), order.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// AddItem inserts the line item and persists the order's recomputed total in
// one transaction.
func (r *pgOrderRepository) AddItem(ctx context.Context, order *models.Order, item *models.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(
		ctx,
		`INSERT INTO order_items (order_id, quantity, flavor, size, unit_price)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		item.OrderID,
		item.Quantity,
		item.Flavor,
		item.Size,
		item.UnitPrice,
	).Scan(&item.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE orders SET total_price = $1, updated_at = $2 WHERE id = $3`,
		order.TotalPrice,
		time.Now(),
		order.ID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// RemoveItem deletes the line item and persists the order's recomputed total
// in one transaction.
func (r *pgOrderRepository) RemoveItem(ctx context.Context, order *models.Order, itemID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(
		ctx,
		`DELETE FROM order_items WHERE id = $1 AND order_id = $2`,
		itemID,
		order.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE orders SET total_price = $1, updated_at = $2 WHERE id = $3`,
		order.TotalPrice,
		time.Now(),
		order.ID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgOrderRepository) findItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, order_id, quantity, flavor, size, unit_price
		 FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.Quantity,
			&item.Flavor,
			&item.Size,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
