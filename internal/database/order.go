package database

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"brodverk-backend/internal/apperr"
	"brodverk-backend/internal/models"
)

type OrderQueries struct {
	db *sql.DB
}

func NewOrderQueries(db *sql.DB) *OrderQueries {
	return &OrderQueries{db: db}
}

const orderColumns = `id, reference, customer_name, customer_email, phone, status,
	subtotal, discount_code, discount_amount, total_amount, notes, delivered_at,
	created_at, updated_at`

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID, &order.Reference, &order.CustomerName, &order.CustomerEmail,
		&order.Phone, &order.Status, &order.Subtotal, &order.DiscountCode,
		&order.DiscountAmount, &order.TotalAmount, &order.Notes, &order.DeliveredAt,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.CodeNotFound, "order not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to read order")
	}
	return order, nil
}

func (q *OrderQueries) GetOrderByID(ctx context.Context, id int) (*models.OrderWithItems, error) {
	order, err := scanOrder(q.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	items, err := q.getOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.OrderWithItems{Order: *order, Items: items}, nil
}

func (q *OrderQueries) getOrderItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := q.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to get order items")
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice,
		); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to scan order item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to get order items")
	}
	return items, nil
}

func (q *OrderQueries) ListOrders(ctx context.Context, page, limit int, statusFilter string) (*models.OrderListResponse, error) {
	where := ""
	args := []any{}
	if statusFilter != "" {
		where = "WHERE status = $1"
		args = append(args, statusFilter)
	}

	var total int
	if err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders "+where, args...).Scan(&total); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to count orders")
	}

	args = append(args, limit, (page-1)*limit)
	limitPos := len(args) - 1
	query := `SELECT ` + orderColumns + ` FROM orders ` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to list orders")
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to list orders")
	}

	return &models.OrderListResponse{
		Orders: orders,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

// TransitionOrderStatus moves an order along the baking pipeline inside one
// transaction: guard the transition, stamp delivery time and append the
// status-history row.
func (q *OrderQueries) TransitionOrderStatus(ctx context.Context, id int, to string, changedBy int) (*models.Order, error) {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to start transaction")
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.CodeNotFound, "order not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to lock order")
	}

	if !models.CanTransitionOrderStatus(current, to) {
		return nil, apperr.New(apperr.CodeValidation,
			"cannot move order from "+current+" to "+to)
	}

	var deliveredAt *time.Time
	if to == models.OrderStatusDelivered {
		now := time.Now()
		deliveredAt = &now
	}

	order, err := scanOrder(tx.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $2, delivered_at = COALESCE($3, delivered_at)
		WHERE id = $1
		RETURNING `+orderColumns, id, to, deliveredAt))
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_status_changes (order_id, from_status, to_status, changed_by)
		VALUES ($1, $2, $3, $4)
	`, id, current, to, changedBy)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to record status change")
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to commit status change")
	}
	return order, nil
}

// GetOrderStatusHistory lists an order's status changes, newest first.
func (q *OrderQueries) GetOrderStatusHistory(ctx context.Context, orderID int) ([]models.OrderStatusChange, error) {
	query := `
		SELECT id, order_id, from_status, to_status, COALESCE(changed_by, 0), created_at
		FROM order_status_changes
		WHERE order_id = $1
		ORDER BY created_at DESC
	`
	rows, err := q.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to get status history")
	}
	defer rows.Close()

	changes := []models.OrderStatusChange{}
	for rows.Next() {
		var change models.OrderStatusChange
		if err := rows.Scan(
			&change.ID, &change.OrderID, &change.FromStatus, &change.ToStatus,
			&change.ChangedBy, &change.CreatedAt,
		); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to scan status change")
		}
		changes = append(changes, change)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to get status history")
	}
	return changes, nil
}
