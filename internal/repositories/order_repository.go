package repositories

import (
	"database/sql"
	"fmt"

	intconfig "arheb/internal/config"
	"arheb/internal/domain"
	"arheb/internal/domain/models"
)

type OrderRepository struct {
	DB *sql.DB
}

func (r OrderRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const orderColumns = `id, user_id, phone_number, COALESCE(name,''), COALESCE(address_name,''),
	address_long, address_lat, discount, delivery_fee, total_amount, status, payment_type,
	COALESCE(promo_code,''), order_rating, COALESCE(store_id,''), COALESCE(nearby,''),
	COALESCE(notes,''), created_at`

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.PhoneNumber, &o.Name, &o.AddressName,
		&o.AddressLong, &o.AddressLat, &o.Discount, &o.DeliveryFee, &o.TotalAmount,
		&o.Status, &o.PaymentType, &o.PromoCode, &o.OrderRating, &o.StoreID,
		&o.Nearby, &o.Notes, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByID fetches one order without items. This is the lookup the
// tracking gate consumes.
func (r OrderRepository) GetByID(id int64) (*models.Order, error) {
	row := r.db().QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "order"}
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListByIdentity returns every order whose owner matches either legacy
// owner field, newest first.
func (r OrderRepository) ListByIdentity(identity string) ([]*models.Order, error) {
	rows, err := r.db().Query(`SELECT `+orderColumns+` FROM orders
		WHERE user_id = ? OR phone_number = ? ORDER BY created_at DESC`, identity, identity)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r OrderRepository) ListItems(orderID int64) ([]models.OrderItem, error) {
	rows, err := r.db().Query(`SELECT product_id, product_name, price, quantity
		FROM order_items WHERE order_id = ?`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Create inserts the order plus its items in one transaction.
func (r OrderRepository) Create(o *models.Order) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, fmt.Errorf("begin checkout tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`INSERT INTO orders (
			user_id, phone_number, name, address_name, address_long, address_lat,
			discount, delivery_fee, total_amount, status, payment_type, promo_code,
			order_rating, store_id, nearby, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.UserID, o.PhoneNumber, nullIfEmpty(o.Name), nullIfEmpty(o.AddressName),
		o.AddressLong, o.AddressLat, o.Discount, o.DeliveryFee, o.TotalAmount,
		o.Status, o.PaymentType, nullIfEmpty(o.PromoCode), o.OrderRating,
		nullIfEmpty(o.StoreID), nullIfEmpty(o.Nearby), nullIfEmpty(o.Notes),
	)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("order id: %w", err)
	}

	for _, item := range o.Items {
		if _, err := tx.Exec(`INSERT INTO order_items (order_id, product_id, product_name, price, quantity)
			VALUES (?, ?, ?, ?, ?)`,
			orderID, item.ID, item.Name, item.Price, item.Quantity); err != nil {
			return 0, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit checkout tx: %w", err)
	}
	return orderID, nil
}

func (r OrderRepository) UpdateRating(orderID int64, rating int) error {
	_, err := r.db().Exec(`UPDATE orders SET order_rating = ? WHERE id = ?`, rating, orderID)
	if err != nil {
		return fmt.Errorf("update order rating: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
