package db

import (
	"context"

	"github.com/google/uuid"
)

const createOrder = `
INSERT INTO orders (id, code, buyer_id, seller_id, items_subtotal, delivery_charge, total_amount,
                    delivery_address, delivery_latitude, delivery_longitude, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, code, buyer_id, seller_id, items_subtotal, delivery_charge, total_amount,
          delivery_address, delivery_latitude, delivery_longitude, status, created_at
`

type CreateOrderParams struct {
	ID                uuid.UUID
	Code              string
	BuyerID           string
	SellerID          string
	ItemsSubtotal     int64
	DeliveryCharge    int64
	TotalAmount       int64
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	Status            OrderStatus
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.ID, arg.Code, arg.BuyerID, arg.SellerID, arg.ItemsSubtotal, arg.DeliveryCharge,
		arg.TotalAmount, arg.DeliveryAddress, arg.DeliveryLatitude, arg.DeliveryLongitude, arg.Status)
	return scanOrder(row)
}

const createOrderItem = `
INSERT INTO order_items (order_id, product_id, name, quantity, price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, order_id, product_id, name, quantity, price
`

type CreateOrderItemParams struct {
	OrderID   uuid.UUID
	ProductID int64
	Name      string
	Quantity  int64
	Price     int64
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem,
		arg.OrderID, arg.ProductID, arg.Name, arg.Quantity, arg.Price)
	var item OrderItem
	err := row.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Quantity, &item.Price)
	return item, err
}

const getOrderByID = `
SELECT id, code, buyer_id, seller_id, items_subtotal, delivery_charge, total_amount,
       delivery_address, delivery_latitude, delivery_longitude, status, created_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderByID, id))
}

const listOrdersByBuyer = `
SELECT id, code, buyer_id, seller_id, items_subtotal, delivery_charge, total_amount,
       delivery_address, delivery_latitude, delivery_longitude, status, created_at
FROM orders
WHERE buyer_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListOrdersByBuyer(ctx context.Context, buyerID string) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByBuyer, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

const listOrderItems = `
SELECT id, order_id, product_id, name, quantity, price
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOrder(row scannable) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.Code, &o.BuyerID, &o.SellerID, &o.ItemsSubtotal,
		&o.DeliveryCharge, &o.TotalAmount, &o.DeliveryAddress,
		&o.DeliveryLatitude, &o.DeliveryLongitude, &o.Status, &o.CreatedAt)
	return o, err
}
