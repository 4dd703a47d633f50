package db

import (
	"context"

	"github.com/google/uuid"
)

const getOrCreateCart = `
INSERT INTO carts (id, user_id)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id
`

// GetOrCreateCartIfNotExists returns the user's cart ID, creating the cart on
// first use.
func (q *Queries) GetOrCreateCartIfNotExists(ctx context.Context, userID string) (uuid.UUID, error) {
	var cartID uuid.UUID
	err := q.db.QueryRow(ctx, getOrCreateCart, uuid.New(), userID).Scan(&cartID)
	return cartID, err
}

const addCartItem = `
INSERT INTO cart_items (id, cart_id, product_id, quantity)
VALUES ($1, $2, $3, $4)
ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
RETURNING id, cart_id, product_id, quantity, created_at
`

type AddCartItemParams struct {
	CartID    uuid.UUID
	ProductID int64
	Quantity  int64
}

func (q *Queries) AddCartItem(ctx context.Context, arg AddCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, addCartItem, uuid.New(), arg.CartID, arg.ProductID, arg.Quantity)
	var item CartItem
	err := row.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	return item, err
}

const listCartItemsWithDetails = `
SELECT ci.id, ci.product_id, p.name, p.slug, p.seller_id, p.price, ci.quantity, p.in_stock
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at
`

func (q *Queries) ListCartItemsWithDetails(ctx context.Context, cartID uuid.UUID) ([]CartItemDetails, error) {
	rows, err := q.db.Query(ctx, listCartItemsWithDetails, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []CartItemDetails{}
	for rows.Next() {
		var item CartItemDetails
		if err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &item.ProductSlug,
			&item.SellerID, &item.UnitPrice, &item.Quantity, &item.InStock); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const removeCartItem = `
DELETE FROM cart_items
WHERE id = $1 AND cart_id = $2
`

type RemoveCartItemParams struct {
	ID     uuid.UUID
	CartID uuid.UUID
}

func (q *Queries) RemoveCartItem(ctx context.Context, arg RemoveCartItemParams) error {
	_, err := q.db.Exec(ctx, removeCartItem, arg.ID, arg.CartID)
	return err
}

const getCheckoutLines = `
SELECT ci.id, ci.product_id, p.name, p.seller_id, p.price, ci.quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1 AND ci.id = ANY($2)
ORDER BY ci.created_at
`

type GetCheckoutLinesParams struct {
	CartID      uuid.UUID
	CartItemIDs []uuid.UUID
}

// GetCheckoutLines reads the requested cart lines with a price snapshot taken
// at read time. Lines not in CartItemIDs stay in the cart (partial checkout).
func (q *Queries) GetCheckoutLines(ctx context.Context, arg GetCheckoutLinesParams) ([]CheckoutLine, error) {
	rows, err := q.db.Query(ctx, getCheckoutLines, arg.CartID, arg.CartItemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []CheckoutLine{}
	for rows.Next() {
		var line CheckoutLine
		if err := rows.Scan(&line.CartItemID, &line.ProductID, &line.ProductName,
			&line.SellerID, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

const deleteCartItems = `
DELETE FROM cart_items
WHERE cart_id = $1 AND id = ANY($2)
`

type DeleteCartItemsParams struct {
	CartID      uuid.UUID
	CartItemIDs []uuid.UUID
}

func (q *Queries) DeleteCartItems(ctx context.Context, arg DeleteCartItemsParams) error {
	_, err := q.db.Exec(ctx, deleteCartItems, arg.CartID, arg.CartItemIDs)
	return err
}
