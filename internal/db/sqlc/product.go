package db

import (
	"context"
	"errors"
)

const createProduct = `
INSERT INTO products (seller_id, name, slug, description, price, stock_quantity, in_stock)
VALUES ($1, $2, $3, $4, $5, $6, $6 > 0)
RETURNING id, seller_id, name, slug, description, price, stock_quantity, in_stock, created_at
`

type CreateProductParams struct {
	SellerID      string
	Name          string
	Slug          string
	Description   *string
	Price         int64
	StockQuantity int64
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct,
		arg.SellerID, arg.Name, arg.Slug, arg.Description, arg.Price, arg.StockQuantity)
	var p Product
	err := row.Scan(&p.ID, &p.SellerID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.StockQuantity, &p.InStock, &p.CreatedAt)
	return p, err
}

const getProductByID = `
SELECT id, seller_id, name, slug, description, price, stock_quantity, in_stock, created_at
FROM products
WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(ctx, getProductByID, id)
	var p Product
	err := row.Scan(&p.ID, &p.SellerID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.StockQuantity, &p.InStock, &p.CreatedAt)
	return p, err
}

const getProductBySlug = `
SELECT id, seller_id, name, slug, description, price, stock_quantity, in_stock, created_at
FROM products
WHERE slug = $1
`

func (q *Queries) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	row := q.db.QueryRow(ctx, getProductBySlug, slug)
	var p Product
	err := row.Scan(&p.ID, &p.SellerID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.StockQuantity, &p.InStock, &p.CreatedAt)
	return p, err
}

const listProducts = `
SELECT id, seller_id, name, slug, description, price, stock_quantity, in_stock, created_at
FROM products
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

type ListProductsParams struct {
	Limit  int64
	Offset int64
}

func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.SellerID, &p.Name, &p.Slug, &p.Description,
			&p.Price, &p.StockQuantity, &p.InStock, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const applyStockDecrement = `
UPDATE products
SET stock_quantity = stock_quantity - $2,
    in_stock = (stock_quantity - $2) > 0
WHERE id = $1
  AND stock_quantity >= $2
RETURNING id, seller_id, name, slug, description, price, stock_quantity, in_stock, created_at
`

type ApplyStockDecrementParams struct {
	ProductID int64
	Quantity  int64
}

// ApplyStockDecrement decrements stock and recomputes the in_stock flag in a
// single conditional update, so concurrent checkouts cannot leave the flag
// stale. Returns ErrInsufficientStock when the remaining stock cannot cover
// the requested quantity.
func (q *Queries) ApplyStockDecrement(ctx context.Context, arg ApplyStockDecrementParams) (Product, error) {
	row := q.db.QueryRow(ctx, applyStockDecrement, arg.ProductID, arg.Quantity)
	var p Product
	err := row.Scan(&p.ID, &p.SellerID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.StockQuantity, &p.InStock, &p.CreatedAt)
	if errors.Is(err, ErrRecordNotFound) {
		return p, ErrInsufficientStock
	}
	return p, err
}

const repairStockFlags = `
UPDATE products
SET in_stock = (stock_quantity > 0)
WHERE in_stock <> (stock_quantity > 0)
RETURNING id
`

// RepairStockFlags fixes any in_stock flag that disagrees with the stock
// count and returns the IDs of the repaired products.
func (q *Queries) RepairStockFlags(ctx context.Context) ([]int64, error) {
	rows, err := q.db.Query(ctx, repairStockFlags)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
