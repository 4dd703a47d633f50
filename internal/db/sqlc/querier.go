package db

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	GetProductByID(ctx context.Context, id int64) (Product, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, error)
	ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error)
	ApplyStockDecrement(ctx context.Context, arg ApplyStockDecrementParams) (Product, error)
	RepairStockFlags(ctx context.Context) ([]int64, error)

	GetOrCreateCartIfNotExists(ctx context.Context, userID string) (uuid.UUID, error)
	AddCartItem(ctx context.Context, arg AddCartItemParams) (CartItem, error)
	ListCartItemsWithDetails(ctx context.Context, cartID uuid.UUID) ([]CartItemDetails, error)
	RemoveCartItem(ctx context.Context, arg RemoveCartItemParams) error
	GetCheckoutLines(ctx context.Context, arg GetCheckoutLinesParams) ([]CheckoutLine, error)
	DeleteCartItems(ctx context.Context, arg DeleteCartItemsParams) error

	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID string) ([]Order, error)
	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)

	CreateNotification(ctx context.Context, arg CreateNotificationParams) (Notification, error)
}

var _ Querier = (*Queries)(nil)
