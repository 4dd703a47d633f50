package db

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Product struct {
	ID            int64     `json:"id"`
	SellerID      string    `json:"seller_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description"`
	Price         int64     `json:"price"`
	StockQuantity int64     `json:"stock_quantity"`
	InStock       bool      `json:"in_stock"`
	CreatedAt     time.Time `json:"created_at"`
}

type Cart struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"user_id"`
}

type CartItem struct {
	ID        uuid.UUID `json:"id"`
	CartID    uuid.UUID `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemDetails is a cart line joined with its product.
type CartItemDetails struct {
	ID          uuid.UUID `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSlug string    `json:"product_slug"`
	SellerID    string    `json:"seller_id"`
	UnitPrice   int64     `json:"unit_price"`
	Quantity    int64     `json:"quantity"`
	InStock     bool      `json:"in_stock"`
}

// CheckoutLine is the snapshot of a cart line read at checkout time.
type CheckoutLine struct {
	CartItemID  uuid.UUID `json:"cart_item_id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	SellerID    string    `json:"seller_id"`
	UnitPrice   int64     `json:"unit_price"`
	Quantity    int64     `json:"quantity"`
}

type Order struct {
	ID                uuid.UUID   `json:"id"`
	Code              string      `json:"code"`
	BuyerID           string      `json:"buyer_id"`
	SellerID          string      `json:"seller_id"`
	ItemsSubtotal     int64       `json:"items_subtotal"`
	DeliveryCharge    int64       `json:"delivery_charge"`
	TotalAmount       int64       `json:"total_amount"`
	DeliveryAddress   string      `json:"delivery_address"`
	DeliveryLatitude  float64     `json:"delivery_latitude"`
	DeliveryLongitude float64     `json:"delivery_longitude"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        int64     `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	Price     int64     `json:"price"` // snapshotted at purchase time
}

type Notification struct {
	ID          int64     `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	ReferenceID *string   `json:"reference_id"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
