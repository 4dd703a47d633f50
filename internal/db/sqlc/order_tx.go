package db

import (
	"context"
	"fmt"

	"github.com/artisora/artisan-BE/internal/util"
	"github.com/google/uuid"
)

type SellerOrderItemParams struct {
	ProductID int64
	Name      string
	Quantity  int64
	UnitPrice int64
}

type CreateSellerOrderTxParams struct {
	BuyerID           string
	SellerID          string
	ItemsSubtotal     int64
	DeliveryCharge    int64
	TotalAmount       int64
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	Items             []SellerOrderItemParams
	CartID            uuid.UUID
	CartItemIDs       []uuid.UUID
}

type CreateSellerOrderTxResult struct {
	Order      Order       `json:"order"`
	OrderItems []OrderItem `json:"order_items"`
}

// CreateSellerOrderTx creates one order for one seller group of a checkout.
// The order row, its items, the conditional stock decrements, and the removal
// of the ordered cart lines commit or roll back together, so a failed group
// leaves no trace.
func (store *SQLStore) CreateSellerOrderTx(ctx context.Context, arg CreateSellerOrderTxParams) (CreateSellerOrderTxResult, error) {
	var result CreateSellerOrderTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		orderID, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate order ID: %w", err)
		}

		// 1. Create the order.
		order, err := qTx.CreateOrder(ctx, CreateOrderParams{
			ID:                orderID,
			Code:              util.GenerateOrderCode(),
			BuyerID:           arg.BuyerID,
			SellerID:          arg.SellerID,
			ItemsSubtotal:     arg.ItemsSubtotal,
			DeliveryCharge:    arg.DeliveryCharge,
			TotalAmount:       arg.TotalAmount,
			DeliveryAddress:   arg.DeliveryAddress,
			DeliveryLatitude:  arg.DeliveryLatitude,
			DeliveryLongitude: arg.DeliveryLongitude,
			Status:            OrderStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		result.Order = order

		// 2. Create the order items with prices snapshotted at checkout.
		for _, item := range arg.Items {
			orderItem, err := qTx.CreateOrderItem(ctx, CreateOrderItemParams{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     item.UnitPrice,
			})
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			result.OrderItems = append(result.OrderItems, orderItem)

			// 3. Decrement stock. The in_stock flag is recomputed inside the
			// same update, so the flag can never go stale under concurrency.
			if _, err = qTx.ApplyStockDecrement(ctx, ApplyStockDecrementParams{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}); err != nil {
				return fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, err)
			}
		}

		// 4. Remove only the ordered cart lines; the rest of the cart survives.
		if err = qTx.DeleteCartItems(ctx, DeleteCartItemsParams{
			CartID:      arg.CartID,
			CartItemIDs: arg.CartItemIDs,
		}); err != nil {
			return fmt.Errorf("failed to clear ordered cart lines: %w", err)
		}

		return nil
	})

	return result, err
}
