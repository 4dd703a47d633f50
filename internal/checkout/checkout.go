// Package checkout turns a validated cart into per-seller orders. A checkout
// cart may span multiple sellers; one order is created for each seller group,
// each inside its own database transaction.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/artisora/artisan-BE/internal/geo"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart      = errors.New("empty cart")
	ErrMissingAddress = errors.New("delivery address is required")
)

// Store is the slice of the persistence layer checkout needs.
type Store interface {
	CreateSellerOrderTx(ctx context.Context, arg db.CreateSellerOrderTxParams) (db.CreateSellerOrderTxResult, error)
}

// PlaceOrderParams describes one checkout attempt. Delivery charges are
// quoted per seller ahead of checkout (see internal/delivery); a seller
// missing from the map is charged 0.
type PlaceOrderParams struct {
	BuyerID                 string
	CartID                  uuid.UUID
	Lines                   []db.CheckoutLine
	DeliveryAddress         string
	DeliveryCoordinate      geo.Coordinate
	DeliveryChargesBySeller map[string]int64
}

// PartialCompletionError reports a checkout that failed after at least one
// seller group had already committed. The committed orders are real and must
// be reconciled, not rolled back silently.
type PartialCompletionError struct {
	FailedSellerID  string
	CompletedOrders []db.Order
	Err             error
}

func (e *PartialCompletionError) Error() string {
	codes := make([]string, len(e.CompletedOrders))
	for i, order := range e.CompletedOrders {
		codes[i] = order.Code
	}
	return fmt.Sprintf("checkout partially completed: order transaction for seller %s failed after orders [%s] were committed: %v",
		e.FailedSellerID, strings.Join(codes, ", "), e.Err)
}

func (e *PartialCompletionError) Unwrap() error {
	return e.Err
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// PlaceOrder partitions the cart lines by seller and creates one order per
// seller group, in order of each seller's first appearance in the cart.
//
// Each group commits in its own transaction (order row, items, stock
// decrements, cart-line deletion). A failure on the first group is a clean
// failure; a failure after any group has committed is surfaced as a
// *PartialCompletionError carrying the committed orders.
func (s *Service) PlaceOrder(ctx context.Context, arg PlaceOrderParams) ([]db.Order, error) {
	if len(arg.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(arg.DeliveryAddress) == "" {
		return nil, ErrMissingAddress
	}
	if err := arg.DeliveryCoordinate.Validate(); err != nil {
		return nil, err
	}

	groups := PartitionBySeller(arg.Lines)

	orders := make([]db.Order, 0, len(groups))
	for _, group := range groups {
		deliveryCharge := arg.DeliveryChargesBySeller[group.SellerID]

		items := make([]db.SellerOrderItemParams, len(group.Lines))
		cartItemIDs := make([]uuid.UUID, len(group.Lines))
		for i, line := range group.Lines {
			items[i] = db.SellerOrderItemParams{
				ProductID: line.ProductID,
				Name:      line.ProductName,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
			cartItemIDs[i] = line.CartItemID
		}

		result, err := s.store.CreateSellerOrderTx(ctx, db.CreateSellerOrderTxParams{
			BuyerID:           arg.BuyerID,
			SellerID:          group.SellerID,
			ItemsSubtotal:     group.Subtotal,
			DeliveryCharge:    deliveryCharge,
			TotalAmount:       group.Subtotal + deliveryCharge,
			DeliveryAddress:   arg.DeliveryAddress,
			DeliveryLatitude:  arg.DeliveryCoordinate.Latitude,
			DeliveryLongitude: arg.DeliveryCoordinate.Longitude,
			Items:             items,
			CartID:            arg.CartID,
			CartItemIDs:       cartItemIDs,
		})
		if err != nil {
			if len(orders) > 0 {
				return orders, &PartialCompletionError{
					FailedSellerID:  group.SellerID,
					CompletedOrders: orders,
					Err:             err,
				}
			}
			return nil, fmt.Errorf("failed to create order for seller %s: %w", group.SellerID, err)
		}

		orders = append(orders, result.Order)
	}

	return orders, nil
}
