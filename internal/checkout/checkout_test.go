package checkout

import (
	"context"
	"errors"
	"testing"

	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/artisora/artisan-BE/internal/geo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeProduct struct {
	stockQuantity int64
	inStock       bool
}

// fakeStore mimics CreateSellerOrderTx: the group either commits as a whole
// (including stock decrements) or fails without trace.
type fakeStore struct {
	products    map[int64]*fakeProduct
	failSellers map[string]error
	calls       []db.CreateSellerOrderTxParams
	deletedIDs  []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:    map[int64]*fakeProduct{},
		failSellers: map[string]error{},
	}
}

func (s *fakeStore) CreateSellerOrderTx(ctx context.Context, arg db.CreateSellerOrderTxParams) (db.CreateSellerOrderTxResult, error) {
	if err, ok := s.failSellers[arg.SellerID]; ok {
		return db.CreateSellerOrderTxResult{}, err
	}

	for _, item := range arg.Items {
		if p, ok := s.products[item.ProductID]; ok {
			if p.stockQuantity < item.Quantity {
				return db.CreateSellerOrderTxResult{}, db.ErrInsufficientStock
			}
			p.stockQuantity -= item.Quantity
			p.inStock = p.stockQuantity > 0
		}
	}

	s.calls = append(s.calls, arg)
	s.deletedIDs = append(s.deletedIDs, arg.CartItemIDs...)

	orderID, _ := uuid.NewV7()
	return db.CreateSellerOrderTxResult{
		Order: db.Order{
			ID:             orderID,
			Code:           "ORD-" + arg.SellerID,
			BuyerID:        arg.BuyerID,
			SellerID:       arg.SellerID,
			ItemsSubtotal:  arg.ItemsSubtotal,
			DeliveryCharge: arg.DeliveryCharge,
			TotalAmount:    arg.TotalAmount,
			Status:         db.OrderStatusPending,
		},
	}, nil
}

var deliveryTo = geo.Coordinate{Latitude: 12.9716, Longitude: 77.5946}

func TestPlaceOrderTwoSellers(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	lines := []db.CheckoutLine{
		line("seller-a", 1, 100, 2),
		line("seller-b", 2, 50, 1),
	}

	orders, err := service.PlaceOrder(context.Background(), PlaceOrderParams{
		BuyerID:            "buyer-1",
		CartID:             uuid.New(),
		Lines:              lines,
		DeliveryAddress:    "42 Pottery Lane",
		DeliveryCoordinate: deliveryTo,
		DeliveryChargesBySeller: map[string]int64{
			"seller-a": 30,
			"seller-b": 20,
		},
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	require.Equal(t, "seller-a", orders[0].SellerID)
	require.Equal(t, int64(200), orders[0].ItemsSubtotal)
	require.Equal(t, int64(230), orders[0].TotalAmount)

	require.Equal(t, "seller-b", orders[1].SellerID)
	require.Equal(t, int64(50), orders[1].ItemsSubtotal)
	require.Equal(t, int64(70), orders[1].TotalAmount)

	// All ordered cart lines were removed.
	require.ElementsMatch(t,
		[]uuid.UUID{lines[0].CartItemID, lines[1].CartItemID},
		store.deletedIDs)
}

func TestPlaceOrderMissingChargeDefaultsToZero(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	orders, err := service.PlaceOrder(context.Background(), PlaceOrderParams{
		BuyerID:            "buyer-1",
		CartID:             uuid.New(),
		Lines:              []db.CheckoutLine{line("seller-a", 1, 100, 1)},
		DeliveryAddress:    "42 Pottery Lane",
		DeliveryCoordinate: deliveryTo,
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), orders[0].DeliveryCharge)
	require.Equal(t, int64(100), orders[0].TotalAmount)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	_, err := service.PlaceOrder(context.Background(), PlaceOrderParams{
		BuyerID:            "buyer-1",
		DeliveryAddress:    "42 Pottery Lane",
		DeliveryCoordinate: deliveryTo,
	})
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Empty(t, store.calls)
}

func TestPlaceOrderMissingAddress(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	_, err := service.PlaceOrder(context.Background(), PlaceOrderParams{
		BuyerID:            "buyer-1",
		Lines:              []db.CheckoutLine{line("seller-a", 1, 100, 1)},
		DeliveryAddress:    "   ",
		DeliveryCoordinate: deliveryTo,
	})
	require.ErrorIs(t, err, ErrMissingAddress)
	require.Empty(t, store.calls)
}

func TestPlaceOrderInvalidCoordinate(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	_, err := service.PlaceOrder(context.Background(), PlaceOrderParams{
		BuyerID:            "buyer-1",
		Lines:              []db.CheckoutLine{line("seller-a", 1, 100, 1)},
		DeliveryAddress:    "42 Pottery Lane",
		DeliveryCoordinate: geo.Coordinate{Latitude: 120, Longitude: 0},
	})
	require.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	require.Empty(t, store.calls)
}

func TestPlaceOrderLastUnitFlipsOutOfStock(t *testing.T) {
	store := newFakeStore()
	store.products[7] = &fakeProduct{stockQuantity: 1, inStock: true}
	service := NewService(store)

	_, err := service.PlaceOrder(context.Background(), PlaceOrderParams{
		BuyerID:            "buyer-1",
		CartID:             uuid.New(),
		Lines:              []db.CheckoutLine{line("seller-a", 7, 100, 1)},
		DeliveryAddress:    "42 Pottery Lane",
		DeliveryCoordinate: deliveryTo,
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), store.products[7].stockQuantity)
	require.False(t, store.products[7].inStock)
}

func TestPlaceOrderFirstGroupFailureIsClean(t *testing.T) {
	store := newFakeStore()
	store.failSellers["seller-a"] = db.ErrInsufficientStock
	service := NewService(store)

	orders, err := service.PlaceOrder(context.Background(), PlaceOrderParams{
		BuyerID: "buyer-1",
		CartID:  uuid.New(),
		Lines: []db.CheckoutLine{
			line("seller-a", 1, 100, 1),
			line("seller-b", 2, 50, 1),
		},
		DeliveryAddress:    "42 Pottery Lane",
		DeliveryCoordinate: deliveryTo,
	})
	require.ErrorIs(t, err, db.ErrInsufficientStock)

	var partial *PartialCompletionError
	require.False(t, errors.As(err, &partial))
	require.Empty(t, orders)
}

func TestPlaceOrderPartialCompletionSurfaced(t *testing.T) {
	store := newFakeStore()
	store.failSellers["seller-b"] = errors.New("connection reset")
	service := NewService(store)

	orders, err := service.PlaceOrder(context.Background(), PlaceOrderParams{
		BuyerID: "buyer-1",
		CartID:  uuid.New(),
		Lines: []db.CheckoutLine{
			line("seller-a", 1, 100, 1),
			line("seller-b", 2, 50, 1),
		},
		DeliveryAddress:    "42 Pottery Lane",
		DeliveryCoordinate: deliveryTo,
	})

	var partial *PartialCompletionError
	require.ErrorAs(t, err, &partial)
	require.Equal(t, "seller-b", partial.FailedSellerID)
	require.Len(t, partial.CompletedOrders, 1)
	require.Equal(t, "seller-a", partial.CompletedOrders[0].SellerID)

	// The committed orders are also returned so the caller can reconcile.
	require.Len(t, orders, 1)
	require.Contains(t, partial.Error(), "seller-b")
}
