package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/artisora/artisan-BE/internal/checkout"
	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/artisora/artisan-BE/internal/geo"
	"github.com/artisora/artisan-BE/internal/token"
	"github.com/artisora/artisan-BE/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type checkoutOrdersRequest struct {
	CartItemIDs       []uuid.UUID      `json:"cart_item_ids" binding:"required"`
	DeliveryAddress   string           `json:"delivery_address" binding:"required"`
	DeliveryLatitude  float64          `json:"delivery_latitude"`
	DeliveryLongitude float64          `json:"delivery_longitude"`
	DeliveryCharges   map[string]int64 `json:"delivery_charges"`
}

func (server *Server) checkoutOrders(ctx *gin.Context) {
	req := new(checkoutOrdersRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	buyerID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	cartID, err := server.dbStore.GetOrCreateCartIfNotExists(ctx, buyerID)
	if err != nil {
		log.Err(err).Msg("failed to get or create cart")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	lines, err := server.dbStore.GetCheckoutLines(ctx, db.GetCheckoutLinesParams{
		CartID:      cartID,
		CartItemIDs: req.CartItemIDs,
	})
	if err != nil {
		log.Err(err).Msg("failed to load checkout lines")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	orders, err := server.checkoutService.PlaceOrder(ctx, checkout.PlaceOrderParams{
		BuyerID:         buyerID,
		CartID:          cartID,
		Lines:           lines,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryCoordinate: geo.Coordinate{
			Latitude:  req.DeliveryLatitude,
			Longitude: req.DeliveryLongitude,
		},
		DeliveryChargesBySeller: req.DeliveryCharges,
	})
	if err != nil {
		var partialErr *checkout.PartialCompletionError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, checkout.ErrMissingAddress),
			errors.Is(err, geo.ErrInvalidCoordinate):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.As(err, &partialErr):
			server.enqueueCheckoutReconciliation(ctx, buyerID, partialErr)
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":            partialErr.Error(),
				"completed_orders": partialErr.CompletedOrders,
			})
		case errors.Is(err, db.ErrInsufficientStock):
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(err))
		default:
			log.Error().Err(err).Msg("checkout failed")
			ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		}
		return
	}

	server.notifyOrdersPlaced(ctx, buyerID, orders)

	ctx.JSON(http.StatusCreated, orders)
}

// notifyOrdersPlaced tells the buyer and each seller about the new orders.
// Notification delivery is best effort and never fails the checkout.
func (server *Server) notifyOrdersPlaced(ctx *gin.Context, buyerID string, orders []db.Order) {
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Queue(worker.QueueCritical),
	}

	for _, order := range orders {
		err := server.taskDistributor.DistributeTaskSendNotification(ctx.Request.Context(), &worker.PayloadSendNotification{
			RecipientID: buyerID,
			Title:       "Order placed",
			Message:     fmt.Sprintf("Your order %s has been placed successfully.", order.Code),
			Type:        "order",
			ReferenceID: order.Code,
		}, opts...)
		if err != nil {
			log.Err(err).Str("orderCode", order.Code).Msg("failed to enqueue buyer notification")
		}

		err = server.taskDistributor.DistributeTaskSendNotification(ctx.Request.Context(), &worker.PayloadSendNotification{
			RecipientID: order.SellerID,
			Title:       "New order received",
			Message:     fmt.Sprintf("You have received a new order %s.", order.Code),
			Type:        "order",
			ReferenceID: order.Code,
		}, opts...)
		if err != nil {
			log.Err(err).Str("orderCode", order.Code).Msg("failed to enqueue seller notification")
		}
	}
}

func (server *Server) enqueueCheckoutReconciliation(ctx *gin.Context, buyerID string, partialErr *checkout.PartialCompletionError) {
	codes := make([]string, len(partialErr.CompletedOrders))
	for i, order := range partialErr.CompletedOrders {
		codes[i] = order.Code
	}

	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Queue(worker.QueueCritical),
	}

	err := server.taskDistributor.DistributeTaskReconcileCheckout(ctx.Request.Context(), &worker.PayloadReconcileCheckout{
		BuyerID:        buyerID,
		FailedSellerID: partialErr.FailedSellerID,
		CompletedCodes: codes,
		FailureMessage: partialErr.Err.Error(),
	}, opts...)
	if err != nil {
		log.Error().Err(err).Str("buyerID", buyerID).Msg("failed to enqueue checkout reconciliation task")
	}
}

func (server *Server) listOrders(ctx *gin.Context) {
	buyerID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	orders, err := server.dbStore.ListOrdersByBuyer(ctx, buyerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

type orderDetailsResponse struct {
	db.Order
	Items []db.OrderItem `json:"items"`
}

func (server *Server) getOrderDetails(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	order, err := server.dbStore.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("order %s not found", orderID)))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if order.BuyerID != userID && order.SellerID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("order does not belong to the authenticated user")))
		return
	}

	items, err := server.dbStore.ListOrderItems(ctx, order.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list order items")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, orderDetailsResponse{Order: order, Items: items})
}
