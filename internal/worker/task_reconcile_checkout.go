package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PayloadReconcileCheckout records a checkout that stopped after some seller
// groups had committed, so operators can reconcile the remainder.
type PayloadReconcileCheckout struct {
	BuyerID        string
	FailedSellerID string
	CompletedCodes []string
	FailureMessage string
}

func (distributor *RedisTaskDistributor) DistributeTaskReconcileCheckout(
	ctx context.Context,
	payload *PayloadReconcileCheckout,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskReconcileCheckout, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Warn().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Msg("checkout reconciliation task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskReconcileCheckout(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadReconcileCheckout
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	// Stock flags may disagree with counts after an interrupted checkout.
	repaired, err := processor.store.RepairStockFlags(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to repair stock flags during reconciliation")
		return err
	}
	if len(repaired) > 0 {
		log.Info().Ints64("product_ids", repaired).Msg("repaired stale stock flags")
	}

	// Tell the buyer which part of the checkout went through.
	message := fmt.Sprintf(
		"Part of your checkout could not be completed. Orders %s were placed; items from seller %s were not ordered and remain in your cart.",
		strings.Join(payload.CompletedCodes, ", "), payload.FailedSellerID)

	_, err = processor.store.CreateNotification(ctx, db.CreateNotificationParams{
		RecipientID: payload.BuyerID,
		Title:       "Checkout partially completed",
		Message:     message,
		Type:        "checkout",
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to store reconciliation notification")
		return err
	}

	log.Warn().Str("buyerID", payload.BuyerID).Str("failedSellerID", payload.FailedSellerID).
		Strs("completedCodes", payload.CompletedCodes).Str("cause", payload.FailureMessage).
		Msg("checkout partial completion reconciled")

	return nil
}
