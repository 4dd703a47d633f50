package worker

import (
	"context"
	"encoding/json"
	"fmt"

	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PayloadSendNotification contains all data of the task that we want to store in Redis.
type PayloadSendNotification struct {
	RecipientID string
	Title       string
	Message     string
	Type        string
	ReferenceID string
}

func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *PayloadSendNotification,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskSendNotification(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSendNotification
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	var referenceID *string
	if payload.ReferenceID != "" {
		referenceID = &payload.ReferenceID
	}

	_, err := processor.store.CreateNotification(ctx, db.CreateNotificationParams{
		RecipientID: payload.RecipientID,
		Title:       payload.Title,
		Message:     payload.Message,
		Type:        payload.Type,
		ReferenceID: referenceID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to store notification")
		return err
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("referenceID", payload.ReferenceID).Msg("task processed")

	return nil
}
