package worker

import (
	"context"

	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

/*
This file contains the code that picks up tasks from the Redis queue and processes them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type RedisTaskProcessor struct {
	server *asynq.Server
	store  db.Store
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server: server,
		store:  store,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)
	mux.HandleFunc(TaskReconcileCheckout, processor.ProcessTaskReconcileCheckout)

	return processor.server.Start(mux)
}

// Shutdown stops the asynq server gracefully.
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
