package queue

import (
	"context"
	"time"

	"github.com/omnistake/vault-adapter-service/internal/config"
	"github.com/omnistake/vault-adapter-service/internal/observability/metrics"
	"github.com/omnistake/vault-adapter-service/internal/observability/tracing"
	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/queue/handlers"
	"github.com/omnistake/vault-adapter-service/internal/services"
	"github.com/omnistake/vault-adapter-service/internal/types"
	"github.com/rs/zerolog/log"
)

type MessageHandler func(ctx context.Context, messageBody string) *types.Error

type UnprocessableMessageHandler func(ctx context.Context, messageBody, receipt string) *types.Error

type Queues struct {
	UnstakeExecutionQueueClient client.QueueClient
	Handlers                    *handlers.QueueHandler
	processingTimeout           time.Duration
	maxRetryAttempts            int32
}

func New(cfg config.QueueConfig, service *services.Services) *Queues {
	unstakeExecutionQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, client.UnstakeExecutionQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating UnstakeExecutionQueueClient")
	}
	handlers := handlers.NewQueueHandler(service)
	return &Queues{
		UnstakeExecutionQueueClient: unstakeExecutionQueueClient,
		Handlers:                    handlers,
		processingTimeout:           cfg.ProcessingTimeout,
		maxRetryAttempts:            cfg.MsgMaxRetryAttempts,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	// start processing messages from the unstake execution queue
	startQueueMessageProcessing(
		q.UnstakeExecutionQueueClient,
		q.Handlers.UnstakeExecutionHandler, q.Handlers.HandleUnprocessedMessage,
		q.maxRetryAttempts, q.processingTimeout,
	)
	// ...add more queues here
}

// IsConnectionHealthy reports an error if any queue connection is no longer
// usable.
func (q *Queues) IsConnectionHealthy() error {
	return q.UnstakeExecutionQueueClient.Ping()
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	if err := q.UnstakeExecutionQueueClient.Stop(); err != nil {
		log.Error().Err(err).
			Str("queueName", q.UnstakeExecutionQueueClient.GetQueueName()).
			Msg("error while stopping queue")
	}
}

func startQueueMessageProcessing(
	queueClient client.QueueClient,
	handler MessageHandler, unprocessableHandler UnprocessableMessageHandler,
	maxRetryAttempts int32, processingTimeout time.Duration,
) {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		log.Fatal().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
	}
	log.Info().Str("queueName", queueClient.GetQueueName()).Msg("start receiving messages from queue")

	go func() {
		for message := range messagesChan {
			// For each message, create a new context with a deadline or timeout
			ctx, cancel := context.WithTimeout(context.Background(), processingTimeout)
			ctx = attachLoggerContext(ctx, message, queueClient)
			// Attach the tracing info inside the context
			ctx = tracing.AttachTracingIntoContext(ctx)

			err := handler(ctx, message.Body)
			if err != nil {
				log.Ctx(ctx).Error().Err(err).Msg("error while processing message from queue")
				metrics.RecordQueueMessageOutcome(queueClient.GetQueueName(), metrics.Error)
				if message.GetRetryAttempts() >= maxRetryAttempts {
					// The message has exhausted its retries, park it in the
					// database so it can be inspected and replayed manually.
					if saveErr := unprocessableHandler(ctx, message.Body, message.Receipt); saveErr != nil {
						log.Ctx(ctx).Error().Err(saveErr).Msg("error while saving unprocessable message")
						cancel()
						continue
					}
					metrics.RecordUnprocessableMessage()
					if delErr := queueClient.DeleteMessage(message.Receipt); delErr != nil {
						log.Ctx(ctx).Error().Err(delErr).Msg("error while deleting unprocessable message from queue")
					}
					cancel()
					continue
				}
				if requeueErr := queueClient.ReQueueMessage(ctx, message); requeueErr != nil {
					log.Ctx(ctx).Error().Err(requeueErr).Msg("error while requeuing message")
				}
				cancel()
				continue
			}

			delErr := queueClient.DeleteMessage(message.Receipt)
			if delErr != nil {
				log.Ctx(ctx).Error().Err(delErr).Msg("error while deleting message from queue")
			}
			metrics.RecordQueueMessageOutcome(queueClient.GetQueueName(), metrics.Success)
			cancel()
		}
	}()
}

func attachLoggerContext(ctx context.Context, message client.QueueMessage, queueClient client.QueueClient) context.Context {
	logger := log.With().
		Str("receipt", message.Receipt).
		Str("queueName", queueClient.GetQueueName()).
		Logger()
	return logger.WithContext(ctx)
}
