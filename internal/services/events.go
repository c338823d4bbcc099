package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/omnistake/vault-adapter-service/internal/observability/metrics"
	"github.com/omnistake/vault-adapter-service/internal/queue/client"
)

// emitVaultEvent publishes the notification for a committed ledger
// transition. Publishing is best effort: the transition is already durable,
// so a failed publish is logged and counted but never unwinds the operation.
func (s *Services) emitVaultEvent(ctx context.Context, event client.VaultEvent) {
	eventType := event.EventType.String()

	body, err := json.Marshal(event)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("eventType", eventType).
			Str("depositorAddress", event.DepositorAddress).
			Msg("failed to marshal vault event")
		metrics.RecordEventPublished(eventType, metrics.Error)
		return
	}

	if err := s.EventEmitter.SendMessage(ctx, string(body)); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("eventType", eventType).
			Str("depositorAddress", event.DepositorAddress).
			Msg("failed to publish vault event")
		metrics.RecordEventPublished(eventType, metrics.Error)
		return
	}

	metrics.RecordEventPublished(eventType, metrics.Success)
}
