package handlers

import (
	"context"

	"github.com/omnistake/vault-adapter-service/internal/services"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

type QueueHandler struct {
	Services *services.Services
}

func NewQueueHandler(services *services.Services) *QueueHandler {
	return &QueueHandler{
		Services: services,
	}
}

// HandleUnprocessedMessage parks a message that exhausted its retries so an
// operator can replay it once the underlying issue is fixed.
func (qh *QueueHandler) HandleUnprocessedMessage(ctx context.Context, messageBody, receipt string) *types.Error {
	return qh.Services.SaveUnprocessableMessages(ctx, messageBody, receipt)
}
