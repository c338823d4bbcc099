package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/omnistake/vault-adapter-service/internal/clients"
	"github.com/omnistake/vault-adapter-service/internal/config"
	"github.com/omnistake/vault-adapter-service/internal/db"
	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

// Service layer contains the business logic and is used to interact with
// the database and other external clients (if any).
type Services struct {
	DbClient     db.DBClient
	Clients      *clients.Clients
	EventEmitter client.QueueClient
	locker       *depositorLocker
}

func New(ctx context.Context, cfg *config.Config, clients *clients.Clients, eventEmitter client.QueueClient) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return &Services{
		DbClient:     dbClient,
		Clients:      clients,
		EventEmitter: eventEmitter,
		locker:       newDepositorLocker(),
	}, nil
}

// DoHealthCheck checks the health of the services by ping the database and
// the event queue connection.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	if err := s.DbClient.Ping(ctx); err != nil {
		return err
	}
	return s.EventEmitter.Ping()
}

func (s *Services) SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) *types.Error {
	err := s.DbClient.SaveUnprocessableMessage(ctx, messageBody, receipt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable message")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable message")
	}
	return nil
}
