package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

// ProcessDeposit delegates a freshly deposited amount to the configured
// operator. The vault calls this after its share accounting completes, a
// rejection here must fail the whole deposit upstream. Delegation is
// immediate and is not tracked in the ledger.
func (s *Services) ProcessDeposit(
	ctx context.Context, depositorAddress string, amount uint64,
) *types.Error {
	unlock := s.locker.lock(depositorAddress)
	defer unlock()

	if amount == 0 {
		log.Ctx(ctx).Warn().Msg("rejecting deposit with zero amount")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount must be positive")
	}

	if clientErr := s.Clients.Gateway.Delegate(ctx, amount); clientErr != nil {
		log.Ctx(ctx).Error().
			Str("depositorAddress", depositorAddress).
			Uint64("amount", amount).
			Err(clientErr).
			Msg("failed to delegate the deposited amount")
		return types.NewErrorWithMsg(
			http.StatusBadGateway, types.DelegationFailed, "failed to delegate the deposited amount",
		)
	}

	s.emitVaultEvent(ctx, client.NewVaultEvent(
		client.AssetsDelegatedEventType, depositorAddress, amount, time.Now().Unix(),
	))
	return nil
}
