package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/omnistake/vault-adapter-service/internal/db"
	"github.com/omnistake/vault-adapter-service/internal/db/model"
	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/types"
	"github.com/omnistake/vault-adapter-service/internal/utils"
)

// ScheduleUnstake verifies the depositor can unstake the requested amount and
// schedules it with the delegation gateway before recording it in the ledger.
// Calling it again while a request is still scheduled replaces the previous
// request rather than adding to it.
func (s *Services) ScheduleUnstake(
	ctx context.Context, depositorAddress string, amount uint64,
) *types.Error {
	unlock := s.locker.lock(depositorAddress)
	defer unlock()

	if amount == 0 {
		log.Ctx(ctx).Warn().Msg("rejecting unstake request with zero amount")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount must be positive")
	}

	// 1. cap the request by the depositor's claimable balance in the vault
	maxWithdraw, clientErr := s.Clients.Vault.MaxWithdraw(ctx, depositorAddress)
	if clientErr != nil {
		return clientErr
	}
	if amount > maxWithdraw {
		log.Ctx(ctx).Warn().
			Str("depositorAddress", depositorAddress).
			Uint64("amount", amount).
			Uint64("maxWithdraw", maxWithdraw).
			Msg("unstake amount exceeds the depositor's claimable balance")
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "amount exceeds the depositor's claimable balance",
		)
	}

	// 2. schedule at the gateway. A failed call aborts before any ledger write
	timestamp := time.Now().Unix()
	if clientErr := s.Clients.Gateway.ScheduleUnstake(ctx, amount); clientErr != nil {
		return clientErr
	}

	// 3. record the request, overwriting any previous one for this depositor
	err := s.DbClient.SaveUnstakeRequest(ctx, depositorAddress, amount, timestamp)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to save unstake request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	s.emitVaultEvent(ctx, client.NewVaultEvent(
		client.UnstakeScheduledEventType, depositorAddress, amount, timestamp,
	))
	return nil
}

// CancelUnstake revokes the depositor's scheduled unstake request at the
// gateway and removes it from the ledger.
func (s *Services) CancelUnstake(ctx context.Context, depositorAddress string) *types.Error {
	unlock := s.locker.lock(depositorAddress)
	defer unlock()

	// 1. check there is a request eligible for cancellation
	unstakeRequest, err := s.DbClient.FindUnstakeRequest(ctx, depositorAddress)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("no unstake request to cancel")
			return types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "no unstake request to cancel")
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching unstake request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	if unstakeRequest.State != types.UnstakeScheduled {
		log.Ctx(ctx).Warn().
			Str("state", unstakeRequest.State.ToString()).
			Msg("unstake request is not in scheduled state, hence not eligible for cancellation")
		return types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "unstake request is not in scheduled state")
	}

	// 2. cancel at the gateway before touching the ledger
	if clientErr := s.Clients.Gateway.CancelUnstake(ctx, unstakeRequest.Amount); clientErr != nil {
		return clientErr
	}

	// 3. remove the request
	err = s.DbClient.DeleteUnstakeRequest(
		ctx, depositorAddress, unstakeRequest.Amount, utils.QualifiedStatesToCancelUnstake(),
	)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("unstake request no longer eligible for cancellation")
			return types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "unstake request no longer eligible for cancellation")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete unstake request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	s.emitVaultEvent(ctx, client.NewVaultEvent(
		client.UnstakeCancelledEventType, depositorAddress, unstakeRequest.Amount, time.Now().Unix(),
	))
	return nil
}

// MarkUnstakeRequestExecuted transitions the depositor's scheduled unstake
// request to executed. The transition is driven by the gateway's unstake
// execution event, not by any depositor-facing operation.
func (s *Services) MarkUnstakeRequestExecuted(ctx context.Context, depositorAddress string) *types.Error {
	unlock := s.locker.lock(depositorAddress)
	defer unlock()

	err := s.DbClient.TransitionUnstakeRequestToExecuted(
		ctx, depositorAddress, utils.QualifiedStatesToExecuteUnstake(),
	)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().
				Str("depositorAddress", depositorAddress).
				Err(err).
				Msg("unstake request not found or no longer eligible for execution")
			return types.NewErrorWithMsg(
				http.StatusForbidden, types.NotFound, "unstake request not found or no longer eligible for execution",
			)
		}
		log.Ctx(ctx).Error().
			Str("depositorAddress", depositorAddress).
			Err(err).
			Msg("failed to transition unstake request to executed")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	return nil
}

// GetUnstakeRequest fetches the depositor's unstake request. Absence is
// reported as a not found error, callers that treat absence as the implicit
// none state should use GetUnstakeRequestStatus instead.
func (s *Services) GetUnstakeRequest(
	ctx context.Context, depositorAddress string,
) (*model.UnstakeRequestDocument, *types.Error) {
	unstakeRequest, err := s.DbClient.FindUnstakeRequest(ctx, depositorAddress)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("unstake request not found")
			return nil, types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "unstake request not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching unstake request")
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	return unstakeRequest, nil
}
