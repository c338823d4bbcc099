package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/omnistake/vault-adapter-service/internal/db"
	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/types"
	"github.com/omnistake/vault-adapter-service/internal/utils"
)

// ScheduleWithdraw moves part or all of an executed unstake request into a
// scheduled withdrawal. The unstake amount is drawn down by the scheduled
// amount and the unstake request is removed once fully drained. Scheduling
// again while a withdrawal is still pending replaces the previous request.
func (s *Services) ScheduleWithdraw(
	ctx context.Context, depositorAddress string, amount uint64,
) *types.Error {
	unlock := s.locker.lock(depositorAddress)
	defer unlock()

	if amount == 0 {
		log.Ctx(ctx).Warn().Msg("rejecting withdraw request with zero amount")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount must be positive")
	}

	// 1. the depositor must hold an executed unstake request covering the amount
	unstakeRequest, err := s.DbClient.FindUnstakeRequest(ctx, depositorAddress)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("no unstake request found, hence not eligible for withdrawal")
			return types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "no unstake request found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching unstake request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	if unstakeRequest.State != types.UnstakeExecuted {
		log.Ctx(ctx).Warn().
			Str("state", unstakeRequest.State.ToString()).
			Msg("unstake request has not been executed, hence not eligible for withdrawal")
		return types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "unstake request has not been executed")
	}
	if amount > unstakeRequest.Amount {
		log.Ctx(ctx).Warn().
			Uint64("amount", amount).
			Uint64("unstaked", unstakeRequest.Amount).
			Msg("withdraw amount exceeds the executed unstake amount")
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "amount exceeds the executed unstake amount",
		)
	}

	// 2. schedule at the gateway. A failed call aborts before any ledger write
	timestamp := time.Now().Unix()
	if clientErr := s.Clients.Gateway.ScheduleWithdraw(ctx, amount); clientErr != nil {
		return clientErr
	}

	// 3. draw down the unstake request and record the withdrawal atomically
	err = s.DbClient.SaveWithdrawRequest(ctx, depositorAddress, amount, timestamp)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("unstake request no longer covers the withdraw amount")
			return types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "unstake request no longer covers the withdraw amount")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to save withdraw request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	s.emitVaultEvent(ctx, client.NewVaultEvent(
		client.WithdrawScheduledEventType, depositorAddress, amount, timestamp,
	))
	return nil
}

// CancelWithdrawAndRedelegate revokes the depositor's scheduled withdrawal at
// the gateway and delegates the freed amount again. When the re-delegation
// fails the withdrawal has already been cancelled at the gateway, the ledger
// entry is deliberately left scheduled so the amount stays visible instead of
// silently dropping out of both pipelines.
func (s *Services) CancelWithdrawAndRedelegate(ctx context.Context, depositorAddress string) *types.Error {
	unlock := s.locker.lock(depositorAddress)
	defer unlock()

	// 1. check there is a request eligible for cancellation
	withdrawRequest, err := s.DbClient.FindWithdrawRequest(ctx, depositorAddress)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("no withdraw request to cancel")
			return types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "no withdraw request to cancel")
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching withdraw request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	if withdrawRequest.State != types.WithdrawScheduled {
		log.Ctx(ctx).Warn().
			Str("state", withdrawRequest.State.ToString()).
			Msg("withdraw request is not in scheduled state, hence not eligible for cancellation")
		return types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "withdraw request is not in scheduled state")
	}

	// 2. cancel at the gateway before touching the ledger
	if clientErr := s.Clients.Gateway.CancelWithdraw(ctx, withdrawRequest.Amount); clientErr != nil {
		return clientErr
	}

	// 3. delegate the freed amount again
	if clientErr := s.Clients.Gateway.Delegate(ctx, withdrawRequest.Amount); clientErr != nil {
		log.Ctx(ctx).Error().
			Str("depositorAddress", depositorAddress).
			Uint64("amount", withdrawRequest.Amount).
			Err(clientErr).
			Msg("re-delegation failed after the withdrawal was cancelled at the gateway, withdraw request left scheduled")
		return types.NewErrorWithMsg(
			http.StatusBadGateway, types.DelegationNotPossible, "withdrawal cancelled but re-delegation failed",
		)
	}

	// 4. remove the request
	err = s.DbClient.DeleteWithdrawRequest(
		ctx, depositorAddress, withdrawRequest.Amount, utils.QualifiedStatesToCancelWithdraw(),
	)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("withdraw request no longer eligible for cancellation")
			return types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "withdraw request no longer eligible for cancellation")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete withdraw request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	s.emitVaultEvent(ctx, client.NewVaultEvent(
		client.WithdrawCancelledEventType, depositorAddress, withdrawRequest.Amount, time.Now().Unix(),
	))
	return nil
}

// ProcessWithdrawal consumes the depositor's scheduled withdrawal when the
// vault releases assets. The request amount is drawn down by the withdrawn
// amount and the request is removed once fully consumed. Rejections must stop
// the vault from releasing the assets.
func (s *Services) ProcessWithdrawal(
	ctx context.Context, depositorAddress string, amount uint64,
) *types.Error {
	unlock := s.locker.lock(depositorAddress)
	defer unlock()

	if amount == 0 {
		log.Ctx(ctx).Warn().Msg("rejecting withdrawal with zero amount")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount must be positive")
	}

	// 1. the withdrawal must consume a scheduled request covering the amount
	withdrawRequest, err := s.DbClient.FindWithdrawRequest(ctx, depositorAddress)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("no withdraw request found, hence withdrawal is not allowed")
			return types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "no withdraw request found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching withdraw request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	if !utils.Contains(utils.QualifiedStatesToConsumeWithdraw(), withdrawRequest.State) {
		log.Ctx(ctx).Warn().
			Str("state", withdrawRequest.State.ToString()).
			Msg("withdraw request is not in a consumable state")
		return types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "withdraw request is not in a consumable state")
	}
	if amount > withdrawRequest.Amount {
		log.Ctx(ctx).Warn().
			Uint64("amount", amount).
			Uint64("scheduled", withdrawRequest.Amount).
			Msg("withdrawal amount exceeds the scheduled withdraw amount")
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "amount exceeds the scheduled withdraw amount",
		)
	}

	// 2. settle at the gateway. A failed call aborts before any ledger write
	if clientErr := s.Clients.Gateway.ExecuteWithdraw(ctx); clientErr != nil {
		return clientErr
	}

	// 3. draw down the withdraw request
	err = s.DbClient.ReduceWithdrawRequest(
		ctx, depositorAddress, amount, utils.QualifiedStatesToConsumeWithdraw(),
	)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("withdraw request no longer covers the withdrawal amount")
			return types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "withdraw request no longer covers the withdrawal amount")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to reduce withdraw request")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	return nil
}
