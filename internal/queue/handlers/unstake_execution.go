package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/types"
	"github.com/omnistake/vault-adapter-service/internal/utils"
	"github.com/rs/zerolog/log"
)

// UnstakeExecutionHandler processes the gateway's notification that a
// scheduled unstake has been executed and may now be withdrawn.
func (h *QueueHandler) UnstakeExecutionHandler(ctx context.Context, messageBody string) *types.Error {
	var unstakeExecutionEvent client.UnstakeExecutionEvent
	err := json.Unmarshal([]byte(messageBody), &unstakeExecutionEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into unstakeExecutionEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}

	if !utils.IsValidEthAddress(unstakeExecutionEvent.DepositorAddress) {
		log.Ctx(ctx).Error().Str("depositorAddress", unstakeExecutionEvent.DepositorAddress).
			Msg("invalid depositor address in unstake execution event")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid depositor address")
	}
	depositorAddress := utils.NormalizeEthAddress(unstakeExecutionEvent.DepositorAddress)

	// Check if the unstake request is in the right state to process the event
	request, reqErr := h.Services.GetUnstakeRequest(ctx, depositorAddress)
	// Requeue if found any error. Including not found error
	if reqErr != nil {
		return reqErr
	}
	if unstakeExecutionEvent.Amount != 0 && unstakeExecutionEvent.Amount != request.Amount {
		// The ledger amount stays authoritative, the gateway's figure is
		// only recorded for investigation.
		log.Ctx(ctx).Warn().Str("depositorAddress", depositorAddress).
			Uint64("eventAmount", unstakeExecutionEvent.Amount).
			Uint64("ledgerAmount", request.Amount).
			Msg("unstake execution event amount does not match the ledger")
	}
	if utils.Contains(utils.OutdatedStatesForUnstakeExecution, request.State) {
		// Ignore the message as the request already passed the executed state. This is an outdated duplication
		log.Ctx(ctx).Debug().Str("depositorAddress", depositorAddress).
			Msg("unstake request state is outdated for unstake execution event")
		return nil
	}

	transitionErr := h.Services.MarkUnstakeRequestExecuted(ctx, depositorAddress)
	if transitionErr != nil {
		return transitionErr
	}

	return nil
}
