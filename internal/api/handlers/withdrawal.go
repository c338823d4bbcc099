package handlers

import (
	"net/http"

	"github.com/omnistake/vault-adapter-service/internal/types"
)

// ScheduleWithdrawal godoc
// @Summary Schedule a withdrawal
// @Description Moves part or all of an executed unstake request into a scheduled withdrawal at the
// @Description delegation gateway. The unstake request is drawn down by the scheduled amount.
// @Accept json
// @Produce json
// @Param payload body DepositorAmountRequestPayload true "Withdrawal Request Payload"
// @Success 200 "The withdrawal is scheduled"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "No executed unstake request covering the amount"
// @Router /v1/withdrawal [post]
func (h *Handler) ScheduleWithdrawal(request *http.Request) (*Result, *types.Error) {
	payload, err := parseDepositorAmountRequestPayload(request)
	if err != nil {
		return nil, err
	}

	withdrawErr := h.services.ScheduleWithdraw(
		request.Context(), payload.DepositorAddress, payload.Amount,
	)
	if withdrawErr != nil {
		return nil, withdrawErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// CancelWithdrawal godoc
// @Summary Cancel a scheduled withdrawal and delegate the amount again
// @Description Revokes the depositor's scheduled withdrawal at the delegation gateway and delegates the
// @Description freed amount back to the operator. If the re-delegation fails the withdrawal stays
// @Description scheduled in the ledger even though it was cancelled at the gateway.
// @Accept json
// @Produce json
// @Param payload body DepositorRequestPayload true "Cancel Withdrawal Payload"
// @Success 200 "The withdrawal is cancelled and the amount delegated again"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "No withdrawal in a cancellable state"
// @Failure 502 {object} types.Error "Withdrawal cancelled but re-delegation failed"
// @Router /v1/withdrawal/cancel [post]
func (h *Handler) CancelWithdrawal(request *http.Request) (*Result, *types.Error) {
	payload, err := parseDepositorRequestPayload(request)
	if err != nil {
		return nil, err
	}

	cancelErr := h.services.CancelWithdrawAndRedelegate(request.Context(), payload.DepositorAddress)
	if cancelErr != nil {
		return nil, cancelErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// GetWithdrawRequest godoc
// @Summary Get the depositor's withdraw request
// @Description Retrieves the depositor's withdraw request. A depositor without a live request is reported
// @Description with zero amount in the "none" state.
// @Produce json
// @Param depositor_address query string true "Depositor address"
// @Success 200 {object} PublicResponse[services.WithdrawRequestPublic] "Withdraw request"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/withdrawal [get]
func (h *Handler) GetWithdrawRequest(request *http.Request) (*Result, *types.Error) {
	depositorAddress, err := parseDepositorAddressQuery(request)
	if err != nil {
		return nil, err
	}

	withdrawRequest, reqErr := h.services.GetWithdrawRequestStatus(request.Context(), depositorAddress)
	if reqErr != nil {
		return nil, reqErr
	}

	return NewResult(withdrawRequest), nil
}
