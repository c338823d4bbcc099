package handlers

import (
	"net/http"

	"github.com/omnistake/vault-adapter-service/internal/types"
)

// ScheduleUnstake godoc
// @Summary Schedule an unstake request
// @Description Schedules an unstake of the given amount with the delegation gateway and records the request.
// @Description Scheduling again while a request is pending replaces the previous request.
// @Accept json
// @Produce json
// @Param payload body DepositorAmountRequestPayload true "Unstake Request Payload"
// @Success 200 "The unstake request is scheduled"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Amount exceeds the depositor's claimable balance"
// @Router /v1/unstake [post]
func (h *Handler) ScheduleUnstake(request *http.Request) (*Result, *types.Error) {
	payload, err := parseDepositorAmountRequestPayload(request)
	if err != nil {
		return nil, err
	}

	unstakeErr := h.services.ScheduleUnstake(
		request.Context(), payload.DepositorAddress, payload.Amount,
	)
	if unstakeErr != nil {
		return nil, unstakeErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// CancelUnstake godoc
// @Summary Cancel a scheduled unstake request
// @Description Revokes the depositor's scheduled unstake request at the delegation gateway and removes it.
// @Accept json
// @Produce json
// @Param payload body DepositorRequestPayload true "Cancel Unstake Payload"
// @Success 200 "The unstake request is cancelled"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "No unstake request in a cancellable state"
// @Router /v1/unstake/cancel [post]
func (h *Handler) CancelUnstake(request *http.Request) (*Result, *types.Error) {
	payload, err := parseDepositorRequestPayload(request)
	if err != nil {
		return nil, err
	}

	cancelErr := h.services.CancelUnstake(request.Context(), payload.DepositorAddress)
	if cancelErr != nil {
		return nil, cancelErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// GetUnstakeRequest godoc
// @Summary Get the depositor's unstake request
// @Description Retrieves the depositor's unstake request. A depositor without a live request is reported
// @Description with zero amount in the "none" state.
// @Produce json
// @Param depositor_address query string true "Depositor address"
// @Success 200 {object} PublicResponse[services.UnstakeRequestPublic] "Unstake request"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/unstake [get]
func (h *Handler) GetUnstakeRequest(request *http.Request) (*Result, *types.Error) {
	depositorAddress, err := parseDepositorAddressQuery(request)
	if err != nil {
		return nil, err
	}

	unstakeRequest, reqErr := h.services.GetUnstakeRequestStatus(request.Context(), depositorAddress)
	if reqErr != nil {
		return nil, reqErr
	}

	return NewResult(unstakeRequest), nil
}
