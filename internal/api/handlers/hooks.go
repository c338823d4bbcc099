package handlers

import (
	"net/http"

	"github.com/omnistake/vault-adapter-service/internal/types"
)

// DepositHook godoc
// @Summary Vault deposit hook
// @Description Called by the vault after its share accounting completes to delegate the deposited
// @Description amount. A failure response means the vault must revert the whole deposit.
// @Accept json
// @Produce json
// @Param payload body DepositorAmountRequestPayload true "Deposit Hook Payload"
// @Success 200 "The deposited amount is delegated"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 502 {object} types.Error "Delegation failed"
// @Router /v1/hooks/deposit [post]
func (h *Handler) DepositHook(request *http.Request) (*Result, *types.Error) {
	payload, err := parseDepositorAmountRequestPayload(request)
	if err != nil {
		return nil, err
	}

	depositErr := h.services.ProcessDeposit(
		request.Context(), payload.DepositorAddress, payload.Amount,
	)
	if depositErr != nil {
		return nil, depositErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// WithdrawHook godoc
// @Summary Vault withdrawal hook
// @Description Called by the vault before releasing assets to consume the depositor's scheduled
// @Description withdrawal. A failure response means the vault must not release the assets.
// @Accept json
// @Produce json
// @Param payload body DepositorAmountRequestPayload true "Withdraw Hook Payload"
// @Success 200 "The withdrawal is settled and the assets may be released"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "No scheduled withdrawal covering the amount"
// @Router /v1/hooks/withdraw [post]
func (h *Handler) WithdrawHook(request *http.Request) (*Result, *types.Error) {
	payload, err := parseDepositorAmountRequestPayload(request)
	if err != nil {
		return nil, err
	}

	withdrawErr := h.services.ProcessWithdrawal(
		request.Context(), payload.DepositorAddress, payload.Amount,
	)
	if withdrawErr != nil {
		return nil, withdrawErr
	}

	return &Result{Status: http.StatusOK}, nil
}
