package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/omnistake/vault-adapter-service/internal/config"
	"github.com/omnistake/vault-adapter-service/internal/services"
	"github.com/omnistake/vault-adapter-service/internal/types"
	"github.com/omnistake/vault-adapter-service/internal/utils"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type PublicResponse[T any] struct {
	Data T `json:"data"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

// DepositorRequestPayload carries operations that only identify the depositor.
type DepositorRequestPayload struct {
	DepositorAddress string `json:"depositor_address"`
}

// DepositorAmountRequestPayload carries operations that move an amount for a
// depositor.
type DepositorAmountRequestPayload struct {
	DepositorAddress string `json:"depositor_address"`
	Amount           uint64 `json:"amount"`
}

func parseDepositorRequestPayload(request *http.Request) (*DepositorRequestPayload, *types.Error) {
	payload := &DepositorRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidEthAddress(payload.DepositorAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid depositor address",
		)
	}
	payload.DepositorAddress = utils.NormalizeEthAddress(payload.DepositorAddress)

	return payload, nil
}

func parseDepositorAmountRequestPayload(request *http.Request) (*DepositorAmountRequestPayload, *types.Error) {
	payload := &DepositorAmountRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidEthAddress(payload.DepositorAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid depositor address",
		)
	}
	if payload.Amount == 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "amount must be positive",
		)
	}
	payload.DepositorAddress = utils.NormalizeEthAddress(payload.DepositorAddress)

	return payload, nil
}

func parseDepositorAddressQuery(request *http.Request) (string, *types.Error) {
	depositorAddress := request.URL.Query().Get("depositor_address")
	if depositorAddress == "" {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "depositor_address is required")
	}
	if !utils.IsValidEthAddress(depositorAddress) {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid depositor address",
		)
	}
	return utils.NormalizeEthAddress(depositorAddress), nil
}
