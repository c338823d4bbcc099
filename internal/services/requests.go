package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/omnistake/vault-adapter-service/internal/db"
	"github.com/omnistake/vault-adapter-service/internal/db/model"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

type UnstakeRequestPublic struct {
	DepositorAddress string `json:"depositor_address"`
	Amount           uint64 `json:"amount"`
	Timestamp        int64  `json:"timestamp"`
	State            string `json:"state"`
}

type WithdrawRequestPublic struct {
	DepositorAddress string `json:"depositor_address"`
	Amount           uint64 `json:"amount"`
	Timestamp        int64  `json:"timestamp"`
	State            string `json:"state"`
}

func fromUnstakeRequestDocument(d *model.UnstakeRequestDocument) *UnstakeRequestPublic {
	return &UnstakeRequestPublic{
		DepositorAddress: d.DepositorAddress,
		Amount:           d.Amount,
		Timestamp:        d.Timestamp,
		State:            d.State.ToString(),
	}
}

func fromWithdrawRequestDocument(d *model.WithdrawRequestDocument) *WithdrawRequestPublic {
	return &WithdrawRequestPublic{
		DepositorAddress: d.DepositorAddress,
		Amount:           d.Amount,
		Timestamp:        d.Timestamp,
		State:            d.State.ToString(),
	}
}

// GetUnstakeRequestStatus returns the depositor's unstake request. A deleted
// or never created request is reported with zero amount in the none state,
// absence and explicit clearing are indistinguishable to callers.
func (s *Services) GetUnstakeRequestStatus(
	ctx context.Context, depositorAddress string,
) (*UnstakeRequestPublic, *types.Error) {
	unstakeRequest, err := s.DbClient.FindUnstakeRequest(ctx, depositorAddress)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			return &UnstakeRequestPublic{
				DepositorAddress: depositorAddress,
				State:            types.UnstakeNone.ToString(),
			}, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching unstake request")
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	return fromUnstakeRequestDocument(unstakeRequest), nil
}

// GetWithdrawRequestStatus returns the depositor's withdraw request, with the
// same none reporting as GetUnstakeRequestStatus.
func (s *Services) GetWithdrawRequestStatus(
	ctx context.Context, depositorAddress string,
) (*WithdrawRequestPublic, *types.Error) {
	withdrawRequest, err := s.DbClient.FindWithdrawRequest(ctx, depositorAddress)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			return &WithdrawRequestPublic{
				DepositorAddress: depositorAddress,
				State:            types.WithdrawNone.ToString(),
			}, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching withdraw request")
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	return fromWithdrawRequestDocument(withdrawRequest), nil
}
