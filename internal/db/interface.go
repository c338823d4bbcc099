package db

import (
	"context"

	"github.com/omnistake/vault-adapter-service/internal/db/model"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

type DBClient interface {
	Ping(ctx context.Context) error
	SaveUnstakeRequest(
		ctx context.Context, depositorAddress string, amount uint64, timestamp int64,
	) error
	FindUnstakeRequest(ctx context.Context, depositorAddress string) (*model.UnstakeRequestDocument, error)
	TransitionUnstakeRequestToExecuted(
		ctx context.Context, depositorAddress string, eligiblePreviousStates []types.UnstakeState,
	) error
	DeleteUnstakeRequest(
		ctx context.Context, depositorAddress string, amount uint64, eligiblePreviousStates []types.UnstakeState,
	) error
	SaveWithdrawRequest(
		ctx context.Context, depositorAddress string, amount uint64, timestamp int64,
	) error
	FindWithdrawRequest(ctx context.Context, depositorAddress string) (*model.WithdrawRequestDocument, error)
	DeleteWithdrawRequest(
		ctx context.Context, depositorAddress string, amount uint64, eligiblePreviousStates []types.WithdrawState,
	) error
	ReduceWithdrawRequest(
		ctx context.Context, depositorAddress string, amount uint64, eligibleStates []types.WithdrawState,
	) error
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, receipt interface{}) error
}
