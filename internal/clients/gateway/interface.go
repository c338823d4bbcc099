package gateway

import (
	"context"
	"net/http"

	"github.com/omnistake/vault-adapter-service/internal/types"
)

type GatewayClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	// Delegate stakes the given amount with the configured operator.
	Delegate(ctx context.Context, amount uint64) *types.Error
	// ScheduleUnstake requests the gateway to start unstaking the given amount.
	ScheduleUnstake(ctx context.Context, amount uint64) *types.Error
	// CancelUnstake revokes a previously scheduled unstake of the given amount.
	CancelUnstake(ctx context.Context, amount uint64) *types.Error
	// ScheduleWithdraw requests the gateway to prepare the given unstaked
	// amount for withdrawal.
	ScheduleWithdraw(ctx context.Context, amount uint64) *types.Error
	// ExecuteWithdraw settles whatever the gateway has prepared for
	// withdrawal. The gateway tracks the amount itself.
	ExecuteWithdraw(ctx context.Context) *types.Error
	// CancelWithdraw revokes a previously scheduled withdrawal of the given
	// amount.
	CancelWithdraw(ctx context.Context, amount uint64) *types.Error
}
