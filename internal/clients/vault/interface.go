package vault

import (
	"context"
	"net/http"

	"github.com/omnistake/vault-adapter-service/internal/types"
)

type VaultClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	// MaxWithdraw returns the maximum amount the depositor could currently
	// withdraw from the vault, which caps how much they may unstake.
	MaxWithdraw(ctx context.Context, depositorAddress string) (uint64, *types.Error)
}
