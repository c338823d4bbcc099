package vault

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/omnistake/vault-adapter-service/internal/clients/base"
	"github.com/omnistake/vault-adapter-service/internal/config"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

type maxWithdrawResponse struct {
	DepositorAddress string `json:"depositor_address"`
	MaxWithdraw      uint64 `json:"max_withdraw"`
}

type VaultClient struct {
	config        *config.VaultConfig
	httpClient    *http.Client
	defaultHeader map[string]string
}

func NewVaultClient(config *config.VaultConfig) *VaultClient {
	httpClient := &http.Client{}
	defaultHeader := map[string]string{
		"Accept": "application/json",
	}
	return &VaultClient{
		config,
		httpClient,
		defaultHeader,
	}
}

// Necessary for the BaseClient interface
func (c *VaultClient) GetBaseURL() string {
	return c.config.Host
}

func (c *VaultClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *VaultClient) GetHttpClient() *http.Client {
	return c.httpClient
}

// MaxWithdraw fetches the maximum amount the depositor could currently
// withdraw from the vault.
func (c *VaultClient) MaxWithdraw(
	ctx context.Context, depositorAddress string,
) (uint64, *types.Error) {
	path := fmt.Sprintf("/v1/vault/max-withdraw/%s", depositorAddress)
	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: c.defaultHeader,
		Name:    "max_withdraw",
	}

	resp, err := baseclient.SendRequest[any, maxWithdrawResponse](
		ctx, c, http.MethodGet, opts, nil,
	)
	if err != nil {
		return 0, err
	}

	return resp.MaxWithdraw, nil
}
