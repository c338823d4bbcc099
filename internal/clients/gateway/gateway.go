package gateway

import (
	"context"
	"net/http"

	baseclient "github.com/omnistake/vault-adapter-service/internal/clients/base"
	"github.com/omnistake/vault-adapter-service/internal/config"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

type assetPayload struct {
	Kind         uint8  `json:"kind"`
	TokenAddress string `json:"token_address,omitempty"`
}

type operationRequest struct {
	OperatorId string       `json:"operator_id"`
	Asset      assetPayload `json:"asset"`
	Blueprint  []uint64     `json:"blueprint"`
	Amount     uint64       `json:"amount,omitempty"`
}

type operationResponse struct {
	Status string `json:"status"`
}

type GatewayClient struct {
	config        *config.GatewayConfig
	httpClient    *http.Client
	defaultHeader map[string]string
	assetKind     uint8
}

func NewGatewayClient(config *config.GatewayConfig) *GatewayClient {
	httpClient := &http.Client{}
	defaultHeader := map[string]string{
		"Accept": "application/json",
	}
	// Config validation guarantees the asset kind parses.
	kind, _ := types.FromStringToAssetKind(config.AssetKind)
	discriminator, _ := kind.Discriminator()
	return &GatewayClient{
		config,
		httpClient,
		defaultHeader,
		discriminator,
	}
}

// Necessary for the BaseClient interface
func (c *GatewayClient) GetBaseURL() string {
	return c.config.Host
}

func (c *GatewayClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *GatewayClient) GetHttpClient() *http.Client {
	return c.httpClient
}

// newOperationRequest builds the delegation context every gateway operation
// carries: the operator, the asset being staked and the operator blueprint.
func (c *GatewayClient) newOperationRequest(amount uint64) *operationRequest {
	return &operationRequest{
		OperatorId: c.config.OperatorId,
		Asset: assetPayload{
			Kind:         c.assetKind,
			TokenAddress: c.config.TokenAddress,
		},
		Blueprint: c.config.Blueprint,
		Amount:    amount,
	}
}

func (c *GatewayClient) sendOperation(
	ctx context.Context, path, operation string, input *operationRequest,
) *types.Error {
	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: c.defaultHeader,
		Name:    operation,
	}

	_, err := baseclient.SendRequest[operationRequest, operationResponse](
		ctx, c, http.MethodPost, opts, input,
	)
	return err
}

func (c *GatewayClient) Delegate(ctx context.Context, amount uint64) *types.Error {
	return c.sendOperation(ctx, "/v1/delegate", "delegate", c.newOperationRequest(amount))
}

func (c *GatewayClient) ScheduleUnstake(ctx context.Context, amount uint64) *types.Error {
	return c.sendOperation(ctx, "/v1/unstake/schedule", "schedule_unstake", c.newOperationRequest(amount))
}

func (c *GatewayClient) CancelUnstake(ctx context.Context, amount uint64) *types.Error {
	return c.sendOperation(ctx, "/v1/unstake/cancel", "cancel_unstake", c.newOperationRequest(amount))
}

func (c *GatewayClient) ScheduleWithdraw(ctx context.Context, amount uint64) *types.Error {
	return c.sendOperation(ctx, "/v1/withdraw/schedule", "schedule_withdraw", c.newOperationRequest(amount))
}

func (c *GatewayClient) ExecuteWithdraw(ctx context.Context) *types.Error {
	// The gateway settles the full prepared amount, no amount is sent.
	return c.sendOperation(ctx, "/v1/withdraw/execute", "execute_withdraw", c.newOperationRequest(0))
}

func (c *GatewayClient) CancelWithdraw(ctx context.Context, amount uint64) *types.Error {
	return c.sendOperation(ctx, "/v1/withdraw/cancel", "cancel_withdraw", c.newOperationRequest(amount))
}
