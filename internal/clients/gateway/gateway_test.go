package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnistake/vault-adapter-service/internal/config"
	"github.com/omnistake/vault-adapter-service/internal/observability/metrics"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

func TestMain(m *testing.M) {
	metrics.Init(0)
	os.Exit(m.Run())
}

func testGatewayConfig(host string) *config.GatewayConfig {
	return &config.GatewayConfig{
		Host:         host,
		Timeout:      1000,
		OperatorId:   "0x59c3fcb1a90a71b5758334bd231fca2e010fdc4ac9b3d6ab9c14b9a6cf4f9f31",
		AssetKind:    "erc20",
		TokenAddress: "0x6b175474e89094c44da98b954eedeac495271d0f",
		Blueprint:    []uint64{1, 2},
	}
}

func TestDelegateSendsOperationContext(t *testing.T) {
	var gotPath string
	var gotBody operationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(operationResponse{Status: "ok"}) // nolint:errcheck
	}))
	defer server.Close()

	client := NewGatewayClient(testGatewayConfig(server.URL))
	err := client.Delegate(context.Background(), 500)
	require.Nil(t, err)

	assert.Equal(t, "/v1/delegate", gotPath)
	assert.Equal(t, "0x59c3fcb1a90a71b5758334bd231fca2e010fdc4ac9b3d6ab9c14b9a6cf4f9f31", gotBody.OperatorId)
	assert.Equal(t, uint8(1), gotBody.Asset.Kind, "erc20 maps to wire discriminator 1")
	assert.Equal(t, "0x6b175474e89094c44da98b954eedeac495271d0f", gotBody.Asset.TokenAddress)
	assert.Equal(t, []uint64{1, 2}, gotBody.Blueprint)
	assert.Equal(t, uint64(500), gotBody.Amount)
}

func TestGatewayOperationPaths(t *testing.T) {
	var gotPaths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(operationResponse{Status: "ok"}) // nolint:errcheck
	}))
	defer server.Close()

	client := NewGatewayClient(testGatewayConfig(server.URL))
	ctx := context.Background()
	require.Nil(t, client.ScheduleUnstake(ctx, 100))
	require.Nil(t, client.CancelUnstake(ctx, 100))
	require.Nil(t, client.ScheduleWithdraw(ctx, 100))
	require.Nil(t, client.ExecuteWithdraw(ctx))
	require.Nil(t, client.CancelWithdraw(ctx, 100))

	assert.Equal(t, []string{
		"/v1/unstake/schedule",
		"/v1/unstake/cancel",
		"/v1/withdraw/schedule",
		"/v1/withdraw/execute",
		"/v1/withdraw/cancel",
	}, gotPaths)
}

func TestGatewayServerErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewGatewayClient(testGatewayConfig(server.URL))
	err := client.Delegate(context.Background(), 500)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, types.InternalServiceError, err.ErrorCode)
}

func TestGatewayClientErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient stake", http.StatusConflict)
	}))
	defer server.Close()

	client := NewGatewayClient(testGatewayConfig(server.URL))
	err := client.ScheduleUnstake(context.Background(), 500)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestGatewayRequestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testGatewayConfig(server.URL)
	cfg.Timeout = 50
	client := NewGatewayClient(cfg)

	err := client.Delegate(context.Background(), 500)
	require.NotNil(t, err)
	assert.Equal(t, types.RequestTimeout, err.ErrorCode)
}
