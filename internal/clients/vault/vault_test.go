package vault

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnistake/vault-adapter-service/internal/config"
	"github.com/omnistake/vault-adapter-service/internal/observability/metrics"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

const testDepositor = "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"

func TestMain(m *testing.M) {
	metrics.Init(0)
	os.Exit(m.Run())
}

func TestMaxWithdraw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/vault/max-withdraw/"+testDepositor, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(maxWithdrawResponse{ // nolint:errcheck
			DepositorAddress: testDepositor,
			MaxWithdraw:      1500,
		})
	}))
	defer server.Close()

	client := NewVaultClient(&config.VaultConfig{Host: server.URL, Timeout: 1000})
	amount, err := client.MaxWithdraw(context.Background(), testDepositor)
	require.Nil(t, err)
	assert.Equal(t, uint64(1500), amount)
}

func TestMaxWithdrawServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "vault unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewVaultClient(&config.VaultConfig{Host: server.URL, Timeout: 1000})
	_, err := client.MaxWithdraw(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
	assert.Equal(t, types.InternalServiceError, err.ErrorCode)
}
