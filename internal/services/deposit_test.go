package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

func TestProcessDepositDelegatesAndEmitsEvent(t *testing.T) {
	ts := newTestServices(t)
	ts.gateway.On("Delegate", mock.Anything, uint64(1000)).Return(nil)

	err := ts.services.ProcessDeposit(context.Background(), testDepositor, 1000)
	require.Nil(t, err)

	events := ts.emitter.eventsOfType(client.AssetsDelegatedEventType)
	require.Len(t, events, 1, "expected exactly one AssetsDelegated event")
	assert.Equal(t, testDepositor, events[0].DepositorAddress)
	assert.Equal(t, uint64(1000), events[0].Amount)

	// Delegation is immediate, no request is recorded in the ledger.
	status, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, types.UnstakeNone.ToString(), status.State)
}

func TestProcessDepositRejectsZeroAmount(t *testing.T) {
	ts := newTestServices(t)

	err := ts.services.ProcessDeposit(context.Background(), testDepositor, 0)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.ValidationError, err.ErrorCode)

	ts.gateway.AssertNotCalled(t, "Delegate", mock.Anything, mock.Anything)
	assert.Zero(t, ts.emitter.count(), "rejected deposit must not emit a notification")
}

func TestProcessDepositTranslatesDelegationFailure(t *testing.T) {
	ts := newTestServices(t)
	gatewayErr := types.NewErrorWithMsg(
		http.StatusInternalServerError, types.InternalServiceError, "operator rejected the delegation",
	)
	ts.gateway.On("Delegate", mock.Anything, uint64(500)).Return(gatewayErr)

	err := ts.services.ProcessDeposit(context.Background(), testDepositor, 500)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	assert.Equal(t, types.DelegationFailed, err.ErrorCode,
		"a failed delegate call is translated rather than propagated raw")
	assert.Zero(t, ts.emitter.count())
}
