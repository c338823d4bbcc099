package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/omnistake/vault-adapter-service/internal/clients"
	"github.com/omnistake/vault-adapter-service/internal/db"
	"github.com/omnistake/vault-adapter-service/internal/db/model"
	"github.com/omnistake/vault-adapter-service/internal/mocks"
	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

func TestScheduleAndCancelUnstake(t *testing.T) {
	ts := newTestServices(t)
	ts.vault.On("MaxWithdraw", mock.Anything, testDepositor).Return(uint64(1000), nil)
	ts.gateway.On("ScheduleUnstake", mock.Anything, uint64(1000)).Return(nil)
	ts.gateway.On("CancelUnstake", mock.Anything, uint64(1000)).Return(nil)

	err := ts.services.ScheduleUnstake(context.Background(), testDepositor, 1000)
	require.Nil(t, err)

	status, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(1000), status.Amount)
	assert.Equal(t, types.UnstakeScheduled.ToString(), status.State)
	assert.NotZero(t, status.Timestamp)

	err = ts.services.CancelUnstake(context.Background(), testDepositor)
	require.Nil(t, err)

	// After cancellation the request reads back as none with zero amount.
	status, statusErr = ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(0), status.Amount)
	assert.Equal(t, types.UnstakeNone.ToString(), status.State)

	assert.Len(t, ts.emitter.eventsOfType(client.UnstakeScheduledEventType), 1)
	assert.Len(t, ts.emitter.eventsOfType(client.UnstakeCancelledEventType), 1)
}

func TestScheduleUnstakeSucceedsWhenNotificationPublishFails(t *testing.T) {
	ts := newTestServices(t)
	ts.vault.On("MaxWithdraw", mock.Anything, testDepositor).Return(uint64(1000), nil)
	ts.gateway.On("ScheduleUnstake", mock.Anything, uint64(1000)).Return(nil)
	ts.emitter.failPublishes(errors.New("queue connection lost"))

	// The notification is best effort, a publish failure must not fail the
	// operation or unwind the committed ledger write.
	err := ts.services.ScheduleUnstake(context.Background(), testDepositor, 1000)
	require.Nil(t, err)

	status, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(1000), status.Amount)
	assert.Equal(t, types.UnstakeScheduled.ToString(), status.State)
	assert.Zero(t, ts.emitter.count())
}

func TestScheduleUnstakeRejectsZeroAmount(t *testing.T) {
	ts := newTestServices(t)

	err := ts.services.ScheduleUnstake(context.Background(), testDepositor, 0)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
	ts.vault.AssertNotCalled(t, "MaxWithdraw", mock.Anything, mock.Anything)
}

func TestScheduleUnstakeRejectsAmountAboveClaimableBalance(t *testing.T) {
	ts := newTestServices(t)
	ts.vault.On("MaxWithdraw", mock.Anything, testDepositor).Return(uint64(500), nil)

	err := ts.services.ScheduleUnstake(context.Background(), testDepositor, 1000)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.ValidationError, err.ErrorCode)

	// No gateway call, no ledger write and no notification on rejection.
	ts.gateway.AssertNotCalled(t, "ScheduleUnstake", mock.Anything, mock.Anything)
	status, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, types.UnstakeNone.ToString(), status.State)
	assert.Zero(t, ts.emitter.count())
}

func TestScheduleUnstakeGatewayFailureLeavesNoLedgerWrite(t *testing.T) {
	ts := newTestServices(t)
	ts.vault.On("MaxWithdraw", mock.Anything, testDepositor).Return(uint64(1000), nil)
	gatewayErr := types.NewErrorWithMsg(
		http.StatusInternalServerError, types.InternalServiceError, "gateway unavailable",
	)
	ts.gateway.On("ScheduleUnstake", mock.Anything, uint64(1000)).Return(gatewayErr)

	err := ts.services.ScheduleUnstake(context.Background(), testDepositor, 1000)
	require.NotNil(t, err)
	assert.Equal(t, gatewayErr, err, "gateway failures propagate untranslated")

	status, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, types.UnstakeNone.ToString(), status.State)
	assert.Zero(t, ts.emitter.count())
}

func TestScheduleUnstakeOverwritesPreviousRequest(t *testing.T) {
	ts := newTestServices(t)
	ts.vault.On("MaxWithdraw", mock.Anything, testDepositor).Return(uint64(1000), nil)
	ts.gateway.On("ScheduleUnstake", mock.Anything, mock.Anything).Return(nil)

	require.Nil(t, ts.services.ScheduleUnstake(context.Background(), testDepositor, 1000))
	require.Nil(t, ts.services.ScheduleUnstake(context.Background(), testDepositor, 400))

	// Last write wins, the amounts are not combined.
	status, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(400), status.Amount)
	assert.Equal(t, types.UnstakeScheduled.ToString(), status.State)
}

func TestCancelUnstakeWithoutRequest(t *testing.T) {
	ts := newTestServices(t)

	err := ts.services.CancelUnstake(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.NotFound, err.ErrorCode)
	ts.gateway.AssertNotCalled(t, "CancelUnstake", mock.Anything, mock.Anything)
}

func TestCancelUnstakeRejectedAfterExecution(t *testing.T) {
	ts := newTestServices(t)
	require.NoError(t, ts.db.SaveUnstakeRequest(context.Background(), testDepositor, 1000, 1))
	require.NoError(t, ts.services.DbClient.TransitionUnstakeRequestToExecuted(
		context.Background(), testDepositor, []types.UnstakeState{types.UnstakeScheduled},
	))

	err := ts.services.CancelUnstake(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.Forbidden, err.ErrorCode)
	ts.gateway.AssertNotCalled(t, "CancelUnstake", mock.Anything, mock.Anything)
}

func TestMarkUnstakeRequestExecuted(t *testing.T) {
	ts := newTestServices(t)
	require.NoError(t, ts.db.SaveUnstakeRequest(context.Background(), testDepositor, 1000, 1))

	err := ts.services.MarkUnstakeRequestExecuted(context.Background(), testDepositor)
	require.Nil(t, err)

	status, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, types.UnstakeExecuted.ToString(), status.State)
	assert.Equal(t, uint64(1000), status.Amount)

	// A second transition attempt misses the guard.
	err = ts.services.MarkUnstakeRequestExecuted(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, types.NotFound, err.ErrorCode)
}

func TestMarkUnstakeRequestExecutedWithoutRequest(t *testing.T) {
	ts := newTestServices(t)

	err := ts.services.MarkUnstakeRequestExecuted(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, types.NotFound, err.ErrorCode)
}

func TestCancelUnstakeAbortsWhenRequestConcurrentlyReplaced(t *testing.T) {
	dbClient := &mocks.DBClient{}
	gateway := &mocks.GatewayClientInterface{}
	emitter := &recordingEmitter{}
	svc := &Services{
		DbClient:     dbClient,
		Clients:      &clients.Clients{Gateway: gateway},
		EventEmitter: emitter,
		locker:       newDepositorLocker(),
	}

	dbClient.On("FindUnstakeRequest", mock.Anything, testDepositor).
		Return(&model.UnstakeRequestDocument{
			DepositorAddress: testDepositor,
			Amount:           1000,
			Timestamp:        1,
			State:            types.UnstakeScheduled,
		}, nil)
	gateway.On("CancelUnstake", mock.Anything, uint64(1000)).Return(nil)
	// The request was replaced by another writer after it was read, so the
	// amount guard on the delete misses instead of removing the new request.
	dbClient.On("DeleteUnstakeRequest", mock.Anything, testDepositor, uint64(1000), mock.Anything).
		Return(&db.NotFoundError{Key: testDepositor, Message: "unstake request not found or not in eligible state to cancel"})

	err := svc.CancelUnstake(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.NotFound, err.ErrorCode)
	assert.Zero(t, emitter.count())
	dbClient.AssertCalled(
		t, "DeleteUnstakeRequest", mock.Anything, testDepositor, uint64(1000), mock.Anything,
	)
}
