package services

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/types"
)

// seedExecutedUnstake puts the depositor in the state an executed unstake
// event leaves them in.
func seedExecutedUnstake(t *testing.T, ts *testServices, depositor string, amount uint64) {
	t.Helper()
	require.NoError(t, ts.db.SaveUnstakeRequest(context.Background(), depositor, amount, 1))
	require.NoError(t, ts.db.TransitionUnstakeRequestToExecuted(
		context.Background(), depositor, []types.UnstakeState{types.UnstakeScheduled},
	))
}

func TestScheduleWithdrawConsumesExecutedUnstake(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 1000)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, uint64(1000)).Return(nil)

	err := ts.services.ScheduleWithdraw(context.Background(), testDepositor, 1000)
	require.Nil(t, err)

	withdraw, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(1000), withdraw.Amount)
	assert.Equal(t, types.WithdrawScheduled.ToString(), withdraw.State)

	// Fully drained unstake requests are removed, not left at zero.
	unstake, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, types.UnstakeNone.ToString(), unstake.State)
	assert.Equal(t, uint64(0), unstake.Amount)

	assert.Len(t, ts.emitter.eventsOfType(client.WithdrawScheduledEventType), 1)
}

func TestScheduleWithdrawPartialDrawdown(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 1000)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, uint64(400)).Return(nil)

	err := ts.services.ScheduleWithdraw(context.Background(), testDepositor, 400)
	require.Nil(t, err)

	unstake, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(600), unstake.Amount)
	assert.Equal(t, types.UnstakeExecuted.ToString(), unstake.State)

	withdraw, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(400), withdraw.Amount)
}

func TestScheduleWithdrawRequiresExecutedUnstake(t *testing.T) {
	ts := newTestServices(t)
	// Scheduled but not yet executed, the withdrawal must be rejected even
	// though the amount itself would be valid.
	require.NoError(t, ts.db.SaveUnstakeRequest(context.Background(), testDepositor, 1000, 1))

	err := ts.services.ScheduleWithdraw(context.Background(), testDepositor, 1000)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.Forbidden, err.ErrorCode)
	ts.gateway.AssertNotCalled(t, "ScheduleWithdraw", mock.Anything, mock.Anything)
	assert.Zero(t, ts.emitter.count())
}

func TestScheduleWithdrawWithoutUnstakeRequest(t *testing.T) {
	ts := newTestServices(t)

	err := ts.services.ScheduleWithdraw(context.Background(), testDepositor, 100)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.NotFound, err.ErrorCode)
}

func TestScheduleWithdrawRejectsAmountAboveUnstaked(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 500)

	err := ts.services.ScheduleWithdraw(context.Background(), testDepositor, 1000)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
	ts.gateway.AssertNotCalled(t, "ScheduleWithdraw", mock.Anything, mock.Anything)

	// The unstake request is untouched.
	unstake, statusErr := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(500), unstake.Amount)
}

func TestProcessWithdrawalPartialAndIsolated(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 1000)
	seedExecutedUnstake(t, ts, testSecondDepositor, 1000)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, uint64(1000)).Return(nil)
	ts.gateway.On("ExecuteWithdraw", mock.Anything).Return(nil)

	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testDepositor, 1000))
	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testSecondDepositor, 1000))

	err := ts.services.ProcessWithdrawal(context.Background(), testDepositor, 400)
	require.Nil(t, err)

	withdraw, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(600), withdraw.Amount)
	assert.Equal(t, types.WithdrawScheduled.ToString(), withdraw.State)

	// The other depositor's request is unaffected.
	other, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testSecondDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(1000), other.Amount)
}

func TestProcessWithdrawalRemovesDrainedRequest(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 1000)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, uint64(1000)).Return(nil)
	ts.gateway.On("ExecuteWithdraw", mock.Anything).Return(nil)

	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testDepositor, 1000))
	require.Nil(t, ts.services.ProcessWithdrawal(context.Background(), testDepositor, 600))
	require.Nil(t, ts.services.ProcessWithdrawal(context.Background(), testDepositor, 400))

	// Drawn down to exactly zero, the request is gone.
	withdraw, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, types.WithdrawNone.ToString(), withdraw.State)
	assert.Equal(t, uint64(0), withdraw.Amount)

	// A further withdrawal has nothing left to consume.
	err := ts.services.ProcessWithdrawal(context.Background(), testDepositor, 1)
	require.NotNil(t, err)
	assert.Equal(t, types.NotFound, err.ErrorCode)
}

func TestProcessWithdrawalRejectsAmountAboveScheduled(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 500)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, uint64(500)).Return(nil)

	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testDepositor, 500))

	err := ts.services.ProcessWithdrawal(context.Background(), testDepositor, 600)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
	ts.gateway.AssertNotCalled(t, "ExecuteWithdraw", mock.Anything)

	withdraw, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(500), withdraw.Amount)
}

func TestProcessWithdrawalWithoutRequest(t *testing.T) {
	ts := newTestServices(t)

	err := ts.services.ProcessWithdrawal(context.Background(), testDepositor, 100)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.NotFound, err.ErrorCode)
}

func TestCancelWithdrawAndRedelegate(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 500)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, uint64(500)).Return(nil)
	ts.gateway.On("CancelWithdraw", mock.Anything, uint64(500)).Return(nil)
	ts.gateway.On("Delegate", mock.Anything, uint64(500)).Return(nil)

	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testDepositor, 500))
	require.Nil(t, ts.services.CancelWithdrawAndRedelegate(context.Background(), testDepositor))

	withdraw, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, types.WithdrawNone.ToString(), withdraw.State)
	assert.Len(t, ts.emitter.eventsOfType(client.WithdrawCancelledEventType), 1)
}

func TestCancelWithdrawRedelegationFailureLeavesRequestScheduled(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 500)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, uint64(500)).Return(nil)
	ts.gateway.On("CancelWithdraw", mock.Anything, uint64(500)).Return(nil)
	delegateErr := types.NewErrorWithMsg(
		http.StatusInternalServerError, types.InternalServiceError, "operator is at capacity",
	)
	ts.gateway.On("Delegate", mock.Anything, uint64(500)).Return(delegateErr)

	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testDepositor, 500))

	err := ts.services.CancelWithdrawAndRedelegate(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	assert.Equal(t, types.DelegationNotPossible, err.ErrorCode)

	// The withdrawal was cancelled at the gateway but the ledger entry is
	// deliberately left scheduled so the amount stays visible.
	withdraw, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, uint64(500), withdraw.Amount)
	assert.Equal(t, types.WithdrawScheduled.ToString(), withdraw.State)
	assert.Empty(t, ts.emitter.eventsOfType(client.WithdrawCancelledEventType))
}

func TestCancelWithdrawGatewayFailureAbortsWholeOperation(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 500)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, uint64(500)).Return(nil)
	cancelErr := types.NewErrorWithMsg(
		http.StatusInternalServerError, types.InternalServiceError, "gateway unavailable",
	)
	ts.gateway.On("CancelWithdraw", mock.Anything, uint64(500)).Return(cancelErr)

	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testDepositor, 500))

	err := ts.services.CancelWithdrawAndRedelegate(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, cancelErr, err)
	ts.gateway.AssertNotCalled(t, "Delegate", mock.Anything, mock.Anything)

	withdraw, statusErr := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, statusErr)
	assert.Equal(t, types.WithdrawScheduled.ToString(), withdraw.State)
}

func TestCancelWithdrawWithoutRequest(t *testing.T) {
	ts := newTestServices(t)

	err := ts.services.CancelWithdrawAndRedelegate(context.Background(), testDepositor)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.NotFound, err.ErrorCode)
	ts.gateway.AssertNotCalled(t, "CancelWithdraw", mock.Anything, mock.Anything)
}

// Amounts are never created or destroyed by schedule and cancel operations:
// what was unstaked is either still held by a request or has been cancelled
// back out.
func TestRequestAmountConservation(t *testing.T) {
	ts := newTestServices(t)
	seedExecutedUnstake(t, ts, testDepositor, 1000)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, mock.Anything).Return(nil)

	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testDepositor, 300))

	unstake, err := ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, err)
	withdraw, err := ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, err)
	assert.Equal(t, uint64(1000), unstake.Amount+withdraw.Amount)

	require.Nil(t, ts.services.ScheduleWithdraw(context.Background(), testDepositor, 700))

	// Scheduling again replaces the withdraw request rather than merging,
	// so the remaining unstake amount was drawn down and the previous 300
	// was overwritten, not added.
	unstake, err = ts.services.GetUnstakeRequestStatus(context.Background(), testDepositor)
	require.Nil(t, err)
	withdraw, err = ts.services.GetWithdrawRequestStatus(context.Background(), testDepositor)
	require.Nil(t, err)
	assert.Equal(t, types.UnstakeNone.ToString(), unstake.State)
	assert.Equal(t, uint64(700), withdraw.Amount)
}

// Operations on distinct depositors run concurrently without interference.
func TestDepositorIsolationUnderConcurrency(t *testing.T) {
	ts := newTestServices(t)
	ts.vault.On("MaxWithdraw", mock.Anything, mock.Anything).Return(uint64(1_000_000), nil)
	ts.gateway.On("ScheduleUnstake", mock.Anything, mock.Anything).Return(nil)
	ts.gateway.On("ScheduleWithdraw", mock.Anything, mock.Anything).Return(nil)
	ts.gateway.On("ExecuteWithdraw", mock.Anything).Return(nil)

	depositors := []string{
		"0x0000000000000000000000000000000000000001",
		"0x0000000000000000000000000000000000000002",
		"0x0000000000000000000000000000000000000003",
		"0x0000000000000000000000000000000000000004",
		"0x0000000000000000000000000000000000000005",
	}

	var wg sync.WaitGroup
	for i, depositor := range depositors {
		wg.Add(1)
		amount := uint64((i + 1) * 100)
		go func(depositor string, amount uint64) {
			defer wg.Done()
			ctx := context.Background()
			assert.Nil(t, ts.services.ScheduleUnstake(ctx, depositor, amount))
			assert.Nil(t, ts.services.MarkUnstakeRequestExecuted(ctx, depositor))
			assert.Nil(t, ts.services.ScheduleWithdraw(ctx, depositor, amount))
			assert.Nil(t, ts.services.ProcessWithdrawal(ctx, depositor, amount/2))
		}(depositor, amount)
	}
	wg.Wait()

	for i, depositor := range depositors {
		amount := uint64((i + 1) * 100)
		withdraw, err := ts.services.GetWithdrawRequestStatus(context.Background(), depositor)
		require.Nil(t, err)
		assert.Equal(t, amount-amount/2, withdraw.Amount,
			"depositor %s must end with exactly their own remainder", depositor)
	}
}
