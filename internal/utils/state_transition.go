package utils

import (
	"github.com/omnistake/vault-adapter-service/internal/types"
)

// QualifiedStatesToExecuteUnstake returns the qualified existing states to transition to "executed"
func QualifiedStatesToExecuteUnstake() []types.UnstakeState {
	return []types.UnstakeState{types.UnstakeScheduled}
}

// List of states to be ignored for unstake execution as it means it's already been processed
var OutdatedStatesForUnstakeExecution = []types.UnstakeState{types.UnstakeExecuted}

// QualifiedStatesToCancelUnstake returns the unstake request states that may still be cancelled
func QualifiedStatesToCancelUnstake() []types.UnstakeState {
	return []types.UnstakeState{types.UnstakeScheduled}
}

// QualifiedStatesToScheduleWithdraw returns the unstake request states that allow
// scheduling a withdrawal. The unstake must have been executed upstream first.
func QualifiedStatesToScheduleWithdraw() []types.UnstakeState {
	return []types.UnstakeState{types.UnstakeExecuted}
}

// QualifiedStatesToCancelWithdraw returns the withdraw request states that may still be cancelled
func QualifiedStatesToCancelWithdraw() []types.WithdrawState {
	return []types.WithdrawState{types.WithdrawScheduled}
}

// QualifiedStatesToConsumeWithdraw returns the withdraw request states a vault
// withdrawal is allowed to draw down
func QualifiedStatesToConsumeWithdraw() []types.WithdrawState {
	return []types.WithdrawState{types.WithdrawScheduled, types.WithdrawReady}
}
