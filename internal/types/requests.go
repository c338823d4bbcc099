package types

import "fmt"

type UnstakeState string

const (
	UnstakeNone      UnstakeState = "none"
	UnstakeScheduled UnstakeState = "scheduled"
	UnstakeExecuted  UnstakeState = "executed"
)

func (s UnstakeState) ToString() string {
	return string(s)
}

func FromStringToUnstakeState(s string) (UnstakeState, error) {
	switch s {
	case "none":
		return UnstakeNone, nil
	case "scheduled":
		return UnstakeScheduled, nil
	case "executed":
		return UnstakeExecuted, nil
	default:
		return "", fmt.Errorf("invalid unstake request state: %s", s)
	}
}

type WithdrawState string

const (
	WithdrawNone      WithdrawState = "none"
	WithdrawScheduled WithdrawState = "scheduled"
	// WithdrawReady is reserved for gateways that settle withdrawals
	// asynchronously. No transition in this service produces it yet.
	WithdrawReady WithdrawState = "ready"
)

func (s WithdrawState) ToString() string {
	return string(s)
}

func FromStringToWithdrawState(s string) (WithdrawState, error) {
	switch s {
	case "none":
		return WithdrawNone, nil
	case "scheduled":
		return WithdrawScheduled, nil
	case "ready":
		return WithdrawReady, nil
	default:
		return "", fmt.Errorf("invalid withdraw request state: %s", s)
	}
}
