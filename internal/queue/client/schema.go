package client

const (
	VaultEventsQueueName      string = "vault_events_queue"
	UnstakeExecutionQueueName string = "unstake_execution_queue"
)

type EventType int

const (
	AssetsDelegatedEventType   EventType = 1
	UnstakeScheduledEventType  EventType = 2
	UnstakeCancelledEventType  EventType = 3
	WithdrawScheduledEventType EventType = 4
	WithdrawCancelledEventType EventType = 5
	UnstakeExecutedEventType   EventType = 6
)

func (e EventType) String() string {
	switch e {
	case AssetsDelegatedEventType:
		return "assets_delegated"
	case UnstakeScheduledEventType:
		return "unstake_scheduled"
	case UnstakeCancelledEventType:
		return "unstake_cancelled"
	case WithdrawScheduledEventType:
		return "withdraw_scheduled"
	case WithdrawCancelledEventType:
		return "withdraw_cancelled"
	case UnstakeExecutedEventType:
		return "unstake_executed"
	default:
		return "unknown"
	}
}

// VaultEvent is published on the vault events queue after a successful ledger
// transition. Timestamp carries the advisory request timestamp for scheduling
// events and the emission time for everything else.
type VaultEvent struct {
	EventType        EventType `json:"event_type"`
	DepositorAddress string    `json:"depositor_address"`
	Amount           uint64    `json:"amount"`
	Timestamp        int64     `json:"timestamp"`
}

func NewVaultEvent(
	eventType EventType, depositorAddress string, amount uint64, timestamp int64,
) VaultEvent {
	return VaultEvent{
		EventType:        eventType,
		DepositorAddress: depositorAddress,
		Amount:           amount,
		Timestamp:        timestamp,
	}
}

// UnstakeExecutionEvent is consumed from the unstake execution queue once the
// delegation gateway has executed a scheduled unstake.
type UnstakeExecutionEvent struct {
	EventType        EventType `json:"event_type"` // always 6
	DepositorAddress string    `json:"depositor_address"`
	Amount           uint64    `json:"amount"`
}
