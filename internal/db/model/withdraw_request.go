package model

import (
	"github.com/omnistake/vault-adapter-service/internal/types"
)

// WithdrawRequestDocument tracks the single in-flight withdraw request of a
// depositor. Vault withdrawals draw the amount down and the document is
// removed once it reaches zero.
type WithdrawRequestDocument struct {
	DepositorAddress string              `bson:"_id"` // Primary key
	Amount           uint64              `bson:"amount"`
	Timestamp        int64               `bson:"timestamp"`
	State            types.WithdrawState `bson:"state"`
}
