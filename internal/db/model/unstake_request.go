package model

import (
	"github.com/omnistake/vault-adapter-service/internal/types"
)

// UnstakeRequestDocument tracks the single in-flight unstake request of a
// depositor. Scheduling while one already exists overwrites it in place,
// so the depositor address doubles as the primary key.
type UnstakeRequestDocument struct {
	DepositorAddress string             `bson:"_id"` // Primary key
	Amount           uint64             `bson:"amount"`
	Timestamp        int64              `bson:"timestamp"`
	State            types.UnstakeState `bson:"state"`
}
