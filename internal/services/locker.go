package services

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 256

// depositorLocker serializes the orchestration of operations for a single
// depositor. The ledger guards every write with state filters, but a gateway
// call and its matching ledger write must not interleave with another
// operation on the same depositor. Locks are striped by a hash of the
// depositor address so distinct depositors stay concurrent.
type depositorLocker struct {
	stripes [lockStripes]sync.Mutex
}

func newDepositorLocker() *depositorLocker {
	return &depositorLocker{}
}

// lock acquires the stripe for the given depositor and returns the matching
// unlock func.
func (l *depositorLocker) lock(depositorAddress string) func() {
	h := fnv.New32a()
	h.Write([]byte(depositorAddress))
	stripe := &l.stripes[h.Sum32()%lockStripes]
	stripe.Lock()
	return stripe.Unlock
}
