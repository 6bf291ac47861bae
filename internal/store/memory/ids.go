package memory

import (
	"sync/atomic"
	"time"
)

// idGenerator hands out unique, creation-ordered int64 IDs. The counter is
// seeded from the wall clock in milliseconds so IDs from separate process
// runs are unlikely to collide, and incremented atomically so IDs within a
// run never do.
type idGenerator struct {
	last atomic.Int64
}

func newIDGenerator() *idGenerator {
	g := &idGenerator{}
	g.last.Store(time.Now().UnixMilli())
	return g
}

// Next returns the next unique ID.
func (g *idGenerator) Next() int64 {
	return g.last.Add(1)
}
