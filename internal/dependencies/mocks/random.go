package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/wordshop/internal/dependencies/random"
)

// MockRandom replays queued values, safe for concurrent use.
// With nothing queued Intn returns 0, which makes a shuffle rotate the pool,
// and UUID hands out sequential placeholder IDs.
type MockRandom struct {
	mu    sync.Mutex
	intns []int
	uuids []string
	count int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued value, clamped to 0 when it falls outside
// [0, n)
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.intns) == 0 || n <= 0 {
		return 0
	}
	v := r.intns[0]
	r.intns = r.intns[1:]
	if v < 0 || v >= n {
		return 0
	}
	return v
}

// UUID returns the next queued ID, or a placeholder once the queue is empty
func (r *MockRandom) UUID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.uuids) > 0 {
		id := r.uuids[0]
		r.uuids = r.uuids[1:]
		return id
	}
	r.count++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", r.count)
}

// QueueIntn adds values for Intn to return, in order
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intns = append(r.intns, values...)
}

// QueueUUID adds IDs for UUID to return, in order
func (r *MockRandom) QueueUUID(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uuids = append(r.uuids, values...)
}
