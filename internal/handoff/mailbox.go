// Package handoff passes single-use draft records between views that share no
// in-memory state. Each slot is a mailbox holding at most one message.
package handoff

import (
	"context"
	"sync"
	"time"
)

// Mailbox stores at most one payload per key.
type Mailbox interface {
	// Put overwrites whatever is pending under key.
	Put(ctx context.Context, key string, payload []byte) error
	// Take returns the pending payload and removes it in the same step.
	Take(ctx context.Context, key string) ([]byte, bool, error)
}

// MemoryMailbox keeps slots in process memory. The zero value is ready to use
// and keeps records until they are read.
type MemoryMailbox struct {
	mu    sync.Mutex
	slots map[string]memorySlot
	ttl   time.Duration
	now   func() time.Time
}

type memorySlot struct {
	payload []byte
	expires time.Time
}

// NewMemoryMailbox builds a mailbox; a zero ttl keeps records until they are read.
func NewMemoryMailbox(ttl time.Duration) *MemoryMailbox {
	return &MemoryMailbox{ttl: ttl, now: time.Now}
}

func (m *MemoryMailbox) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

func (s memorySlot) expired(now time.Time) bool {
	return !s.expires.IsZero() && !now.Before(s.expires)
}

func (m *MemoryMailbox) Put(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slots == nil {
		m.slots = make(map[string]memorySlot)
	}

	now := m.clock()
	slot := memorySlot{payload: append([]byte(nil), payload...)}
	if m.ttl > 0 {
		slot.expires = now.Add(m.ttl)
		// drop abandoned slots so sessions that never read do not accumulate
		for k, s := range m.slots {
			if s.expired(now) {
				delete(m.slots, k)
			}
		}
	}
	m.slots[key] = slot
	return nil
}

func (m *MemoryMailbox) Take(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	delete(m.slots, key)
	if slot.expired(m.clock()) {
		return nil, false, nil
	}
	return slot.payload, true, nil
}

// Len reports how many slots are pending.
func (m *MemoryMailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}
