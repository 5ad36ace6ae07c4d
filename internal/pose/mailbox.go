package pose

import (
	"sync"
	"time"
)

// DefaultMaxAge is how long a sample stays fresh. A sample older than
// this reads as "no person detected" so a stalled estimator degrades the
// game to a resting state instead of replaying its last frame forever.
const DefaultMaxAge = 500 * time.Millisecond

// Mailbox is a single-slot latest-sample buffer between an asynchronous
// pose source and the synchronous frame loop. The writer overwrites, the
// reader never blocks; only the most recent sample matters.
type Mailbox struct {
	mu     sync.Mutex
	sample *Sample
	at     time.Time
	maxAge time.Duration
	now    func() time.Time // injectable clock for tests
}

// NewMailbox creates an empty mailbox with the default staleness window.
func NewMailbox() *Mailbox {
	return &Mailbox{
		maxAge: DefaultMaxAge,
		now:    time.Now,
	}
}

// SetMaxAge overrides the staleness window. Zero disables expiry.
func (m *Mailbox) SetMaxAge(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxAge = d
}

// Publish stores a new sample, replacing whatever was there. A nil
// sample explicitly marks "no person detected".
func (m *Mailbox) Publish(s *Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sample = s
	m.at = m.now()
}

// Latest returns the most recently published sample, or nil if nothing
// has been published or the last sample has gone stale.
func (m *Mailbox) Latest() *Sample {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sample == nil {
		return nil
	}
	if m.maxAge > 0 && m.now().Sub(m.at) > m.maxAge {
		return nil
	}
	return m.sample
}
