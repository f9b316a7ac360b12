package manager

import (
	"context"
	"time"
)

// execSlots bounds the callers queued on one version's module.
type execSlots struct {
	queueCh chan struct{}
	callCh  chan struct{}
}

func (m *Manager) slotsFor(version string) *execSlots {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.slots[version]
	if s == nil {
		s = &execSlots{
			queueCh: make(chan struct{}, m.maxQueueDepth),
			callCh:  make(chan struct{}, 1),
		}
		m.slots[version] = s
	}
	return s
}

// beginExec reserves a queue slot and then the single in-flight slot.
// Returns a release func to be deferred.
func (m *Manager) beginExec(ctx context.Context, version string) (func(), error) {
	s := m.slotsFor(version)

	// Try to reserve a queue slot with timeout
	select {
	case s.queueCh <- struct{}{}:
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-time.After(m.maxWait):
		return func() {}, tooBusyError{version: version}
	}

	// Wait to acquire the single in-flight slot
	acquired := false
	defer func() {
		if !acquired {
			<-s.queueCh
		}
	}()
	select {
	case s.callCh <- struct{}{}:
		acquired = true
		return func() { <-s.callCh; <-s.queueCh }, nil
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-time.After(m.maxWait):
		return func() {}, tooBusyError{version: version}
	}
}
