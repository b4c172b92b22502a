// Package eventpool recycles driver event handles for one device. Creating
// events through the driver is comparatively expensive, so released handles
// go back on a free list instead of being destroyed.
package eventpool

import (
	"fmt"
	"sync"

	"github.com/darkace1998/golang-hip-runtime/internal/hip"
)

// Pool is a free list of event handles bound to one device. It is safe for
// concurrent use.
type Pool struct {
	device int
	driver hip.Driver

	mu   sync.Mutex
	free []hip.Event
}

// New binds an event pool to the given device index.
func New(driver hip.Driver, device int) *Pool {
	return &Pool{device: device, driver: driver}
}

// Device returns the backend device index this pool is bound to.
func (p *Pool) Device() int { return p.device }

// Acquire returns a pooled event handle, creating a fresh one when the free
// list is empty.
func (p *Pool) Acquire() (hip.Event, error) {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		ev := p.free[n-1]
		p.free = p.free[:n-1]
		p.mu.Unlock()
		return ev, nil
	}
	p.mu.Unlock()

	if err := p.driver.SetDevice(p.device); err != nil {
		return 0, fmt.Errorf("failed to select device %d: %w", p.device, err)
	}
	ev, err := p.driver.EventCreate()
	if err != nil {
		return 0, fmt.Errorf("failed to create event on device %d: %w", p.device, err)
	}
	return ev, nil
}

// Release returns an event handle to the pool for reuse.
func (p *Pool) Release(ev hip.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, ev)
}

// Close destroys every pooled handle. The pool must not be used afterwards.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for _, ev := range p.free {
		if err := p.driver.EventDestroy(ev); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to destroy pooled event: %w", err)
		}
	}
	p.free = nil
	return firstErr
}
