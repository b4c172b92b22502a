// Package allocator provides the device-scoped memory allocator handle.
// One allocator is exclusively owned by each hardware context; its lifetime
// is bound to the context that constructed it.
package allocator

import (
	"fmt"

	"github.com/darkace1998/golang-hip-runtime/internal/hip"
)

// Allocator allocates memory on one device. It is not safe for concurrent
// use; callers serialize allocations per device.
type Allocator struct {
	device int
	driver hip.Driver
}

// New binds an allocator to the given device index.
func New(driver hip.Driver, device int) *Allocator {
	return &Allocator{device: device, driver: driver}
}

// Device returns the backend device index this allocator is bound to.
func (a *Allocator) Device() int { return a.device }

// Allocate reserves size bytes of device memory.
func (a *Allocator) Allocate(size uint64) (uintptr, error) {
	if err := a.driver.SetDevice(a.device); err != nil {
		return 0, fmt.Errorf("failed to select device %d: %w", a.device, err)
	}
	ptr, err := a.driver.MemAlloc(size)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %d bytes on device %d: %w", size, a.device, err)
	}
	return ptr, nil
}

// Free releases device memory previously returned by Allocate.
func (a *Allocator) Free(ptr uintptr) error {
	if err := a.driver.SetDevice(a.device); err != nil {
		return fmt.Errorf("failed to select device %d: %w", a.device, err)
	}
	if err := a.driver.MemFree(ptr); err != nil {
		return fmt.Errorf("failed to free device memory: %w", err)
	}
	return nil
}

// MemInfo reports free and total memory on the bound device.
func (a *Allocator) MemInfo() (free, total uint64, err error) {
	if err := a.driver.SetDevice(a.device); err != nil {
		return 0, 0, fmt.Errorf("failed to select device %d: %w", a.device, err)
	}
	return a.driver.MemGetInfo()
}
