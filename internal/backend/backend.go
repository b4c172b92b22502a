// Package backend ties the HIP driver, the hardware manager and the
// per-device resources together into the object upper runtime layers hold.
package backend

import (
	"github.com/darkace1998/golang-hip-runtime/internal/allocator"
	"github.com/darkace1998/golang-hip-runtime/internal/config"
	"github.com/darkace1998/golang-hip-runtime/internal/diag"
	"github.com/darkace1998/golang-hip-runtime/internal/hardware"
	"github.com/darkace1998/golang-hip-runtime/internal/hip"
)

// Backend owns the hardware manager for the HIP backend. Construction
// completes device discovery; the backend is immutable afterwards.
type Backend struct {
	manager *hardware.Manager
}

// New builds the HIP backend. Discovery failures degrade to an empty
// device list inside the manager, so New never fails.
func New(driver hip.Driver, cfg *config.RuntimeConfig, reporter diag.Reporter) *Backend {
	return &Backend{
		manager: hardware.NewManager(hardware.PlatformROCm, driver, cfg, reporter),
	}
}

// Name returns the human-readable backend name.
func (b *Backend) Name() string { return "HIP" }

// ID returns the unique backend identifier.
func (b *Backend) ID() hardware.BackendID { return hardware.BackendHIP }

// APIPlatform returns the driver API this backend uses.
func (b *Backend) APIPlatform() hardware.APIPlatform { return hardware.APIHIP }

// HardwarePlatform returns the hardware family this backend drives.
func (b *Backend) HardwarePlatform() hardware.Platform { return hardware.PlatformROCm }

// HardwareManager returns the device enumerator.
func (b *Backend) HardwareManager() *hardware.Manager { return b.manager }

// Allocator returns the allocator bound to the identified device, or nil
// when the identity does not name a discovered device.
func (b *Backend) Allocator(dev hardware.DeviceID) *allocator.Allocator {
	ctx := b.manager.Device(dev.ID)
	if ctx == nil {
		return nil
	}
	return ctx.Allocator()
}
