package hardware

import (
	"errors"
	"fmt"

	"github.com/darkace1998/golang-hip-runtime/internal/config"
	"github.com/darkace1998/golang-hip-runtime/internal/diag"
	"github.com/darkace1998/golang-hip-runtime/internal/hip"
)

const managerOrigin = "hardware.Manager"

// Manager enumerates the devices the HIP driver exposes and owns one
// Context per device. Discovery happens entirely inside NewManager; after
// construction the Manager is immutable and safe for concurrent reads.
type Manager struct {
	platform Platform
	reporter diag.Reporter
	devices  []*Context
}

// NewManager discovers all devices for the given hardware platform. A
// failing or empty driver yields a manager with zero devices, never an
// error: an unavailable backend and an empty one look the same upstream.
func NewManager(platform Platform, driver hip.Driver, cfg *config.RuntimeConfig, reporter diag.Reporter) *Manager {
	m := &Manager{
		platform: platform,
		reporter: reporter,
	}

	if cfg != nil && cfg.HasVisibilityMask(APIHIP.String()) {
		msg := "HIP backend does not support device visibility masks. Use HIP_VISIBLE_DEVICES instead."
		if selected := cfg.VisibleDevices(APIHIP.String()); len(selected) > 0 {
			msg = fmt.Sprintf("%s Ignoring selection %v.", msg, selected)
		}
		diag.Warn(reporter, diag.KindPolicyMismatch, managerOrigin, msg)
	}

	count, err := driver.GetDeviceCount()
	if err != nil {
		count = 0

		// No device present is a normal empty-fleet outcome and is not
		// reported at all.
		var hipErr hip.Error
		if errors.As(err, &hipErr) {
			if hipErr != hip.ErrNoDevice {
				diag.WarnCode(reporter, diag.KindEnumerationFailure, managerOrigin,
					"Could not obtain number of devices", hipErr.Code())
			}
		} else {
			diag.Warn(reporter, diag.KindEnumerationFailure, managerOrigin,
				"Could not obtain number of devices: "+err.Error())
		}
	}

	for dev := 0; dev < count; dev++ {
		m.devices = append(m.devices, newContext(driver, dev, reporter))
	}

	return m
}

// DeviceCount returns the number of successfully discovered devices.
func (m *Manager) DeviceCount() int {
	return len(m.devices)
}

// Device returns the context at index, or nil after reporting an invalid
// index. Contexts are stable: repeated calls return the same pointer.
func (m *Manager) Device(index int) *Context {
	if index < 0 || index >= len(m.devices) {
		diag.Warn(m.reporter, diag.KindInvalidIndex, managerOrigin,
			"Attempt to access invalid device detected.")
		return nil
	}
	return m.devices[index]
}

// DeviceID builds the identity triple for the device at index. An
// out-of-range index is reported, but the identity is still constructed
// best-effort from the requested value.
func (m *Manager) DeviceID(index int) DeviceID {
	if index < 0 || index >= len(m.devices) {
		diag.Warn(m.reporter, diag.KindInvalidIndex, managerOrigin,
			"Attempt to access invalid device detected.")
	}

	return DeviceID{
		Backend: BackendDescriptor{
			HardwarePlatform: m.platform,
			API:              APIHIP,
		},
		ID: index,
	}
}

// PlatformCount returns how many logical platforms this backend exposes.
// HIP always presents exactly one, regardless of device count.
func (m *Manager) PlatformCount() int {
	return 1
}
