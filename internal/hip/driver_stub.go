//go:build !hip

package hip

import "log/slog"

// RuntimeDriver is the stub driver used when HIP support is not compiled
// in. Every device query reports hipErrorNoDevice, so enumeration degrades
// to an empty fleet.
type RuntimeDriver struct{}

// NewDriver returns the stub driver.
func NewDriver() Driver {
	slog.Info("HIP support not compiled in, using stub driver")
	return &RuntimeDriver{}
}

func (d *RuntimeDriver) GetDeviceCount() (int, error) {
	return 0, ErrNoDevice
}

func (d *RuntimeDriver) GetDeviceProperties(device int) (*DeviceProperties, error) {
	return nil, ErrNoDevice
}

func (d *RuntimeDriver) DriverGetVersion() (int, error) {
	return 0, ErrNoDevice
}

func (d *RuntimeDriver) SetDevice(device int) error {
	return ErrNoDevice
}

func (d *RuntimeDriver) MemGetInfo() (uint64, uint64, error) {
	return 0, 0, ErrNoDevice
}

func (d *RuntimeDriver) MemAlloc(size uint64) (uintptr, error) {
	return 0, ErrNoDevice
}

func (d *RuntimeDriver) MemFree(ptr uintptr) error {
	return ErrNoDevice
}

func (d *RuntimeDriver) EventCreate() (Event, error) {
	return 0, ErrNoDevice
}

func (d *RuntimeDriver) EventDestroy(ev Event) error {
	return ErrNoDevice
}
