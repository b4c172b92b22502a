package allocator

import (
	"testing"

	"github.com/darkace1998/golang-hip-runtime/internal/hip"
)

// memDriver tracks which device memory calls were issued against.
type memDriver struct {
	selected    int
	allocations map[uintptr]uint64
	next        uintptr
	allocErr    error
}

func newMemDriver() *memDriver {
	return &memDriver{selected: -1, allocations: map[uintptr]uint64{}}
}

func (d *memDriver) GetDeviceCount() (int, error) { return 1, nil }
func (d *memDriver) GetDeviceProperties(device int) (*hip.DeviceProperties, error) {
	return &hip.DeviceProperties{}, nil
}
func (d *memDriver) DriverGetVersion() (int, error) { return 0, nil }

func (d *memDriver) SetDevice(device int) error {
	d.selected = device
	return nil
}

func (d *memDriver) MemGetInfo() (uint64, uint64, error) {
	return 32 << 30, 64 << 30, nil
}

func (d *memDriver) MemAlloc(size uint64) (uintptr, error) {
	if d.allocErr != nil {
		return 0, d.allocErr
	}
	d.next++
	d.allocations[d.next] = size
	return d.next, nil
}

func (d *memDriver) MemFree(ptr uintptr) error {
	if _, ok := d.allocations[ptr]; !ok {
		return hip.ErrInvalidValue
	}
	delete(d.allocations, ptr)
	return nil
}

func (d *memDriver) EventCreate() (hip.Event, error) { return 1, nil }
func (d *memDriver) EventDestroy(ev hip.Event) error { return nil }

func TestAllocator_AllocateSelectsBoundDevice(t *testing.T) {
	driver := newMemDriver()
	alloc := New(driver, 2)

	ptr, err := alloc.Allocate(4096)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if driver.selected != 2 {
		t.Errorf("allocation ran on device %d, want 2", driver.selected)
	}
	if got := driver.allocations[ptr]; got != 4096 {
		t.Errorf("allocated %d bytes, want 4096", got)
	}
}

func TestAllocator_FreeReleases(t *testing.T) {
	driver := newMemDriver()
	alloc := New(driver, 0)

	ptr, err := alloc.Allocate(128)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if err := alloc.Free(ptr); err != nil {
		t.Fatalf("Free() error = %v", err)
	}
	if len(driver.allocations) != 0 {
		t.Errorf("%d allocations left after Free", len(driver.allocations))
	}
}

func TestAllocator_AllocateError(t *testing.T) {
	driver := newMemDriver()
	driver.allocErr = hip.ErrOutOfMemory
	alloc := New(driver, 0)

	if _, err := alloc.Allocate(1 << 40); err == nil {
		t.Error("Allocate() did not propagate the driver error")
	}
}

func TestAllocator_MemInfo(t *testing.T) {
	alloc := New(newMemDriver(), 1)

	free, total, err := alloc.MemInfo()
	if err != nil {
		t.Fatalf("MemInfo() error = %v", err)
	}
	if free != 32<<30 || total != 64<<30 {
		t.Errorf("MemInfo() = (%d, %d)", free, total)
	}
}

func TestAllocator_Device(t *testing.T) {
	alloc := New(newMemDriver(), 5)
	if got := alloc.Device(); got != 5 {
		t.Errorf("Device() = %d, want 5", got)
	}
}
