// Package hip wraps the HIP driver API behind a narrow interface so the
// hardware layer can be exercised against a real driver or a test fake.
package hip

import "fmt"

// HIP error codes consumed by this layer.
const (
	Success           Error = 0
	ErrInvalidValue   Error = 1
	ErrOutOfMemory    Error = 2
	ErrNotInitialized Error = 3
	ErrNoDevice       Error = 100
	ErrInvalidDevice  Error = 101
	ErrNotSupported   Error = 801
)

// Error is a HIP status code. The zero value means success and is never
// returned as an error.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("hip error %d (%s)", int(e), e.name())
}

// Code returns the raw driver status code for diagnostic reports.
func (e Error) Code() int { return int(e) }

func (e Error) name() string {
	switch e {
	case Success:
		return "hipSuccess"
	case ErrInvalidValue:
		return "hipErrorInvalidValue"
	case ErrOutOfMemory:
		return "hipErrorOutOfMemory"
	case ErrNotInitialized:
		return "hipErrorNotInitialized"
	case ErrNoDevice:
		return "hipErrorNoDevice"
	case ErrInvalidDevice:
		return "hipErrorInvalidDevice"
	case ErrNotSupported:
		return "hipErrorNotSupported"
	default:
		return "unknown"
	}
}

// Event is an opaque driver event handle owned by an event pool.
type Event uintptr

// DeviceProperties is the per-device property snapshot returned by the
// driver. Fields mirror the driver's property struct; a zero value is the
// documented degraded snapshot when the query fails.
type DeviceProperties struct {
	Name                string
	GCNArchName         string // e.g. "gfx90a" or "gfx1030:xnack-"
	MultiProcessorCount int
	MaxThreadsPerBlock  int
	MaxThreadsDim       [3]int
	MaxGridSize         [3]int
	WarpSize            int
	ClockRateKHz        int
	TotalGlobalMem      uint64
	SharedMemPerBlock   uint64
	TotalConstMem       uint64
	L2CacheSize         uint64
	ConcurrentKernels   int
	Integrated          int
	ECCEnabled          int
}

// Driver is the subset of the HIP runtime API this layer calls into. All
// methods are synchronous and return a typed driver error, or nil on
// success.
type Driver interface {
	// GetDeviceCount reports how many devices the driver exposes.
	// ErrNoDevice is an expected outcome on machines without hardware.
	GetDeviceCount() (int, error)

	// GetDeviceProperties fetches the property snapshot for one device.
	GetDeviceProperties(device int) (*DeviceProperties, error)

	// DriverGetVersion reports the installed driver version.
	DriverGetVersion() (int, error)

	// SetDevice selects the device subsequent memory calls operate on.
	SetDevice(device int) error

	// MemGetInfo reports free and total memory on the selected device.
	MemGetInfo() (free, total uint64, err error)

	// MemAlloc allocates device memory on the selected device.
	MemAlloc(size uint64) (uintptr, error)

	// MemFree releases device memory.
	MemFree(ptr uintptr) error

	// EventCreate creates an event handle on the selected device.
	EventCreate() (Event, error)

	// EventDestroy releases an event handle.
	EventDestroy(ev Event) error
}
