package hardware

import (
	"github.com/darkace1998/golang-hip-runtime/internal/hip"
)

// fakeDriver is a scriptable hip.Driver for tests.
type fakeDriver struct {
	count      int
	countErr   error
	props      map[int]*hip.DeviceProperties
	propsErr   map[int]error
	version    int
	versionErr error

	propCalls    int
	versionCalls int
}

func (f *fakeDriver) GetDeviceCount() (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func (f *fakeDriver) GetDeviceProperties(device int) (*hip.DeviceProperties, error) {
	f.propCalls++
	if err, ok := f.propsErr[device]; ok {
		return nil, err
	}
	if props, ok := f.props[device]; ok {
		return props, nil
	}
	return nil, hip.ErrInvalidDevice
}

func (f *fakeDriver) DriverGetVersion() (int, error) {
	f.versionCalls++
	if f.versionErr != nil {
		return 0, f.versionErr
	}
	return f.version, nil
}

func (f *fakeDriver) SetDevice(device int) error { return nil }

func (f *fakeDriver) MemGetInfo() (uint64, uint64, error) { return 0, 0, nil }

func (f *fakeDriver) MemAlloc(size uint64) (uintptr, error) { return 1, nil }

func (f *fakeDriver) MemFree(ptr uintptr) error { return nil }

func (f *fakeDriver) EventCreate() (hip.Event, error) { return 1, nil }

func (f *fakeDriver) EventDestroy(ev hip.Event) error { return nil }

// gfx90aProps returns a realistic MI200-class property snapshot.
func gfx90aProps() *hip.DeviceProperties {
	return &hip.DeviceProperties{
		Name:                "AMD Instinct MI210",
		GCNArchName:         "gfx90a:sramecc+:xnack-",
		MultiProcessorCount: 104,
		MaxThreadsPerBlock:  1024,
		MaxThreadsDim:       [3]int{1024, 1024, 1024},
		MaxGridSize:         [3]int{2147483647, 65536, 65536},
		WarpSize:            64,
		ClockRateKHz:        1700000,
		TotalGlobalMem:      64 << 30,
		SharedMemPerBlock:   64 << 10,
		TotalConstMem:       2 << 30,
		L2CacheSize:         8 << 20,
		ConcurrentKernels:   1,
		ECCEnabled:          1,
	}
}
