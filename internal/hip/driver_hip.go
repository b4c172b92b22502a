//go:build hip

package hip

/*
#cgo LDFLAGS: -lamdhip64
#define __HIP_PLATFORM_AMD__
#include <hip/hip_runtime_api.h>
#include <stdlib.h>
*/
import "C"

import (
	"log/slog"
	"unsafe"
)

// RuntimeDriver talks to the installed HIP runtime via cgo.
type RuntimeDriver struct{}

// NewDriver returns a driver bound to the system HIP runtime.
func NewDriver() Driver {
	return &RuntimeDriver{}
}

func wrap(status C.hipError_t) error {
	if status == C.hipSuccess {
		return nil
	}
	return Error(status)
}

func (d *RuntimeDriver) GetDeviceCount() (int, error) {
	var count C.int
	if err := wrap(C.hipGetDeviceCount(&count)); err != nil {
		return 0, err
	}
	return int(count), nil
}

func (d *RuntimeDriver) GetDeviceProperties(device int) (*DeviceProperties, error) {
	var props C.hipDeviceProp_t
	if err := wrap(C.hipGetDeviceProperties(&props, C.int(device))); err != nil {
		return nil, err
	}

	out := &DeviceProperties{
		Name:                C.GoString(&props.name[0]),
		GCNArchName:         C.GoString(&props.gcnArchName[0]),
		MultiProcessorCount: int(props.multiProcessorCount),
		MaxThreadsPerBlock:  int(props.maxThreadsPerBlock),
		WarpSize:            int(props.warpSize),
		ClockRateKHz:        int(props.clockRate),
		TotalGlobalMem:      uint64(props.totalGlobalMem),
		SharedMemPerBlock:   uint64(props.sharedMemPerBlock),
		TotalConstMem:       uint64(props.totalConstMem),
		L2CacheSize:         uint64(props.l2CacheSize),
		ConcurrentKernels:   int(props.concurrentKernels),
		Integrated:          int(props.integrated),
		ECCEnabled:          int(props.ECCEnabled),
	}
	for i := 0; i < 3; i++ {
		out.MaxThreadsDim[i] = int(props.maxThreadsDim[i])
		out.MaxGridSize[i] = int(props.maxGridSize[i])
	}

	slog.Debug("Queried HIP device properties",
		"device", device,
		"name", out.Name,
		"arch", out.GCNArchName,
	)

	return out, nil
}

func (d *RuntimeDriver) DriverGetVersion() (int, error) {
	var version C.int
	if err := wrap(C.hipDriverGetVersion(&version)); err != nil {
		return 0, err
	}
	return int(version), nil
}

func (d *RuntimeDriver) SetDevice(device int) error {
	return wrap(C.hipSetDevice(C.int(device)))
}

func (d *RuntimeDriver) MemGetInfo() (uint64, uint64, error) {
	var free, total C.size_t
	if err := wrap(C.hipMemGetInfo(&free, &total)); err != nil {
		return 0, 0, err
	}
	return uint64(free), uint64(total), nil
}

func (d *RuntimeDriver) MemAlloc(size uint64) (uintptr, error) {
	var ptr unsafe.Pointer
	if err := wrap(C.hipMalloc(&ptr, C.size_t(size))); err != nil {
		return 0, err
	}
	return uintptr(ptr), nil
}

func (d *RuntimeDriver) MemFree(ptr uintptr) error {
	return wrap(C.hipFree(unsafe.Pointer(ptr)))
}

func (d *RuntimeDriver) EventCreate() (Event, error) {
	var ev C.hipEvent_t
	if err := wrap(C.hipEventCreate(&ev)); err != nil {
		return 0, err
	}
	return Event(uintptr(unsafe.Pointer(ev))), nil
}

func (d *RuntimeDriver) EventDestroy(ev Event) error {
	return wrap(C.hipEventDestroy(C.hipEvent_t(unsafe.Pointer(uintptr(ev)))))
}
