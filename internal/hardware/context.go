package hardware

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/darkace1998/golang-hip-runtime/internal/allocator"
	"github.com/darkace1998/golang-hip-runtime/internal/diag"
	"github.com/darkace1998/golang-hip-runtime/internal/eventpool"
	"github.com/darkace1998/golang-hip-runtime/internal/hip"
)

const contextOrigin = "hardware.Context"

// Context holds one device's property snapshot and answers the typed
// capability queries. The snapshot is captured once at construction and
// never re-queried, so all query methods are pure functions over immutable
// state and safe for concurrent use.
type Context struct {
	device   int
	props    hip.DeviceProperties
	arch     uint64
	alloc    *allocator.Allocator
	events   *eventpool.Pool
	driver   hip.Driver
	reporter diag.Reporter
}

// newContext fetches the property snapshot for one device and eagerly
// attaches the device-scoped allocator and event pool. A failed property
// query leaves a zeroed snapshot behind a diagnostic report; construction
// itself never fails.
func newContext(driver hip.Driver, device int, reporter diag.Reporter) *Context {
	ctx := &Context{
		device:   device,
		driver:   driver,
		reporter: reporter,
	}

	props, err := driver.GetDeviceProperties(device)
	if err != nil {
		reportDriverFailure(reporter, diag.KindPropertyQueryFailure,
			"Could not query device properties", err)
	} else {
		ctx.props = *props
	}

	ctx.alloc = allocator.New(driver, device)
	ctx.events = eventpool.New(driver, device)
	ctx.arch = ParseArchCode(ctx.props.GCNArchName)

	return ctx
}

func reportDriverFailure(reporter diag.Reporter, kind diag.Kind, msg string, err error) {
	var hipErr hip.Error
	if errors.As(err, &hipErr) {
		diag.WarnCode(reporter, kind, contextOrigin, msg, hipErr.Code())
		return
	}
	diag.Warn(reporter, kind, contextOrigin, msg+": "+err.Error())
}

// Allocator returns the memory allocator exclusively owned by this device.
func (c *Context) Allocator() *allocator.Allocator { return c.alloc }

// EventPool returns the event pool exclusively owned by this device.
func (c *Context) EventPool() *eventpool.Pool { return c.events }

// PlatformIndex returns the index of the logical platform this device
// belongs to. HIP exposes a single platform.
func (c *Context) PlatformIndex() int { return 0 }

// IsGPU reports whether the device is a GPU for the compiled target.
func (c *Context) IsGPU() bool { return targetIsGPU }

// IsCPU reports whether the device is a CPU for the compiled target.
func (c *Context) IsCPU() bool { return !c.IsGPU() }

// Name returns the vendor device name from the snapshot.
func (c *Context) Name() string { return c.props.Name }

// Vendor returns the vendor name for the compiled backend target.
func (c *Context) Vendor() string { return targetVendorName }

// Arch returns the raw vendor architecture string.
func (c *Context) Arch() string { return c.props.GCNArchName }

// ArchCode returns the normalized numeric architecture, 0 when unknown.
func (c *Context) ArchCode() uint64 { return c.arch }

// MaxKernelConcurrency reports how many kernels can run concurrently. The
// driver exposes a binary concurrent-kernels flag; the +1 models the
// default stream that is always present.
func (c *Context) MaxKernelConcurrency() uint64 {
	return uint64(c.props.ConcurrentKernels) + 1
}

// MaxMemcpyConcurrency reports how many transfers can run concurrently.
func (c *Context) MaxMemcpyConcurrency() uint64 {
	return c.MaxKernelConcurrency()
}

// DriverVersion queries the driver version and returns it in decimal string
// form. A failed query is reported and yields "0".
func (c *Context) DriverVersion() string {
	version, err := c.driver.DriverGetVersion()
	if err != nil {
		reportDriverFailure(c.reporter, diag.KindDriverQueryFailure,
			"Querying driver version failed", err)
		version = 0
	}
	return strconv.Itoa(version)
}

// Profile identifies the conformance profile this device supports.
func (c *Context) Profile() string { return "FULL_PROFILE" }

// Has answers one boolean support aspect. Every tag in the closed set has
// an answer; an unhandled tag means the enum grew without this table being
// updated, which is a defect, not a runtime condition.
func (c *Context) Has(aspect Aspect) bool {
	switch aspect {
	case AspectEmulatedLocalMemory:
		return false
	case AspectHostUnifiedMemory:
		return false
	case AspectErrorCorrection:
		return c.props.ECCEnabled != 0
	case AspectGlobalMemCache:
		return true
	case AspectGlobalMemCacheReadOnly:
		return false
	case AspectGlobalMemCacheReadWrite:
		// AMD GPUs have had a read/write cache since the first GCN parts.
		return true
	case AspectImages:
		return false
	case AspectLittleEndian:
		return true
	case AspectSubGroupIndependentForwardProgress:
		return true
	case AspectWorkItemIndependentForwardProgress:
		return false
	case AspectUSMDeviceAllocations:
		return true
	case AspectUSMHostAllocations:
		return true
	case AspectUSMAtomicHostAllocations:
		return false
	case AspectUSMSharedAllocations:
		return true
	case AspectUSMAtomicSharedAllocations:
		return false
	case AspectUSMSystemAllocations:
		return false
	case AspectExecutionTimestamps:
		return true
	case AspectJITKernels:
		return targetJITKernels
	}
	panic(fmt.Sprintf("hardware: unknown device aspect %d", int(aspect)))
}

// Uint answers one scalar property. Limits the backend does not expose are
// reported as the maximum representable value where zero would falsely mean
// "nothing can be allocated", and as zero for genuinely absent features.
func (c *Context) Uint(prop UintProperty) uint64 {
	switch prop {
	case PropMaxComputeUnits:
		return uint64(c.props.MultiProcessorCount)
	case PropMaxGlobalSize0:
		return uint64(c.props.MaxThreadsDim[0]) * uint64(c.props.MaxGridSize[0])
	case PropMaxGlobalSize1:
		return uint64(c.props.MaxThreadsDim[1]) * uint64(c.props.MaxGridSize[1])
	case PropMaxGlobalSize2:
		return uint64(c.props.MaxThreadsDim[2]) * uint64(c.props.MaxGridSize[2])
	case PropMaxGroupSize0:
		return uint64(c.props.MaxThreadsDim[0])
	case PropMaxGroupSize1:
		return uint64(c.props.MaxThreadsDim[1])
	case PropMaxGroupSize2:
		return uint64(c.props.MaxThreadsDim[2])
	case PropMaxGroupSize:
		return uint64(c.props.MaxThreadsPerBlock)
	case PropMaxNumSubGroups:
		if c.props.WarpSize == 0 {
			return 0
		}
		return uint64(c.props.MaxThreadsPerBlock / c.props.WarpSize)
	case PropNeedsDimensionFlip:
		return 1
	case PropPreferredVectorWidthChar, PropNativeVectorWidthChar:
		return 4
	case PropPreferredVectorWidthDouble, PropNativeVectorWidthDouble:
		return 1
	case PropPreferredVectorWidthFloat, PropNativeVectorWidthFloat:
		return 1
	case PropPreferredVectorWidthHalf, PropNativeVectorWidthHalf:
		return 2
	case PropPreferredVectorWidthInt, PropNativeVectorWidthInt:
		return 1
	case PropPreferredVectorWidthLong, PropNativeVectorWidthLong:
		return 1
	case PropPreferredVectorWidthShort, PropNativeVectorWidthShort:
		return 2
	case PropMaxClockSpeed:
		return uint64(c.props.ClockRateKHz) / 1000
	case PropMaxMallocSize:
		return c.props.TotalGlobalMem
	case PropAddressBits:
		return 64
	case PropMaxReadImageArgs, PropMaxWriteImageArgs:
		return 0
	case PropImage2DMaxWidth, PropImage2DMaxHeight:
		return 0
	case PropImage3DMaxWidth, PropImage3DMaxHeight, PropImage3DMaxDepth:
		return 0
	case PropImageMaxBufferSize, PropImageMaxArraySize:
		return 0
	case PropMaxSamplers:
		return 0
	case PropMaxParameterSize:
		return math.MaxUint64
	case PropMemBaseAddrAlign:
		return 8
	case PropGlobalMemCacheLineSize:
		return 128
	case PropGlobalMemCacheSize:
		return c.props.L2CacheSize
	case PropGlobalMemSize:
		return c.props.TotalGlobalMem
	case PropMaxConstantBufferSize:
		return c.props.TotalConstMem
	case PropMaxConstantArgs:
		return math.MaxUint64
	case PropLocalMemSize:
		return c.props.SharedMemPerBlock
	case PropPrintfBufferSize:
		return math.MaxUint64
	case PropPartitionMaxSubDevices:
		return 0
	case PropVendorID:
		return 1022
	case PropArchitecture:
		return c.arch
	case PropBackendID:
		return uint64(BackendHIP)
	}
	panic(fmt.Sprintf("hardware: unknown device property %d", int(prop)))
}

// UintList answers one list-valued property.
func (c *Context) UintList(prop UintListProperty) []uint64 {
	switch prop {
	case PropSubGroupSizes:
		return []uint64{uint64(c.props.WarpSize)}
	}
	panic(fmt.Sprintf("hardware: unknown device list property %d", int(prop)))
}
