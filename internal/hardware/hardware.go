// Package hardware discovers the devices one backend exposes and normalizes
// their vendor-specific properties into a backend-agnostic capability model.
// The Manager enumerates devices once at construction; each discovered
// device gets an immutable Context answering the closed set of capability
// and property queries. Backend failures degrade to documented zero/empty
// values and a diagnostic report; they never surface as errors.
package hardware

// Platform identifies the hardware family a backend drives.
type Platform int

const (
	PlatformCPU Platform = iota
	PlatformCUDA
	PlatformROCm
	PlatformLevelZero
)

func (p Platform) String() string {
	switch p {
	case PlatformCPU:
		return "cpu"
	case PlatformCUDA:
		return "cuda"
	case PlatformROCm:
		return "rocm"
	case PlatformLevelZero:
		return "level_zero"
	default:
		return "unknown"
	}
}

// APIPlatform identifies the driver API used to reach the hardware.
type APIPlatform int

const (
	APIOpenMP APIPlatform = iota
	APICUDA
	APIHIP
	APILevelZero
)

func (a APIPlatform) String() string {
	switch a {
	case APIOpenMP:
		return "omp"
	case APICUDA:
		return "cuda"
	case APIHIP:
		return "hip"
	case APILevelZero:
		return "level_zero"
	default:
		return "unknown"
	}
}

// BackendID uniquely identifies one backend across the runtime.
type BackendID int

const (
	BackendOpenMP BackendID = iota
	BackendCUDA
	BackendHIP
	BackendLevelZero
)

// BackendDescriptor pairs the hardware family with the driver API that
// reaches it.
type BackendDescriptor struct {
	HardwarePlatform Platform
	API              APIPlatform
}

// DeviceID identifies one device for the lifetime of the process. Equality
// is structural: the same (descriptor, index) triple names the same device.
type DeviceID struct {
	Backend BackendDescriptor
	ID      int
}

// Aspect is one boolean support query from the closed capability set.
type Aspect int

const (
	AspectEmulatedLocalMemory Aspect = iota
	AspectHostUnifiedMemory
	AspectErrorCorrection
	AspectGlobalMemCache
	AspectGlobalMemCacheReadOnly
	AspectGlobalMemCacheReadWrite
	AspectImages
	AspectLittleEndian
	AspectSubGroupIndependentForwardProgress
	AspectWorkItemIndependentForwardProgress
	AspectUSMDeviceAllocations
	AspectUSMHostAllocations
	AspectUSMAtomicHostAllocations
	AspectUSMSharedAllocations
	AspectUSMAtomicSharedAllocations
	AspectUSMSystemAllocations
	AspectExecutionTimestamps
	AspectJITKernels
)

// UintProperty is one scalar property query from the closed property set.
type UintProperty int

const (
	PropMaxComputeUnits UintProperty = iota
	PropMaxGlobalSize0
	PropMaxGlobalSize1
	PropMaxGlobalSize2
	PropMaxGroupSize0
	PropMaxGroupSize1
	PropMaxGroupSize2
	PropMaxGroupSize
	PropMaxNumSubGroups
	PropNeedsDimensionFlip
	PropPreferredVectorWidthChar
	PropPreferredVectorWidthDouble
	PropPreferredVectorWidthFloat
	PropPreferredVectorWidthHalf
	PropPreferredVectorWidthInt
	PropPreferredVectorWidthLong
	PropPreferredVectorWidthShort
	PropNativeVectorWidthChar
	PropNativeVectorWidthDouble
	PropNativeVectorWidthFloat
	PropNativeVectorWidthHalf
	PropNativeVectorWidthInt
	PropNativeVectorWidthLong
	PropNativeVectorWidthShort
	PropMaxClockSpeed
	PropMaxMallocSize
	PropAddressBits
	PropMaxReadImageArgs
	PropMaxWriteImageArgs
	PropImage2DMaxWidth
	PropImage2DMaxHeight
	PropImage3DMaxWidth
	PropImage3DMaxHeight
	PropImage3DMaxDepth
	PropImageMaxBufferSize
	PropImageMaxArraySize
	PropMaxSamplers
	PropMaxParameterSize
	PropMemBaseAddrAlign
	PropGlobalMemCacheLineSize
	PropGlobalMemCacheSize
	PropGlobalMemSize
	PropMaxConstantBufferSize
	PropMaxConstantArgs
	PropLocalMemSize
	PropPrintfBufferSize
	PropPartitionMaxSubDevices
	PropVendorID
	PropArchitecture
	PropBackendID
)

// UintListProperty is one list-valued property query from the closed set.
type UintListProperty int

const (
	PropSubGroupSizes UintListProperty = iota
)
