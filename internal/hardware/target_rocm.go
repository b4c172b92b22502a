//go:build !hipcpu && !hipcuda

package hardware

// Default target: HIP on AMD ROCm hardware.
const (
	targetVendorName = "AMD"
	targetIsGPU      = true
)
