//go:build hipcuda

package hardware

// HIP layered on the CUDA driver.
const (
	targetVendorName = "NVIDIA"
	targetIsGPU      = true
)
