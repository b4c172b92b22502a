//go:build hipcpu

package hardware

// HIP emulated on the host CPU.
const (
	targetVendorName = "hipCPU"
	targetIsGPU      = false
)
