//go:build jitkernels

package hardware

// Built with the portable JIT kernel compiler available.
const targetJITKernels = true
