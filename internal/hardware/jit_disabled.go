//go:build !jitkernels

package hardware

const targetJITKernels = false
