// Package main implements hw-info, a diagnostic tool that prints the device
// inventory discovered by the HIP hardware layer.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/darkace1998/golang-hip-runtime/internal/backend"
	"github.com/darkace1998/golang-hip-runtime/internal/config"
	"github.com/darkace1998/golang-hip-runtime/internal/diag"
	"github.com/darkace1998/golang-hip-runtime/internal/hardware"
	"github.com/darkace1998/golang-hip-runtime/internal/hip"
	"github.com/darkace1998/golang-hip-runtime/internal/logger"
)

type deviceInfo struct {
	Index           int      `json:"index"`
	Name            string   `json:"name"`
	Vendor          string   `json:"vendor"`
	Arch            string   `json:"arch"`
	ArchCode        uint64   `json:"arch_code"`
	DriverVersion   string   `json:"driver_version"`
	Profile         string   `json:"profile"`
	ComputeUnits    uint64   `json:"compute_units"`
	MaxClockMHz     uint64   `json:"max_clock_mhz"`
	GlobalMemBytes  uint64   `json:"global_mem_bytes"`
	LocalMemBytes   uint64   `json:"local_mem_bytes"`
	MaxGroupSize    uint64   `json:"max_group_size"`
	SubGroupSizes   []uint64 `json:"sub_group_sizes"`
	UnifiedMemory   bool     `json:"unified_memory"`
	ErrorCorrection bool     `json:"error_correction"`
}

func main() {
	configPath := flag.String("config", "", "Path to config file (optional)")
	format := flag.String("format", "text", "Output format: text, json")
	flag.Parse()

	var cfg *config.RuntimeConfig
	var err error

	if *configPath != "" {
		cfg, err = config.LoadRuntimeConfig(*configPath)
		if err != nil {
			log.Printf("Failed to load config: %v", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("Runtime instance starting", "id", cfg.Runtime.ID)

	b := backend.New(hip.NewDriver(), cfg, diag.NewLogReporter())
	mgr := b.HardwareManager()

	devices := make([]deviceInfo, 0, mgr.DeviceCount())
	for i := 0; i < mgr.DeviceCount(); i++ {
		devices = append(devices, collectDevice(mgr, i))
	}

	switch *format {
	case "json":
		printJSON(b, devices)
	default:
		printText(b, mgr, devices)
	}
}

func collectDevice(mgr *hardware.Manager, index int) deviceInfo {
	ctx := mgr.Device(index)
	return deviceInfo{
		Index:           index,
		Name:            ctx.Name(),
		Vendor:          ctx.Vendor(),
		Arch:            ctx.Arch(),
		ArchCode:        ctx.ArchCode(),
		DriverVersion:   ctx.DriverVersion(),
		Profile:         ctx.Profile(),
		ComputeUnits:    ctx.Uint(hardware.PropMaxComputeUnits),
		MaxClockMHz:     ctx.Uint(hardware.PropMaxClockSpeed),
		GlobalMemBytes:  ctx.Uint(hardware.PropGlobalMemSize),
		LocalMemBytes:   ctx.Uint(hardware.PropLocalMemSize),
		MaxGroupSize:    ctx.Uint(hardware.PropMaxGroupSize),
		SubGroupSizes:   ctx.UintList(hardware.PropSubGroupSizes),
		UnifiedMemory:   ctx.Has(hardware.AspectUSMSharedAllocations),
		ErrorCorrection: ctx.Has(hardware.AspectErrorCorrection),
	}
}

func printJSON(b *backend.Backend, devices []deviceInfo) {
	out := struct {
		Backend string       `json:"backend"`
		Devices []deviceInfo `json:"devices"`
	}{
		Backend: b.Name(),
		Devices: devices,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("Failed to encode device inventory", "error", err)
		os.Exit(1)
	}
}

func printText(b *backend.Backend, mgr *hardware.Manager, devices []deviceInfo) {
	fmt.Printf("Backend: %s (platform count: %d)\n", b.Name(), mgr.PlatformCount())
	fmt.Printf("Devices: %d\n", len(devices))

	for _, dev := range devices {
		fmt.Printf("\nDevice %d: %s\n", dev.Index, dev.Name)
		fmt.Printf("├─ Vendor: %s\n", dev.Vendor)
		fmt.Printf("├─ Architecture: %s (0x%x)\n", dev.Arch, dev.ArchCode)
		fmt.Printf("├─ Driver version: %s\n", dev.DriverVersion)
		fmt.Printf("├─ Profile: %s\n", dev.Profile)
		fmt.Printf("├─ Compute units: %d\n", dev.ComputeUnits)
		fmt.Printf("├─ Max clock: %d MHz\n", dev.MaxClockMHz)
		fmt.Printf("├─ Global memory: %d bytes\n", dev.GlobalMemBytes)
		fmt.Printf("├─ Local memory: %d bytes\n", dev.LocalMemBytes)
		fmt.Printf("├─ Max work-group size: %d\n", dev.MaxGroupSize)
		fmt.Printf("├─ Sub-group sizes: %v\n", dev.SubGroupSizes)
		fmt.Printf("├─ Unified shared memory: %t\n", dev.UnifiedMemory)
		fmt.Printf("└─ Error correction: %t\n", dev.ErrorCorrection)
	}
}
