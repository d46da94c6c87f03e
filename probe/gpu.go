package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jaypipes/pcidb"
)

// vramSysfsPath is the amdgpu/radeon VRAM size file. Best-effort only;
// absent on most non-AMD systems.
const vramSysfsPath = "/sys/class/drm/card0/device/mem_info_vram_total"

var (
	pciOnce sync.Once
	pciDB   *pcidb.PCIDB
	pciErr  error
)

// GPUInfo returns display adapter details via platform shell queries.
// The temperature and usage figures are fabricated; no GPU sensor exists
// in this pipeline and the values must be labeled as simulated.
func (s *System) GPUInfo(ctx context.Context) (GPUInfo, error) {
	var info GPUInfo
	var err error

	switch s.goos {
	case "darwin":
		info, err = s.gpuInfoDarwin(ctx)
	default:
		info, err = s.gpuInfoLinux(ctx)
	}
	if err != nil {
		return GPUInfo{}, err
	}

	info.TemperatureC = s.simulatedPercent(45, 75)
	info.UsagePercent = s.simulatedPercent(5, 60)
	info.Simulated = true
	return info, nil
}

func (s *System) gpuInfoLinux(ctx context.Context) (GPUInfo, error) {
	out, err := s.runCommand(ctx, "lspci", "-mm", "-nn")
	if err != nil {
		return GPUInfo{}, err
	}

	name := parseLspciGPU(string(out))
	if name == "" {
		return GPUInfo{}, fmt.Errorf("probe: no display controller in lspci output")
	}

	info := GPUInfo{Name: name, Memory: "Unknown"}

	// VRAM size is only exposed for amdgpu/radeon; degrade quietly.
	if raw, err := s.readFile(vramSysfsPath); err == nil {
		if bytes, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64); err == nil && bytes > 0 {
			info.Memory = fmt.Sprintf("%.0f GB dedicated", float64(bytes)/(1<<30))
		}
	}

	return info, nil
}

func (s *System) gpuInfoDarwin(ctx context.Context) (GPUInfo, error) {
	out, err := s.runCommand(ctx, "system_profiler", "SPDisplaysDataType")
	if err != nil {
		return GPUInfo{}, err
	}

	info := GPUInfo{Memory: "Unknown"}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if v, ok := strings.CutPrefix(line, "Chipset Model:"); ok && info.Name == "" {
			info.Name = strings.TrimSpace(v)
		}
		if strings.HasPrefix(line, "VRAM") {
			if _, v, ok := strings.Cut(line, ":"); ok {
				info.Memory = strings.TrimSpace(v)
			}
		}
	}
	if info.Name == "" {
		return GPUInfo{}, fmt.Errorf("probe: no chipset model in system_profiler output")
	}
	return info, nil
}

// parseLspciGPU extracts a display adapter name from `lspci -mm -nn`
// output. The first VGA/3D/Display class line wins. PCI IDs embedded in
// the bracketed suffixes are resolved against the PCI ID database when the
// textual name looks like a bare identifier.
func parseLspciGPU(out string) string {
	for _, line := range strings.Split(out, "\n") {
		fields := splitQuoted(line)
		if len(fields) < 4 {
			continue
		}
		class := fields[1]
		if !strings.Contains(class, "VGA") &&
			!strings.Contains(class, "3D") &&
			!strings.Contains(class, "Display") {
			continue
		}

		vendorName, vendorID := splitBracketID(fields[2])
		deviceName, deviceID := splitBracketID(fields[3])

		if resolved := lookupPCIName(vendorID, deviceID); resolved != "" && looksLikeBareID(deviceName) {
			return resolved
		}
		if vendorName != "" && deviceName != "" {
			return vendorName + " " + deviceName
		}
		return deviceName
	}
	return ""
}

// splitQuoted splits an lspci -mm line into its quoted fields, keeping
// the leading unquoted slot address as field 0.
func splitQuoted(line string) []string {
	var fields []string
	var current strings.Builder
	inQuote := false

	flush := func() {
		if current.Len() > 0 {
			fields = append(fields, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			if inQuote {
				fields = append(fields, current.String())
				current.Reset()
			} else {
				flush()
			}
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return fields
}

// splitBracketID splits "Name [abcd]" into the name and the hex ID.
func splitBracketID(field string) (name, id string) {
	open := strings.LastIndex(field, "[")
	end := strings.LastIndex(field, "]")
	if open < 0 || end < open {
		return strings.TrimSpace(field), ""
	}
	return strings.TrimSpace(field[:open]), strings.ToLower(field[open+1 : end])
}

// looksLikeBareID reports whether a device name is an unresolved
// identifier rather than a marketing name.
func looksLikeBareID(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" || lower == "unknown" {
		return true
	}
	return strings.HasPrefix(lower, "device ") || strings.HasPrefix(lower, "0x")
}

// lookupPCIName resolves a vendor/device ID pair against the PCI ID
// database. Returns "" when the database is unavailable or has no entry.
func lookupPCIName(vendorID, deviceID string) string {
	if len(vendorID) != 4 || len(deviceID) != 4 {
		return ""
	}

	pciOnce.Do(func() {
		pciDB, pciErr = pcidb.New()
	})
	if pciErr != nil || pciDB == nil {
		return ""
	}

	product, ok := pciDB.Products[vendorID+deviceID]
	if !ok || product == nil {
		return ""
	}
	if vendor, ok := pciDB.Vendors[vendorID]; ok && vendor != nil {
		return vendor.Name + " " + product.Name
	}
	return product.Name
}
