package probe

import (
	"context"
	"strings"
)

// DMI sysfs files exposing motherboard identity without root.
const (
	boardVendorPath  = "/sys/devices/virtual/dmi/id/board_vendor"
	boardProductPath = "/sys/devices/virtual/dmi/id/board_name"
)

// HardwareDetail returns CPU, memory-slot, and motherboard inventory.
// Every source degrades independently: a missing tool or file leaves the
// corresponding fields at their documented defaults instead of failing
// the whole call.
func (s *System) HardwareDetail(ctx context.Context) (HardwareDetail, error) {
	detail := DefaultHardwareDetail

	switch s.goos {
	case "darwin":
		s.hardwareDetailDarwin(ctx, &detail)
	default:
		s.hardwareDetailLinux(ctx, &detail)
	}

	return detail, nil
}

func (s *System) hardwareDetailLinux(ctx context.Context, detail *HardwareDetail) {
	if out, err := s.runCommand(ctx, "lscpu"); err == nil {
		applyLscpu(string(out), detail)
	} else {
		s.logger.Debug("probe: lscpu unavailable", "error", err)
	}

	if raw, err := s.readFile(boardVendorPath); err == nil {
		if v := strings.TrimSpace(string(raw)); v != "" {
			detail.BoardVendor = v
		}
	}
	if raw, err := s.readFile(boardProductPath); err == nil {
		if v := strings.TrimSpace(string(raw)); v != "" {
			detail.BoardProduct = v
		}
	}

	// dmidecode usually requires root; absence is the common case.
	if out, err := s.runCommand(ctx, "dmidecode", "-t", "memory"); err == nil {
		detail.MemorySlots = parseDmidecodeMemory(string(out))
	} else {
		s.logger.Debug("probe: dmidecode unavailable", "error", err)
	}
}

func (s *System) hardwareDetailDarwin(ctx context.Context, detail *HardwareDetail) {
	if out, err := s.runCommand(ctx, "sysctl", "-n", "hw.machine"); err == nil {
		if v := strings.TrimSpace(string(out)); v != "" {
			detail.CPUArchitecture = v
		}
	}
	if out, err := s.runCommand(ctx, "sysctl", "-n", "hw.l2cachesize"); err == nil {
		if v := strings.TrimSpace(string(out)); v != "" {
			detail.CPUCache = v + " B L2"
		}
	}
	detail.BoardVendor = "Apple"
	if out, err := s.runCommand(ctx, "sysctl", "-n", "hw.model"); err == nil {
		if v := strings.TrimSpace(string(out)); v != "" {
			detail.BoardProduct = v
		}
	}
}

// applyLscpu fills CPU architecture, cache, and clock fields from lscpu
// key/value output. Unknown keys are ignored.
func applyLscpu(out string, detail *HardwareDetail) {
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch key {
		case "Architecture":
			detail.CPUArchitecture = value
		case "L3 cache":
			detail.CPUCache = value + " L3"
		case "L2 cache":
			// L3 wins when both are present.
			if detail.CPUCache == DefaultHardwareDetail.CPUCache {
				detail.CPUCache = value + " L2"
			}
		case "CPU max MHz":
			detail.CPUClock = value + " MHz"
		case "CPU MHz":
			if detail.CPUClock == DefaultHardwareDetail.CPUClock {
				detail.CPUClock = value + " MHz"
			}
		}
	}
}

// parseDmidecodeMemory extracts populated memory modules from
// `dmidecode -t memory` output. Empty slots ("No Module Installed") are
// skipped.
func parseDmidecodeMemory(out string) []MemorySlot {
	var slots []MemorySlot
	var current *MemorySlot

	flush := func() {
		if current != nil && current.Size != "" {
			slots = append(slots, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "Memory Device") && !strings.Contains(trimmed, "Mapped") {
			flush()
			current = &MemorySlot{}
			continue
		}
		if current == nil {
			continue
		}

		key, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "Size":
			if value != "No Module Installed" && value != "Unknown" {
				current.Size = value
			}
		case "Speed":
			if value != "Unknown" {
				current.Speed = value
			}
		case "Type":
			if value != "Unknown" {
				current.Type = value
			}
		}
	}
	flush()

	return slots
}
