package probe

import "testing"

const lscpuSample = `Architecture:            x86_64
CPU op-mode(s):          32-bit, 64-bit
CPU(s):                  8
Model name:              Intel(R) Core(TM) i7-7700K CPU @ 4.20GHz
CPU MHz:                 4200.000
CPU max MHz:             4500.0000
L1d cache:               128 KiB
L2 cache:                1 MiB
L3 cache:                8 MiB
`

// TestApplyLscpu verifies CPU detail extraction from lscpu output.
func TestApplyLscpu(t *testing.T) {
	detail := DefaultHardwareDetail
	applyLscpu(lscpuSample, &detail)

	if detail.CPUArchitecture != "x86_64" {
		t.Errorf("CPUArchitecture = %q, want x86_64", detail.CPUArchitecture)
	}
	if detail.CPUCache != "8 MiB L3" {
		t.Errorf("CPUCache = %q, want %q", detail.CPUCache, "8 MiB L3")
	}
	if detail.CPUClock != "4500.0000 MHz" {
		t.Errorf("CPUClock = %q, want %q", detail.CPUClock, "4500.0000 MHz")
	}
}

// TestApplyLscpuL2Fallback verifies L2 cache is used when no L3 line exists.
func TestApplyLscpuL2Fallback(t *testing.T) {
	detail := DefaultHardwareDetail
	applyLscpu("Architecture: aarch64\nL2 cache: 4 MiB\n", &detail)

	if detail.CPUCache != "4 MiB L2" {
		t.Errorf("CPUCache = %q, want %q", detail.CPUCache, "4 MiB L2")
	}
}

const dmidecodeSample = `# dmidecode 3.3
Handle 0x0040, DMI type 17, 40 bytes
Memory Device
	Array Handle: 0x003E
	Size: 16 GB
	Form Factor: DIMM
	Locator: DIMM_A1
	Type: DDR4
	Speed: 3200 MT/s

Handle 0x0041, DMI type 17, 40 bytes
Memory Device
	Array Handle: 0x003E
	Size: No Module Installed
	Form Factor: DIMM
	Locator: DIMM_A2
	Type: Unknown
	Speed: Unknown

Handle 0x0042, DMI type 17, 40 bytes
Memory Device
	Array Handle: 0x003E
	Size: 16 GB
	Form Factor: DIMM
	Locator: DIMM_B1
	Type: DDR4
	Speed: 3200 MT/s
`

// TestParseDmidecodeMemory verifies populated slots are extracted and
// empty slots skipped.
func TestParseDmidecodeMemory(t *testing.T) {
	slots := parseDmidecodeMemory(dmidecodeSample)

	if len(slots) != 2 {
		t.Fatalf("slot count = %d, want 2", len(slots))
	}
	for i, slot := range slots {
		if slot.Size != "16 GB" {
			t.Errorf("slot[%d].Size = %q, want %q", i, slot.Size, "16 GB")
		}
		if slot.Type != "DDR4" {
			t.Errorf("slot[%d].Type = %q, want DDR4", i, slot.Type)
		}
		if slot.Speed != "3200 MT/s" {
			t.Errorf("slot[%d].Speed = %q, want %q", i, slot.Speed, "3200 MT/s")
		}
	}
}

func TestParseDmidecodeMemoryEmpty(t *testing.T) {
	if slots := parseDmidecodeMemory(""); len(slots) != 0 {
		t.Errorf("slot count = %d, want 0 for empty input", len(slots))
	}
}

// TestHardwareDetailDefaults verifies per-field defaults survive when every
// source is unavailable.
func TestHardwareDetailDefaults(t *testing.T) {
	s := NewSystem(0, nil)
	s.goos = "linux"
	s.lookPath = func(string) (string, error) {
		return "", errNotFound
	}
	s.readFile = func(string) ([]byte, error) {
		return nil, errNotFound
	}

	detail, err := s.HardwareDetail(t.Context())
	if err != nil {
		t.Fatalf("HardwareDetail error: %v", err)
	}
	if detail.CPUArchitecture != "unknown" {
		t.Errorf("CPUArchitecture = %q, want default", detail.CPUArchitecture)
	}
	if detail.BoardVendor != "Unknown" {
		t.Errorf("BoardVendor = %q, want default", detail.BoardVendor)
	}
	if len(detail.MemorySlots) != 0 {
		t.Errorf("MemorySlots = %v, want empty", detail.MemorySlots)
	}
}
