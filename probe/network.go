package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// NetworkInfo returns the active network connection. Wireless details come
// from nmcli (Linux) or the airport utility (macOS); when the shell query
// fails, a lightweight interface enumeration approximates connectivity.
// Download/upload speeds are fabricated and labeled as simulated.
func (s *System) NetworkInfo(ctx context.Context) (NetworkInfo, error) {
	var info NetworkInfo
	var err error

	switch s.goos {
	case "darwin":
		info, err = s.networkInfoDarwin(ctx)
	default:
		info, err = s.networkInfoLinux(ctx)
	}
	if err != nil {
		s.logger.Debug("probe: wireless query failed, falling back to interface scan", "error", err)
		info, err = s.networkInfoFallback(ctx)
		if err != nil {
			return NetworkInfo{}, err
		}
	}

	if info.Connected {
		info.DownloadMbps = s.simulatedPercent(80, 300)
		info.UploadMbps = s.simulatedPercent(20, 100)
	}
	info.Simulated = true
	return info, nil
}

func (s *System) networkInfoLinux(ctx context.Context) (NetworkInfo, error) {
	out, err := s.runCommand(ctx, "nmcli", "-t", "-f", "ACTIVE,SSID,SIGNAL", "dev", "wifi")
	if err != nil {
		return NetworkInfo{}, err
	}

	info, ok := parseNmcliWifi(string(out))
	if !ok {
		return NetworkInfo{}, fmt.Errorf("probe: no active wifi connection in nmcli output")
	}
	return info, nil
}

func (s *System) networkInfoDarwin(ctx context.Context) (NetworkInfo, error) {
	out, err := s.runCommand(ctx,
		"/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport", "-I")
	if err != nil {
		return NetworkInfo{}, err
	}

	info, ok := parseAirport(string(out))
	if !ok {
		return NetworkInfo{}, fmt.Errorf("probe: no SSID in airport output")
	}
	return info, nil
}

// networkInfoFallback approximates connectivity from the OS interface
// table: the first up, non-loopback interface is reported as a wired
// connection with no signal figure.
func (s *System) networkInfoFallback(ctx context.Context) (NetworkInfo, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return NetworkInfo{}, fmt.Errorf("probe: interface enumeration: %w", err)
	}

	for _, iface := range ifaces {
		var up, loopback bool
		for _, flag := range iface.Flags {
			switch flag {
			case "up":
				up = true
			case "loopback":
				loopback = true
			}
		}
		if !up || loopback || len(iface.Addrs) == 0 {
			continue
		}
		return NetworkInfo{
			Label:     iface.Name,
			Connected: true,
			Type:      "ethernet",
		}, nil
	}

	return DefaultNetworkInfo, nil
}

// parseNmcliWifi extracts the active connection from terse nmcli output.
// Lines look like "yes:HomeNet:87". SSIDs containing escaped colons
// ("\:") are unescaped.
func parseNmcliWifi(out string) (NetworkInfo, bool) {
	for _, line := range strings.Split(out, "\n") {
		fields := splitNmcliLine(line)
		if len(fields) < 3 || fields[0] != "yes" {
			continue
		}

		signal, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			signal = 0
		}
		if signal < 0 {
			signal = 0
		}
		if signal > 100 {
			signal = 100
		}

		return NetworkInfo{
			Label:         fields[1],
			SignalPercent: signal,
			Connected:     true,
			Type:          "wifi",
		}, true
	}
	return NetworkInfo{}, false
}

// splitNmcliLine splits a terse nmcli line on unescaped colons.
func splitNmcliLine(line string) []string {
	var fields []string
	var current strings.Builder
	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// parseAirport extracts SSID and signal strength from `airport -I` output.
// RSSI in dBm is mapped to a 0-100 percentage (-30 dBm = 100, -90 dBm = 0).
func parseAirport(out string) (NetworkInfo, bool) {
	var info NetworkInfo
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if v, ok := strings.CutPrefix(line, "SSID:"); ok {
			info.Label = strings.TrimSpace(v)
		}
		if v, ok := strings.CutPrefix(line, "agrCtlRSSI:"); ok {
			if rssi, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				info.SignalPercent = rssiToPercent(rssi)
			}
		}
	}
	if info.Label == "" {
		return NetworkInfo{}, false
	}
	info.Connected = true
	info.Type = "wifi"
	return info, true
}

func rssiToPercent(rssi int) int {
	switch {
	case rssi >= -30:
		return 100
	case rssi <= -90:
		return 0
	default:
		return (rssi + 90) * 100 / 60
	}
}
