package serialport

import (
	"fmt"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// usbID is a USB vendor/product pair, hex-encoded as reported by the OS.
type usbID struct {
	vid, pid string
}

// knownIDs are the USB identifiers of devices that speak the BlinkyTape
// serial protocol.
var knownIDs = []usbID{
	{"1D50", "605E"}, // BlinkyTape
	{"2341", "8036"}, // Arduino Leonardo (same ATmega32U4 CDC stack)
}

// List returns candidate port names that look like a BlinkyTape, in the
// order the OS reports them. It prefers USB metadata matching; when no port
// carries matching metadata (or the platform exposes none), it falls back to
// name-based filtering of the plain port listing. It may return an empty
// slice when no device is attached.
func List() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}

	if candidates := filterByUSBID(details); len(candidates) > 0 {
		return candidates, nil
	}

	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return filterByName(names), nil
}

// filterByUSBID keeps ports whose USB vendor/product pair matches a known
// device.
func filterByUSBID(ports []*enumerator.PortDetails) []string {
	var candidates []string
	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		for _, id := range knownIDs {
			if strings.EqualFold(port.VID, id.vid) && strings.EqualFold(port.PID, id.pid) {
				candidates = append(candidates, port.Name)
				break
			}
		}
	}
	return candidates
}

// filterByName keeps ports whose name matches the USB CDC naming convention
// of the host OS.
func filterByName(names []string) []string {
	var candidates []string
	for _, name := range names {
		if looksLikeUSBModem(name) {
			candidates = append(candidates, name)
		}
	}
	return candidates
}

func looksLikeUSBModem(name string) bool {
	prefixes := []string{
		"/dev/ttyACM",       // Linux CDC ACM
		"/dev/ttyUSB",       // Linux USB serial adapters
		"/dev/tty.usbmodem", // macOS
		"/dev/cu.usbmodem",  // macOS
		"COM",               // Windows
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
