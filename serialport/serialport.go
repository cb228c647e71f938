// Package serialport binds the driver to real serial hardware using
// go.bug.st/serial. It provides the concrete transport opened by
// blinkytape.Open and the port discovery used for auto-detection.
package serialport

import (
	"fmt"

	"go.bug.st/serial"
)

// Port is an open serial port adapted to the driver's transport surface.
type Port struct {
	inner serial.Port
	name  string
}

// Dial opens the named serial port at the given baud rate.
//
// Example:
//
//	port, err := serialport.Dial("/dev/ttyACM0", protocol.BaudRate)
func Dial(port string, baudRate int) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
	}
	p, err := serial.Open(port, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", port, err)
	}

	return &Port{inner: p, name: port}, nil
}

// Write sends p to the device.
func (p *Port) Write(b []byte) (int, error) {
	return p.inner.Write(b)
}

// Drain blocks until the OS outbound buffer has been transmitted.
func (p *Port) Drain() error {
	return p.inner.Drain()
}

// ResetInputBuffer discards unread inbound bytes.
func (p *Port) ResetInputBuffer() error {
	return p.inner.ResetInputBuffer()
}

// SetBaudRate reconfigures the open port to a new baud rate.
func (p *Port) SetBaudRate(baudRate int) error {
	return p.inner.SetMode(&serial.Mode{BaudRate: baudRate})
}

// Close releases the port.
func (p *Port) Close() error {
	return p.inner.Close()
}

// Name returns the port name the transport was dialed on.
func (p *Port) Name() string {
	return p.name
}
