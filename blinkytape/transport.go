package blinkytape

// Transport is the byte-stream link to the device. It matches the surface of
// a serial port: ordered blocking writes, explicit control over the outbound
// and inbound OS buffers, and runtime baud-rate changes.
//
// The serialport package provides the real implementation; tests and unusual
// hardware can supply their own.
type Transport interface {
	// Write sends p to the device, blocking until the transport accepts it
	Write(p []byte) (n int, err error)

	// Drain blocks until all previously written bytes have left the
	// outbound buffer
	Drain() error

	// ResetInputBuffer discards any unread inbound bytes
	ResetInputBuffer() error

	// SetBaudRate reconfigures the open transport to a new baud rate
	SetBaudRate(baudRate int) error

	// Close releases the transport
	Close() error
}

// Dialer opens a Transport on the named port at the given baud rate.
type Dialer func(port string, baudRate int) (Transport, error)

// Lister reports candidate port names that look like a BlinkyTape, in
// preference order. It may return an empty slice when no device is attached.
type Lister func() ([]string, error)
