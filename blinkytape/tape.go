package blinkytape

import (
	"fmt"

	"github.com/blinkinlabs/go-blinkytape/protocol"
)

// Pixel is one RGB color triple destined for one LED. Channel values are
// clamped to the transmittable range [0, 254] when encoded.
type Pixel = protocol.Pixel

// Tape is an open session with a BlinkyTape device. It owns the transport
// exclusively and enforces the buffering and capacity discipline of the wire
// protocol.
//
// A Tape is not safe for concurrent use; callers needing concurrent access
// must serialize externally. Writes issued through a single session appear on
// the wire in invocation order.
type Tape struct {
	transport Transport
	port      string
	config    Config

	// buf accumulates encoded pixel data in buffered mode, always a whole
	// number of triplets. Cleared in place on a successful Show.
	buf []byte

	// pending counts pixels set since the last Show, in both modes
	pending int

	closed bool
}

// New wraps an already-open transport in a session. It performs no I/O; use
// Open to resolve, dial, and prime a serial device in one step.
//
// Example:
//
//	port, _ := serialport.Dial("/dev/ttyACM0", protocol.BaudRate)
//	tape := blinkytape.New(port, blinkytape.WithLEDCount(120))
func New(transport Transport, opts ...Option) *Tape {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tape{
		transport: transport,
		config:    cfg,
	}
	if cfg.Buffered {
		t.buf = make([]byte, 0, cfg.LEDCount*protocol.PixelSize)
	}
	return t
}

// Open resolves a port, dials it at the protocol baud rate, and returns a
// ready session.
//
// If port is empty, the configured Lister is invoked once and the first
// candidate is used; a NotFoundError is returned when it reports none. Open
// finishes by issuing one Show so that any partial frame left over from a
// previous session or a device reset is flushed before the caller starts
// sending pixels.
//
// Example:
//
//	tape, err := blinkytape.Open("", blinkytape.WithLEDCount(60))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tape.Close()
func Open(port string, opts ...Option) (*Tape, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if port == "" {
		candidates, err := cfg.Lister()
		if err != nil {
			return nil, fmt.Errorf("list ports: %w", err)
		}
		if len(candidates) == 0 {
			return nil, &NotFoundError{}
		}
		port = candidates[0]
	}

	transport, err := cfg.Dialer(port, protocol.BaudRate)
	if err != nil {
		return nil, fmt.Errorf("open port %s: %w", port, err)
	}

	t := &Tape{
		transport: transport,
		port:      port,
		config:    cfg,
	}
	if cfg.Buffered {
		t.buf = make([]byte, 0, cfg.LEDCount*protocol.PixelSize)
	}

	// Flush any incomplete data the device may still be holding
	if err := t.Show(); err != nil {
		transport.Close()
		return nil, fmt.Errorf("flush stale device state: %w", err)
	}

	t.logInfo("session opened",
		"port", port,
		"led_count", cfg.LEDCount,
		"buffered", cfg.Buffered,
	)

	return t, nil
}

// SendPixel sends the next pixel data triplet in RGB format. Values are
// clamped to [0, 254] automatically.
//
// In buffered mode the encoded triplet is appended to the in-memory frame;
// in immediate mode it is written to the transport and drained before the
// call returns.
//
// A CapacityError is returned once LEDCount pixels have been set since the
// last Show, and the pending frame is left untouched. With
// WithLegacyCapacityCheck the historical comparison is used instead: it
// compares one triplet's byte count times three against LEDCount, so it only
// ever trips when the strip is configured to nine pixels or fewer.
func (t *Tape) SendPixel(r, g, b int) error {
	if t.closed {
		return &ClosedError{Op: "send pixel"}
	}
	if err := t.checkCapacity(); err != nil {
		return err
	}

	er, eg, eb := protocol.Encode(r, g, b)

	if t.config.Buffered {
		t.buf = append(t.buf, er, eg, eb)
		t.pending++
		return nil
	}

	if _, err := t.transport.Write([]byte{er, eg, eb}); err != nil {
		return fmt.Errorf("write pixel: %w", err)
	}
	if err := t.transport.Drain(); err != nil {
		return fmt.Errorf("drain: %w", err)
	}
	t.pending++
	return nil
}

// SendPixels is the bulk path: it encodes all pixels, writes them to the
// transport in a single call, and issues a Show. It bypasses the accumulator
// and the capacity check entirely, regardless of buffering mode, matching
// the original library. Unlike the original's bulk path, clamping covers
// both bounds, so negative inputs saturate to zero instead of wrapping.
func (t *Tape) SendPixels(pixels []Pixel) error {
	if t.closed {
		return &ClosedError{Op: "send pixels"}
	}

	data := make([]byte, 0, len(pixels)*protocol.PixelSize)
	for _, p := range pixels {
		data = protocol.EncodeTo(data, p.R, p.G, p.B)
	}

	if _, err := t.transport.Write(data); err != nil {
		return fmt.Errorf("write pixels: %w", err)
	}
	return t.Show()
}

// ShowFrame displays one whole frame. Frames longer than LEDCount are
// truncated to the strip length. Intended for pattern playback; see the
// pattern package.
func (t *Tape) ShowFrame(frame []Pixel) error {
	if len(frame) > t.config.LEDCount {
		frame = frame[:t.config.LEDCount]
	}
	return t.SendPixels(frame)
}

// Show sends the command to display all accumulated pixel data.
//
// In buffered mode the pending frame and the control triplet go out in one
// write, and the accumulator is cleared in place; in immediate mode only the
// control triplet is written. The outbound buffer is drained and any inbound
// bytes from the device are discarded (the device sends no meaningful
// responses in this protocol).
//
// If the write fails, the accumulator keeps its contents so the frame can be
// retried.
func (t *Tape) Show() error {
	if t.closed {
		return &ClosedError{Op: "show"}
	}

	if t.config.Buffered {
		if _, err := t.transport.Write(append(t.buf, 0, 0, protocol.ControlByte)); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		t.buf = t.buf[:0]
	} else {
		if _, err := t.transport.Write(protocol.ShowCommand()); err != nil {
			return fmt.Errorf("write show command: %w", err)
		}
	}
	t.pending = 0

	if err := t.transport.Drain(); err != nil {
		return fmt.Errorf("drain: %w", err)
	}
	if err := t.transport.ResetInputBuffer(); err != nil {
		return fmt.Errorf("discard device responses: %w", err)
	}

	t.logDebug("frame shown")
	return nil
}

// DisplayColor fills the whole strip with one color and shows it.
func (t *Tape) DisplayColor(r, g, b int) error {
	if t.closed {
		return &ClosedError{Op: "display color"}
	}

	for i := 0; i < t.config.LEDCount; i++ {
		if err := t.SendPixel(r, g, b); err != nil {
			return err
		}
	}
	return t.Show()
}

// ResetToBootloader reconfigures the transport to the bootloader baud rate,
// signalling the device to reset into firmware update mode, then closes the
// session. The device sends no acknowledgement and will disconnect.
func (t *Tape) ResetToBootloader() error {
	if t.closed {
		return &ClosedError{Op: "reset to bootloader"}
	}

	if err := t.transport.SetBaudRate(protocol.BootloaderBaudRate); err != nil {
		return fmt.Errorf("set bootloader baud rate: %w", err)
	}

	t.logInfo("device reset to bootloader", "port", t.port)
	return t.Close()
}

// Close releases the transport. Closing an already-closed session is a
// no-op; every other operation on a closed session returns a ClosedError.
func (t *Tape) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	if err := t.transport.Close(); err != nil {
		return fmt.Errorf("close transport: %w", err)
	}
	return nil
}

// LEDCount returns the configured number of addressable pixels.
func (t *Tape) LEDCount() int { return t.config.LEDCount }

// Buffered reports whether the session runs in buffered mode.
func (t *Tape) Buffered() bool { return t.config.Buffered }

// PixelCount returns the number of pixels set since the last Show.
func (t *Tape) PixelCount() int { return t.pending }

// Port returns the resolved port name, or an empty string when the session
// was constructed with New.
func (t *Tape) Port() string { return t.port }

func (t *Tape) checkCapacity() error {
	if t.config.LegacyCapacityCheck {
		// Historical comparison carried over from the Python library. It
		// measures one encoded triplet against the strip length instead of
		// the accumulated pixel count, so it never trips for LEDCount > 9.
		if protocol.PixelSize*3 >= t.config.LEDCount {
			return &CapacityError{LEDCount: t.config.LEDCount, Pending: t.pending}
		}
		return nil
	}

	if t.pending >= t.config.LEDCount {
		return &CapacityError{LEDCount: t.config.LEDCount, Pending: t.pending}
	}
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (t *Tape) logDebug(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (t *Tape) logInfo(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Info(msg, keysAndValues...)
	}
}
