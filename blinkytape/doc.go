// Package blinkytape provides a high-level driver for BlinkyTape addressable
// LED strips over a serial link.
//
// # Overview
//
// This package maintains the open transport and the buffering/commit
// discipline of the BlinkyTape wire protocol:
//   - Port auto-detection and session open at the protocol baud rate
//   - Per-pixel sends with automatic clamping and capacity enforcement
//   - Buffered or immediate transmission, selected at open time
//   - The show command that triggers physical display
//   - Reset into the device bootloader for firmware updates
//
// # Basic Usage
//
// The simplest way to light a strip:
//
//	// Empty port name triggers auto-detection
//	tape, err := blinkytape.Open("", blinkytape.WithLEDCount(60))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tape.Close()
//
//	// Fill the strip red and display it
//	err = tape.DisplayColor(255, 0, 0)
//
// # Buffering Modes
//
// In buffered mode (the default), pixel data accumulates in memory and goes
// out in a single write when Show is called. In immediate mode every pixel
// is written and drained as it is sent, which matches the firmware's
// expectations byte for byte but is much slower:
//
//	tape, err := blinkytape.Open("/dev/ttyACM0", blinkytape.WithBuffered(false))
//
// # Frame Rendering
//
// Build a frame pixel by pixel, then commit it:
//
//	for i := 0; i < tape.LEDCount(); i++ {
//	    if err := tape.SendPixel(i*4, 0, 254-i*4); err != nil {
//	        return err
//	    }
//	}
//	if err := tape.Show(); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// The package provides structured error types:
//   - NotFoundError: auto-detection found no compatible device
//   - CapacityError: a pixel send would exceed the configured LED count
//   - ClosedError: an operation was attempted after Close
//
// Transport failures (open, write, drain) are wrapped and surface
// synchronously from the operation that triggered them; there is no
// automatic retry or reconnection. A dropped device shows up as an error on
// the next operation and the session must be reopened.
//
// # Hardware Independence
//
// The session talks to the device through the Transport interface. Open
// dials the real serial implementation from the serialport package by
// default; tests and non-serial links can inject their own with WithDialer
// and WithLister, or wrap an existing transport directly with New.
//
// # Concurrency
//
// A Tape is not safe for concurrent use. All operations are synchronous and
// blocking, and writes from a single session reach the wire in invocation
// order; callers needing concurrent access must provide their own locking.
package blinkytape
