// Package protocol implements the BlinkyTape serial wire protocol.
//
// This package provides pure functions to encode pixel data and build the
// show command according to the byte protocol expected by the stock
// BlinkyTape serialLoop() firmware.
//
// # Protocol Overview
//
// The wire protocol is a stream of 3-byte groups. Each group is either:
//
//	Pixel data: [R][G][B]      all three bytes in 0-254
//	Show:       [0][0][255]    third byte 255 triggers display
//
// Pixel triplets are appended sequentially to the firmware's internal pixel
// buffer. When the firmware sees a triplet whose third byte is ControlByte
// (255), it immediately renders everything accumulated since the last show
// command and clears its buffer. Because 255 is reserved for control use,
// no channel of a pixel triplet may carry that value; Encode saturates 255
// down to MaxChannel (254).
//
// The protocol is send-only. The device sends no meaningful responses, and
// there is no checksum or acknowledgement.
//
// # Encoding
//
// Use Encode to clamp and serialize a single color:
//
//	r, g, b := protocol.Encode(300, -5, 128)
//	// r == 254, g == 0, b == 128
//
// Use EncodeTo to append encoded triplets to an existing buffer:
//
//	buf := make([]byte, 0, n*protocol.PixelSize)
//	for _, p := range pixels {
//	    buf = protocol.EncodeTo(buf, p.R, p.G, p.B)
//	}
//
// # Serial Parameters
//
// Normal operation runs at BaudRate (115200). Reconfiguring the port to
// BootloaderBaudRate (1200) is the documented signal for the device to
// reset into its bootloader for firmware updates.
package protocol
