package protocol

// Wire format constants for the stock BlinkyTape serialLoop() firmware.
const (
	// PixelSize is the number of bytes in one wire group (one pixel or one
	// control command)
	PixelSize = 3

	// MaxChannel is the largest transmittable channel value (254)
	MaxChannel = 254

	// ControlByte terminates a control triplet (255); never valid pixel data
	ControlByte = 255
)

// Serial parameters.
const (
	// BaudRate is the baud rate for normal pixel traffic
	BaudRate = 115200

	// BootloaderBaudRate is the baud rate that signals the device to reset
	// into its bootloader
	BootloaderBaudRate = 1200
)

// DefaultLEDCount is the pixel count of a standard BlinkyTape strip.
const DefaultLEDCount = 60

// Pixel is one RGB color triple destined for one LED. Channel values may be
// out of range; they are clamped when encoded.
type Pixel struct {
	R, G, B int
}

// Encode clamps a requested color to the transmittable range and returns its
// three wire bytes. Channels below 0 saturate to 0; channels at or above 255
// saturate to MaxChannel, keeping ControlByte reserved for control triplets.
func Encode(r, g, b int) (byte, byte, byte) {
	return clamp(r), clamp(g), clamp(b)
}

// EncodeTo appends the encoded triplet for (r, g, b) to dst and returns the
// extended slice. Clamping is identical to Encode.
func EncodeTo(dst []byte, r, g, b int) []byte {
	return append(dst, clamp(r), clamp(g), clamp(b))
}

// ShowCommand returns the control triplet (0, 0, 255) that instructs the
// firmware to display all accumulated pixel data. The slice is freshly
// allocated and safe for the caller to append to.
func ShowCommand() []byte {
	return []byte{0, 0, ControlByte}
}

func clamp(v int) byte {
	if v < 0 {
		return 0
	}
	if v >= ControlByte {
		return MaxChannel
	}
	return byte(v)
}
