package pattern

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/blinkinlabs/go-blinkytape/protocol"
)

// Constants for pattern file parsing.
const (
	// HexCharsPerPixel is the number of hex characters encoding one pixel
	HexCharsPerPixel = protocol.PixelSize * 2

	// MaxPixelCount caps the header value to keep a corrupt header from
	// allocating unbounded frames
	MaxPixelCount = 10000

	// DefaultFrameCapacity is the initial capacity for the frames slice
	DefaultFrameCapacity = 64
)

// Pattern represents a complete parsed pattern file.
type Pattern struct {
	// PixelCount is the number of pixels in every frame
	PixelCount int

	// Frames contains the animation frames in playback order
	Frames [][]protocol.Pixel
}

// Parse parses a pattern file from the given file path.
//
// Example:
//
//	pat, err := pattern.Parse("police.pattern")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d frames of %d pixels\n", len(pat.Frames), pat.PixelCount)
func Parse(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a pattern file from any io.Reader.
// This is useful for testing and reading from non-file sources.
func ParseReader(r io.Reader) (*Pattern, error) {
	scanner := bufio.NewScanner(r)

	var pat *Pattern
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := stripLine(scanner.Text())
		if line == "" {
			continue
		}

		// First non-comment line is the pixel-count header
		if pat == nil {
			p, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			pat = p
			continue
		}

		frame, err := parseFrame(line, pat.PixelCount)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		pat.Frames = append(pat.Frames, frame)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if pat == nil {
		return nil, fmt.Errorf("empty file")
	}
	if len(pat.Frames) == 0 {
		return nil, fmt.Errorf("no frames found in file")
	}

	return pat, nil
}

// parseHeader parses the pixel-count header line.
func parseHeader(line string) (*Pattern, error) {
	count, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("invalid pixel count header %q: %w", line, err)
	}
	if count <= 0 || count > MaxPixelCount {
		return nil, fmt.Errorf("pixel count %d out of range (1-%d)", count, MaxPixelCount)
	}

	return &Pattern{
		PixelCount: count,
		Frames:     make([][]protocol.Pixel, 0, DefaultFrameCapacity),
	}, nil
}

// parseFrame decodes one hex frame line into pixelCount pixels.
func parseFrame(line string, pixelCount int) ([]protocol.Pixel, error) {
	expected := pixelCount * HexCharsPerPixel
	if len(line) != expected {
		return nil, fmt.Errorf("frame length mismatch: got %d hex characters, expected %d (%d pixels)",
			len(line), expected, pixelCount)
	}

	data, err := hex.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}

	frame := make([]protocol.Pixel, pixelCount)
	for i := range frame {
		r := data[i*protocol.PixelSize]
		g := data[i*protocol.PixelSize+1]
		b := data[i*protocol.PixelSize+2]

		// 255 is the wire protocol's control byte; authored data carrying it
		// is malformed rather than merely out of range
		for _, ch := range []byte{r, g, b} {
			if ch == protocol.ControlByte {
				return nil, fmt.Errorf("pixel %d: channel value 255 is reserved for protocol control", i)
			}
		}

		frame[i] = protocol.Pixel{R: int(r), G: int(g), B: int(b)}
	}

	return frame, nil
}

// stripLine removes comments and all whitespace from a line.
func stripLine(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	return strings.Join(strings.Fields(line), "")
}
