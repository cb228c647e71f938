package protocol

import (
	"bytes"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		wantR   byte
		wantG   byte
		wantB   byte
	}{
		{
			name: "all zero",
			r:    0, g: 0, b: 0,
			wantR: 0, wantG: 0, wantB: 0,
		},
		{
			name: "in range passes through",
			r:    10, g: 128, b: 254,
			wantR: 10, wantG: 128, wantB: 254,
		},
		{
			name: "255 saturates to 254",
			r:    255, g: 255, b: 255,
			wantR: 254, wantG: 254, wantB: 254,
		},
		{
			name: "above 255 saturates to 254",
			r:    300, g: 1000, b: 65536,
			wantR: 254, wantG: 254, wantB: 254,
		},
		{
			name: "negative saturates to 0",
			r:    -1, g: -255, b: -100000,
			wantR: 0, wantG: 0, wantB: 0,
		},
		{
			name: "mixed out of range",
			r:    -5, g: 260, b: 42,
			wantR: 0, wantG: 254, wantB: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := Encode(tt.r, tt.g, tt.b)
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("Encode(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.r, tt.g, tt.b, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestEncodeNeverEmitsControlByte(t *testing.T) {
	// Sweep well past both ends of the byte range
	for v := -300; v <= 600; v++ {
		r, g, b := Encode(v, v, v)
		for _, ch := range []byte{r, g, b} {
			if ch == ControlByte {
				t.Fatalf("Encode(%d, %d, %d) emitted reserved control byte", v, v, v)
			}
			if ch > MaxChannel {
				t.Fatalf("Encode(%d, %d, %d) emitted %d, above MaxChannel", v, v, v, ch)
			}
		}
	}
}

func TestEncodeTo(t *testing.T) {
	buf := []byte{0xAA}
	buf = EncodeTo(buf, 1, 2, 3)
	buf = EncodeTo(buf, 300, -1, 255)

	want := []byte{0xAA, 1, 2, 3, 254, 0, 254}
	if !bytes.Equal(buf, want) {
		t.Errorf("EncodeTo chain = %v, want %v", buf, want)
	}
}

func TestShowCommand(t *testing.T) {
	cmd := ShowCommand()

	want := []byte{0, 0, 255}
	if !bytes.Equal(cmd, want) {
		t.Errorf("ShowCommand() = %v, want %v", cmd, want)
	}
	if len(cmd) != PixelSize {
		t.Errorf("ShowCommand() length = %d, want %d", len(cmd), PixelSize)
	}

	// Mutating the returned slice must not affect later calls
	cmd[0] = 99
	if got := ShowCommand(); !bytes.Equal(got, want) {
		t.Errorf("ShowCommand() after mutation = %v, want %v", got, want)
	}
}
