package pattern

import (
	"reflect"
	"strings"
	"testing"

	"github.com/blinkinlabs/go-blinkytape/protocol"
)

func TestParseReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Pattern
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid single frame",
			input: "2\nFE0000 0000FE\n",
			want: &Pattern{
				PixelCount: 2,
				Frames: [][]protocol.Pixel{
					{{R: 254, G: 0, B: 0}, {R: 0, G: 0, B: 254}},
				},
			},
		},
		{
			name:  "multiple frames",
			input: "1\n010203\n040506\n",
			want: &Pattern{
				PixelCount: 1,
				Frames: [][]protocol.Pixel{
					{{R: 1, G: 2, B: 3}},
					{{R: 4, G: 5, B: 6}},
				},
			},
		},
		{
			name: "comments and blank lines ignored",
			input: "# two-pixel demo\n\n2\n" +
				"FE0000 0000FE  # red, blue\n" +
				"\n" +
				"0000FE FE0000\n",
			want: &Pattern{
				PixelCount: 2,
				Frames: [][]protocol.Pixel{
					{{R: 254, G: 0, B: 0}, {R: 0, G: 0, B: 254}},
					{{R: 0, G: 0, B: 254}, {R: 254, G: 0, B: 0}},
				},
			},
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: true,
			errMsg:  "empty file",
		},
		{
			name:    "comments only",
			input:   "# nothing here\n",
			wantErr: true,
			errMsg:  "empty file",
		},
		{
			name:    "bad header",
			input:   "sixty\n010203\n",
			wantErr: true,
			errMsg:  "invalid pixel count",
		},
		{
			name:    "zero pixel count",
			input:   "0\n",
			wantErr: true,
			errMsg:  "out of range",
		},
		{
			name:    "header without frames",
			input:   "2\n",
			wantErr: true,
			errMsg:  "no frames",
		},
		{
			name:    "frame length mismatch",
			input:   "2\nFE0000\n",
			wantErr: true,
			errMsg:  "frame length mismatch",
		},
		{
			name:    "invalid hex",
			input:   "1\nZZ0000\n",
			wantErr: true,
			errMsg:  "invalid hex",
		},
		{
			name:    "reserved control byte rejected",
			input:   "1\n0000FF\n",
			wantErr: true,
			errMsg:  "reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReader(strings.NewReader(tt.input))

			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseReader() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseReader() error = %v", err)
			}
			if got.PixelCount != tt.want.PixelCount {
				t.Errorf("PixelCount = %d, want %d", got.PixelCount, tt.want.PixelCount)
			}
			if !reflect.DeepEqual(got.Frames, tt.want.Frames) {
				t.Errorf("Frames = %v, want %v", got.Frames, tt.want.Frames)
			}
		})
	}
}

func TestParseFrameErrorNamesLine(t *testing.T) {
	input := "1\n010203\nFFFFFF\n"
	_, err := ParseReader(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for control byte in frame")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should name the offending line", err.Error())
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse("does-not-exist.pattern")
	if err == nil {
		t.Fatal("Parse() on a missing file should fail")
	}
	if !strings.Contains(err.Error(), "failed to open") {
		t.Errorf("error %q should mention the failed open", err.Error())
	}
}
