// Package pattern provides parsing for BlinkyTape pattern files.
//
// # Pattern File Format
//
// A pattern file is a plain-text description of an animation: a sequence of
// whole frames, each holding one color per pixel. Lines starting with '#'
// are comments and blank lines are ignored.
//
// Header (first non-comment line): the pixel count per frame, in decimal.
//
// Frame lines: one frame per line, hex-encoded, exactly 6 hex characters
// (3 bytes) per pixel:
//
//	# two-pixel strip, red then blue, swapping each frame
//	2
//	FE0000 0000FE
//	0000FEFE0000
//
// Whitespace inside a frame line is ignored, so pixels may be grouped for
// readability. Channel bytes above 254 are invalid: 255 is reserved by the
// wire protocol for control use and is rejected during parsing rather than
// silently clamped, since a pattern file is authored data, not a runtime
// color request.
//
// # Usage
//
//	pat, err := pattern.Parse("police.pattern")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, frame := range pat.Frames {
//	    tape.ShowFrame(frame)
//	    time.Sleep(50 * time.Millisecond)
//	}
package pattern
