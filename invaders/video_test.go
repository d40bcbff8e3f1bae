package invaders

import (
	"testing"
)

func TestConvertFirstByte(t *testing.T) {
	v := NewVideo()
	vram := make([]byte, vramSize)

	// The first VRAM byte is the bottom-left column strip: bit 0 lands at
	// the bottom-left corner, bit 7 seven rows above it.
	vram[0] = 0x81
	v.Convert(vram)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, ScreenHeight - 1, true},  // bit 0
		{0, ScreenHeight - 8, true},  // bit 7
		{0, ScreenHeight - 2, false}, // bits in between are clear
		{1, ScreenHeight - 1, false}, // neighboring column untouched
	}

	for _, test := range tests {
		if got := v.Pixels[test.y*ScreenWidth+test.x]; got != test.want {
			t.Errorf("pixel (%d,%d): got %v, want %v\n", test.x, test.y, got, test.want)
		}
	}
}

func TestConvertLastByte(t *testing.T) {
	v := NewVideo()
	vram := make([]byte, vramSize)

	// The last VRAM byte finishes the rightmost column at the top of the
	// screen.
	vram[vramSize-1] = 0x80
	v.Convert(vram)

	if !v.Pixels[0*ScreenWidth+(ScreenWidth-1)] {
		t.Error("bit 7 of the last byte should set the top-right pixel")
	}
}

func TestConvertIdempotent(t *testing.T) {
	v := NewVideo()
	vram := make([]byte, vramSize)
	vram[0x0123] = 0x5A

	v.Convert(vram)
	first := v.Pixels

	v.Convert(vram)
	if v.Pixels != first {
		t.Error("repeated conversion of the same VRAM must not change the framebuffer")
	}
}

func TestScreen(t *testing.T) {
	v := NewVideo()
	vram := make([]byte, vramSize)
	vram[0] = 0x01
	v.Convert(vram)

	idx := (ScreenHeight - 1) * ScreenWidth
	if !v.Screen(idx) {
		t.Errorf("Screen(%d) should report the set pixel", idx)
	}
	if v.Screen(0) {
		t.Error("Screen(0) should be clear")
	}
}
