package invaders

import (
	"image/color"
)

const (
	// Cabinet display resolution, after rotation.
	ScreenWidth  = 224
	ScreenHeight = 256

	// VRAM region of the memory map: 1 bit per pixel, stored as vertical
	// strips of the 90°-rotated source image.
	vramBase = 0x2400
	vramSize = 0x1C00
)

// Video converts the rotated 1 bpp VRAM into a linear row-major framebuffer
// and renders it to the display.
type Video struct {
	Pixels [ScreenWidth * ScreenHeight]bool // (0,0) = top-left

	disp *Display
}

func NewVideo() *Video {
	return &Video{}
}

func (v *Video) ConnectDisplay(d *Display) { v.disp = d }

// Convert refreshes the framebuffer from the given VRAM slice. Each source
// byte holds 8 vertical pixels of a 256-tall column, bottom-up; the image is
// rotated 90° counter-clockwise onto the 224×256 screen. Pure with respect
// to VRAM, so it may be called at any cadence.
func (v *Video) Convert(vram []byte) {
	for i := 0; i < vramSize; i++ {
		value := vram[i]
		pixelIndex := i * 8
		srcRow := pixelIndex / ScreenHeight
		srcCol := pixelIndex % ScreenHeight

		dstCol := srcRow
		dstRow := ScreenHeight - 1 - srcCol
		for j := 0; j < 8; j++ {
			v.Pixels[(dstRow-j)*ScreenWidth+dstCol] = value&0x01 == 0x01
			value >>= 1
		}
	}
}

// Screen reports the i-th framebuffer pixel, row-major from the top-left.
func (v *Video) Screen(i int) bool {
	return v.Pixels[i]
}

var (
	pixelOff = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	pixelOn  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// Render draws the framebuffer into the display's game image.
func (v *Video) Render() {
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			c := pixelOff
			if v.Pixels[y*ScreenWidth+x] {
				c = pixelOn
			}
			v.disp.DrawPixel(x, y, c)
		}
	}
}
