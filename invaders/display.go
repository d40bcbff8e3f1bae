package invaders

import (
	"image"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type Display struct {
	gameRgba *image.RGBA // Rectangle of RGBA points, used to manipulate pixels on the screen.

	window     *pixelgl.Window
	gameMatrix pixel.Matrix // Scale and position to render the running game.

	// Debug text stuff
	debugAtlas    *text.Atlas // Used to load the font
	debugRegText  *text.Text  // CPU register/flag printout
	debugInstText *text.Text  // CPU instruction disassembly
	debugPortText *text.Text  // Input latch and shift register status

	isDebug bool // Debug mode enabled on the emulator
}

const (
	// Where to render the display on the user's monitor.
	screenPosX float64 = 600
	screenPosY float64 = 200

	// Debug display settings
	debugResW float64 = 360
)

func NewDisplay(isDebug bool, scale float64) *Display {
	rect := image.Rect(0, 0, ScreenWidth, ScreenHeight)
	gameRgba := image.NewRGBA(rect)

	gameW := float64(ScreenWidth) * scale
	gameH := float64(ScreenHeight) * scale

	screenW := gameW
	if isDebug {
		screenW += debugResW
	}

	config := pixelgl.WindowConfig{
		Title:    "Space Invaders",
		Bounds:   pixel.R(0, 0, screenW, gameH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("Unable to create new PixelGl window...\n", err)
	}

	// Calculate matrix required to render the game to the display based on
	// the set scale.
	pic := pixel.PictureDataFromImage(gameRgba)
	gameMatrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	gameMatrix = gameMatrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	// Debug text
	debugAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	debugRegText := text.New(pixel.V(gameW+8, gameH-20), debugAtlas)
	debugInstText := text.New(pixel.V(gameW+8, gameH-220), debugAtlas)
	debugPortText := text.New(pixel.V(gameW+8, gameH-180), debugAtlas)

	return &Display{
		gameRgba:      gameRgba,
		window:        window,
		gameMatrix:    gameMatrix,
		debugAtlas:    debugAtlas,
		debugRegText:  debugRegText,
		debugInstText: debugInstText,
		debugPortText: debugPortText,
		isDebug:       isDebug,
	}
}

func (d *Display) DrawPixel(x, y int, c color.RGBA) {
	d.gameRgba.SetRGBA(x, y, c)
}

// Write a string of text to the CPU register section of the debug panel.
func (d *Display) WriteRegDebugString(t string) {
	d.debugRegText.Clear()
	d.debugRegText.WriteString(t)
}

// Write a string of text to the instruction disassembly section of the debug panel.
func (d *Display) WriteInstDebugString(t string) {
	d.debugInstText.Clear()
	d.debugInstText.WriteString(t)
}

// Write a string of text to the port status section of the debug panel.
func (d *Display) WritePortDebugString(t string) {
	d.debugPortText.Clear()
	d.debugPortText.WriteString(t)
}

// UpdateScreen updates the game display, and the debug panel when enabled,
// using the display's current image.RGBA representation.
func (d *Display) UpdateScreen() {
	d.window.Clear(colornames.Black)

	d.updateGameDisplay()

	if d.isDebug {
		d.debugRegText.Draw(d.window, pixel.IM)
		d.debugInstText.Draw(d.window, pixel.IM)
		d.debugPortText.Draw(d.window, pixel.IM)
	}

	d.window.Update()
}

func (d *Display) updateGameDisplay() {
	sprite := getSpriteFromImage(d.gameRgba)
	sprite.Draw(d.window, d.gameMatrix)
}

// Convenience function to get a pixel sprite from an image RGBA.
func getSpriteFromImage(img *image.RGBA) *pixel.Sprite {
	pic := pixel.PictureDataFromImage(img)
	sprite := pixel.NewSprite(pic, pic.Bounds())

	return sprite
}
