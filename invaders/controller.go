package invaders

import (
	"github.com/faiface/pixel/pixelgl"
)

// Input bitmasks for port 1, as wired in the cabinet.
const (
	KeyCoin  byte = 0x01
	KeyStart byte = 0x02
	KeyShoot byte = 0x10
	KeyLeft  byte = 0x20
	KeyRight byte = 0x40
)

// Bit 3 of port 1 is tied high in the cabinet hardware.
const portIdleBits byte = 0x08

// Controller latches the player inputs as the bitmask read back by IN 1.
type Controller struct {
	port byte // Latched key state
}

func NewController() *Controller {
	return &Controller{
		port: portIdleBits,
	}
}

// Port returns the current latch value.
func (c *Controller) Port() byte { return c.port }

// KeyDown ORs key bits into the latch.
func (c *Controller) KeyDown(mask byte) {
	c.port |= mask
}

// KeyUp clears key bits from the latch.
func (c *Controller) KeyUp(mask byte) {
	c.port &^= mask
}

// Available cabinet buttons and their keyboard binds
// Keyboard binds:
/*
	Coin     ---> C
	1P Start ---> 1
	Shoot    ---> Space
	Left     ---> Left arrow
	Right    ---> Right arrow
*/
var controllerKeys = map[byte]pixelgl.Button{
	KeyCoin:  pixelgl.KeyC,
	KeyStart: pixelgl.Key1,
	KeyShoot: pixelgl.KeySpace,
	KeyLeft:  pixelgl.KeyLeft,
	KeyRight: pixelgl.KeyRight,
}

func (c *Controller) updateControllerInput(win *pixelgl.Window) {
	// Key down
	for mask, key := range controllerKeys {
		if win.JustPressed(key) {
			c.KeyDown(mask)
		}
	}
	// Key up
	for mask, key := range controllerKeys {
		if win.JustReleased(key) {
			c.KeyUp(mask)
		}
	}
}
