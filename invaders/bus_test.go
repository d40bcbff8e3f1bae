package invaders

import (
	"testing"
)

func TestBusReadWrite(t *testing.T) {
	bus := newTestBus()

	bus.Write(0x2000, 0x42)
	if got := bus.Read(0x2000); got != 0x42 {
		t.Errorf("got %#02x, want 0x42\n", got)
	}

	// Writes into the ROM region are permitted; the region is only special
	// at load time.
	bus.Write(0x0100, 0x99)
	if got := bus.Read(0x0100); got != 0x99 {
		t.Errorf("got %#02x, want 0x99\n", got)
	}
}

func TestLoadBytes(t *testing.T) {
	bus := newTestBus()

	rom := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	bus.LoadBytes(rom)

	for i, want := range rom {
		if got := bus.Ram[i]; got != want {
			t.Errorf("Ram[%d]: got %#02x, want %#02x\n", i, got, want)
		}
	}

	// Memory beyond the image stays zero.
	if bus.Ram[len(rom)] != 0x00 {
		t.Error("memory beyond the image should be zero")
	}
}

func TestPortRead(t *testing.T) {
	bus := newTestBus()

	tests := []struct {
		port byte
		want byte
	}{
		{0, 0x0E}, // hardwired
		{1, 0x08}, // idle latch, bit 3 tied high
		{2, 0x00}, // no player-2 inputs
	}

	for _, test := range tests {
		if got := bus.PortRead(test.port); got != test.want {
			t.Errorf("port %d: got %#02x, want %#02x\n", test.port, got, test.want)
		}
	}

	// Unconfigured port reads zero.
	if got := bus.PortRead(7); got != 0x00 {
		t.Errorf("port 7: got %#02x, want 0x00\n", got)
	}
}

func TestPortShiftRegister(t *testing.T) {
	bus := newTestBus()

	bus.PortWrite(2, 0x03) // offset
	bus.PortWrite(4, 0xAB)
	bus.PortWrite(4, 0xCD)

	if got := bus.PortRead(3); got != 0x6D {
		t.Errorf("got %#02x, want 0x6D\n", got)
	}
}

func TestPortWriteIgnored(t *testing.T) {
	bus := newTestBus()

	// Sound and watchdog ports are accepted and ignored.
	bus.PortWrite(3, 0xFF)
	bus.PortWrite(5, 0xFF)
	bus.PortWrite(6, 0xFF)

	if got := bus.PortRead(3); got != 0x00 {
		t.Errorf("shift register disturbed: got %#02x\n", got)
	}
}

func TestNewBusState(t *testing.T) {
	bus := newTestBus()
	cpu := bus.Cpu

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{cpu.Pc, uint16(0x0000)},
		{cpu.Sp, uint16(0x0000)},
		{cpu.A, byte(0x00)},
		{cpu.Status, byte(0x00)},
		{cpu.InterruptEnable, true},
		{bus.Controller.Port(), byte(0x08)},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}
