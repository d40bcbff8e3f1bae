package invaders

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Main bus used by the CPU. Owns the flat 64 KiB memory and the cabinet
// peripherals, and paces execution against the wall clock.
type Bus struct {
	Cpu        *Cpu8080        // Intel 8080 CPU.
	Ram        [64 * 1024]byte // Flat 64kb memory: ROM low, work RAM and VRAM above.
	Shifter    *ShiftRegister  // Cabinet shift-register peripheral.
	Controller *Controller     // Player input latch.
	Video      *Video          // VRAM to framebuffer converter.
	Disp       *Display

	isDebug   bool    // Enable debug panel
	isLogging bool    // Enable logging
	scale     float64 // Window scale factor
}

const (
	// Memory map
	romMaxAddr  uint16 = 0x1FFF // 0x0000-0x1FFF code
	workRamAddr uint16 = 0x2000 // 0x2000-0x23FF work RAM
	// VRAM occupies [vramBase, vramBase+vramSize) - see video.go.

	// Timing: a 2 MHz CPU driven at 60 frames per second, with the video
	// hardware raising an interrupt at mid-frame and at vblank.
	cyclesPerSecond    = 2000000
	fps                = 60
	cyclesPerFrame     = cyclesPerSecond / fps
	cyclesPerHalfFrame = cyclesPerFrame / 2

	// Refresh the framebuffer every Nth frame to save work.
	drawEveryNthFrame = 5
)

func NewBus(isDebug, isLogging bool, scale float64) *Bus {
	// Create a new CPU. Here we use an Intel 8080.
	cpu := NewCpu8080()

	// Attach devices to the bus.
	bus := &Bus{
		Cpu:        cpu,
		Ram:        [64 * 1024]byte{},
		Shifter:    NewShiftRegister(),
		Controller: NewController(),
		Video:      NewVideo(),
		isDebug:    isDebug,
		isLogging:  isLogging,
		scale:      scale,
	}

	// Connect this bus to the cpu.
	cpu.ConnectBus(bus)

	if isLogging {
		bus.enableCpuTraceLog()
	}

	return bus
}

// Route the CPU trace to a timestamped log file.
func (b *Bus) enableCpuTraceLog() {
	if err := os.MkdirAll("./logs", 0775); err != nil {
		log.Fatal("Unable to create CPU log directory...\n", err)
	}

	logFile := fmt.Sprintf("./logs/cpu%s.log", time.Now().Format("20060102-150405"))
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE, 0664)
	if err != nil {
		log.Fatal("Unable to create CPU log file...\n", err)
	}

	b.Cpu.Logger = log.New(f, "", 0)
	b.Cpu.isLogging = true
}

// Used by the CPU to read data from the main bus at a specified address.
func (b *Bus) Read(addr uint16) byte {
	return b.Ram[addr]
}

// Used by the CPU to write data to the main bus at a specified address.
// Writes into the ROM region are permitted; the region is only special at
// load time.
func (b *Bus) Write(addr uint16, data byte) {
	b.Ram[addr] = data
}

////////////////////////////////////////////////////////////////
// Port I/O (Space Invaders wiring)

// PortRead services the IN instruction.
func (b *Bus) PortRead(port byte) byte {
	switch port {
	case 0:
		return 0x0E // unused, hardwired
	case 1:
		return b.Controller.Port()
	case 2:
		return 0x00 // no player-2 inputs wired
	case 3:
		return b.Shifter.Read()
	}

	b.Cpu.Logger.Printf("IN from unexpected port %d", port)
	return 0x00
}

// PortWrite services the OUT instruction.
func (b *Bus) PortWrite(port, data byte) {
	switch port {
	case 2:
		b.Shifter.SetOffset(data)
	case 3, 5, 6:
		// Sound and watchdog, not wired.
	case 4:
		b.Shifter.Write(data)
	default:
		b.Cpu.Logger.Printf("OUT to unexpected port %d", port)
	}
}

////////////////////////////////////////////////////////////////
// ROM loading

// The cabinet ROM set: four 2 KiB parts mapped into the low 8 KiB.
var romParts = []struct {
	name   string
	offset int
}{
	{"invaders.h", 0x0000},
	{"invaders.g", 0x0800},
	{"invaders.f", 0x1000},
	{"invaders.e", 0x1800},
}

// Load a ROM into memory at address 0. The path may be a single
// concatenated image, or a directory holding the cabinet's four-part set.
// Memory beyond the image stays zero.
func (b *Bus) Load(path string) {
	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("Unable to open %v\n%v\n", path, err)
	}

	if info.IsDir() {
		for _, part := range romParts {
			data, err := ioutil.ReadFile(filepath.Join(path, part.name))
			if err != nil {
				log.Fatalf("Unable to open ROM part %v\n%v\n", part.name, err)
			}
			if len(data) > 0x800 {
				log.Fatalf("ROM part %v too large: %d bytes\n", part.name, len(data))
			}
			copy(b.Ram[part.offset:], data)
		}
		return
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatalf("Unable to open %v\n%v\n", path, err)
	}
	if len(data) > len(b.Ram) {
		log.Fatalf("ROM image too large: %d bytes\n", len(data))
	}

	copy(b.Ram[:], data)
}

// Load a slice of bytes to memory at address 0.
func (b *Bus) LoadBytes(rom []byte) {
	copy(b.Ram[:], rom)
}

////////////////////////////////////////////////////////////////
// Frame driver

// Run the emulator. Each frame executes half the frame's cycle budget,
// raises the mid-frame interrupt (RST 1), executes the second half and
// raises the vblank interrupt (RST 2). The framebuffer is refreshed every
// few frames; input events are polled every frame.
func (b *Bus) Run() {
	// Create a PixelGL display for the video converter to render to.
	display := NewDisplay(b.isDebug, b.scale)
	b.Disp = display
	b.Video.ConnectDisplay(display)

	if b.isDebug {
		b.Cpu.Disassemble(0x0000, romMaxAddr)
	}

	interval := time.Second / fps

	frameCount := 0
	var t time.Time
	for !display.window.Closed() {
		t = time.Now()

		b.Controller.updateControllerInput(display.window)

		b.runCycles(cyclesPerHalfFrame)
		b.Cpu.TriggerInterrupt(1)
		b.runCycles(cyclesPerHalfFrame)
		b.Cpu.TriggerInterrupt(2)

		if b.Cpu.Halted {
			log.Println("CPU halted, exiting...")
			return
		}

		frameCount++
		if frameCount == drawEveryNthFrame {
			frameCount = 0

			b.Video.Convert(b.Ram[vramBase : vramBase+vramSize])
			b.Video.Render()

			if b.isDebug {
				b.DrawDebugPanel()
			}

			display.UpdateScreen()
		} else {
			// Poll window events without redrawing.
			display.window.UpdateInput()
		}

		time.Sleep(interval - time.Since(t))
	}
}

// Advance the CPU by at least the given number of cycles, stopping early if
// the CPU halts.
func (b *Bus) runCycles(target int) {
	cycles := 0
	for cycles < target && !b.Cpu.Halted {
		cycles += b.Cpu.Step()
	}
}

////////////////////////////////////////////////////////////////
// Debug panel

func (b *Bus) DrawDebugPanel() {
	b.Disp.WriteRegDebugString(b.getCpuDebugString())
	b.Disp.WritePortDebugString(b.getPortDebugString())
	b.Disp.WriteInstDebugString(b.getDisassemblyLines())
}

func (b *Bus) getDisassemblyLines() string {
	var buf bytes.Buffer

	idx := b.Cpu.Pc
	for i := 0; i < 10; i++ {
		next, err := getNextIdx(b.Cpu.disassembly, idx)
		if err != nil {
			// End of the map
			break
		}
		buf.WriteString(b.Cpu.disassembly[next])
		buf.WriteByte('\n')
		idx = next + 1
	}

	return buf.String()
}

// Items are stored by memory address, not all memory addresses are filled.
// This function returns the next item at or after the given memory address.
func getNextIdx(m map[uint16]string, addr uint16) (uint16, error) {
	for _, ok := m[addr]; !ok; _, ok = m[addr] {
		if addr >= 0xFFFF {
			return 0, errors.New("End of map")
		}
		addr++
	}

	return addr, nil
}

func (b *Bus) getCpuDebugString() string {
	var buf bytes.Buffer

	cpu := b.Cpu
	buf.WriteString(fmt.Sprintf("Flags: %08b\n", cpu.Status))
	buf.WriteString(fmt.Sprintf("PC: %#04X\n", cpu.Pc))
	buf.WriteString(fmt.Sprintf("SP: %#04X\n", cpu.Sp))
	buf.WriteString(fmt.Sprintf("A: %#02X\n", cpu.A))
	buf.WriteString(fmt.Sprintf("BC: %#02X%02X\n", cpu.B, cpu.C))
	buf.WriteString(fmt.Sprintf("DE: %#02X%02X\n", cpu.D, cpu.E))
	buf.WriteString(fmt.Sprintf("HL: %#02X%02X\n\n", cpu.H, cpu.L))

	// Cycles
	buf.WriteString(fmt.Sprintf("Cycle Count: %d\n", cpu.CycleCount))

	return buf.String()
}

func (b *Bus) getPortDebugString() string {
	return fmt.Sprintf("Port 1: %08b\nShift: %#02X", b.Controller.Port(), b.Shifter.Read())
}
