package invaders

import (
	"bytes"
	"fmt"
)

// Disassemble the loaded 8080 program into human-readable CPU instructions
// mapped to their respective memory address. Operand bytes are appended to
// the mnemonic; the instruction size in the lookup table drives the walk.
func (cpu *Cpu8080) Disassemble(startAddr, endAddr uint16) map[uint16]string {
	// Current CPU instruction, disassembled
	var lineDiss bytes.Buffer

	// this needs to be bigger than uint16, to determine when larger than endAddr
	var addr uint32 = uint32(startAddr)

	disassembly := make(map[uint16]string)

	for addr <= uint32(endAddr) {
		// Instruction memory address
		lineAddr := uint16(addr)

		opcode := cpu.read(uint16(addr))
		addr++
		inst := cpu.InstLookup[opcode]

		lineDiss.WriteString(fmt.Sprintf("$%04X: %s", lineAddr, inst.Name))

		switch inst.Size {
		case 2:
			d8 := cpu.read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf(" $%02X", d8))
		case 3:
			lo := cpu.read(uint16(addr))
			addr++
			hi := cpu.read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf(" $%04X", (uint16(hi)<<8)|uint16(lo)))
		}

		// Add to map
		disassembly[lineAddr] = lineDiss.String()
		lineDiss.Reset()
	}

	cpu.disassembly = disassembly

	return disassembly
}
