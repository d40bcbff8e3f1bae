package invaders

import (
	"log"
	"math/bits"
	"os"
)

// Intel 8080 CPU core, wired for the Space Invaders cabinet.
type Cpu8080 struct {
	Pc     uint16 // Program Counter
	Sp     uint16 // Stack Pointer
	A      byte   // Accumulator Register
	B      byte
	C      byte
	D      byte
	E      byte
	H      byte // High byte of the HL memory pointer pair
	L      byte // Low byte of the HL memory pointer pair
	Status byte // Condition Flags

	InterruptEnable bool // Whether a pending interrupt may be accepted
	Halted          bool // Set by HLT; the frame driver exits when it sees this

	bus *Bus // Communication Bus

	// Internal variables
	pendingInterrupt int    // Latched interrupt index 0..7, -1 when none
	CycleCount       uint64 // Total # of cycles executed by the CPU

	InstLookup [256]Instruction // Instruction operation lookup

	disassembly map[uint16]string // Populated by Disassemble, used for debug

	isLogging bool        // Enable per-instruction trace logging
	Logger    *log.Logger // CPU logging
}

// An 8080 instruction: mnemonic, handler and total byte size (opcode +
// operands). Execute reports whether a conditional CALL/RET took its branch;
// untaken branches cost 6 cycles less than the table value. Everything else
// returns true.
type Instruction struct {
	Name    string
	Execute func() bool
	Size    byte
}

// Cycles consumed per opcode, assuming conditional branches are taken.
var opCycles = [256]byte{
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4,
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4,
	4, 10, 16, 5, 5, 5, 7, 4, 4, 10, 16, 5, 5, 5, 7, 4,
	4, 10, 7, 5, 10, 10, 7, 4, 4, 10, 13, 5, 5, 5, 7, 4,

	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 7, 5, 5, 5, 5, 5, 5, 5, 5, 5,

	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 7, 4,

	11, 10, 10, 10, 17, 11, 7, 11, 11, 10, 10, 10, 17, 17, 7, 11,
	11, 10, 10, 10, 17, 11, 7, 11, 11, 10, 10, 10, 10, 17, 7, 11,
	11, 10, 10, 18, 17, 11, 7, 11, 11, 5, 10, 5, 17, 17, 7, 11,
	11, 10, 10, 4, 17, 11, 7, 11, 11, 5, 10, 4, 17, 17, 7, 11,
}

// The shortfall when a conditional CALL/RET does not take its branch.
const untakenCycles = 6

func NewCpu8080() *Cpu8080 {
	cpu := &Cpu8080{
		Pc:     0x0000,
		Sp:     0x0000,
		Status: 0x00,

		InterruptEnable:  true,
		pendingInterrupt: -1,

		Logger: log.New(os.Stderr, "", 0),
	}

	// Create the lookup table containing all the CPU instructions.
	// Reference: Intel 8080 Assembly Language Programming Manual.
	cpu.InstLookup = [256]Instruction{
		{"NOP", cpu.opNOP, 1},                          // 0x00
		{"LXI B,D16", cpu.lxiRP(&cpu.B, &cpu.C), 3},    // 0x01
		{"STAX B", cpu.staxRP(&cpu.B, &cpu.C), 1},      // 0x02
		{"INX B", cpu.inxRP(&cpu.B, &cpu.C), 1},        // 0x03
		{"INR B", cpu.inrR(&cpu.B), 1},                 // 0x04
		{"DCR B", cpu.dcrR(&cpu.B), 1},                 // 0x05
		{"MVI B,D8", cpu.mviR(&cpu.B), 2},              // 0x06
		{"RLC", cpu.opRLC, 1},                          // 0x07
		{"???", cpu.opNotUsed, 1},                      // 0x08
		{"DAD B", cpu.dadRP(&cpu.B, &cpu.C), 1},        // 0x09
		{"LDAX B", cpu.ldaxRP(&cpu.B, &cpu.C), 1},      // 0x0A
		{"DCX B", cpu.dcxRP(&cpu.B, &cpu.C), 1},        // 0x0B
		{"INR C", cpu.inrR(&cpu.C), 1},                 // 0x0C
		{"DCR C", cpu.dcrR(&cpu.C), 1},                 // 0x0D
		{"MVI C,D8", cpu.mviR(&cpu.C), 2},              // 0x0E
		{"RRC", cpu.opRRC, 1},                          // 0x0F
		{"???", cpu.opNotUsed, 1},                      // 0x10
		{"LXI D,D16", cpu.lxiRP(&cpu.D, &cpu.E), 3},    // 0x11
		{"STAX D", cpu.staxRP(&cpu.D, &cpu.E), 1},      // 0x12
		{"INX D", cpu.inxRP(&cpu.D, &cpu.E), 1},        // 0x13
		{"INR D", cpu.inrR(&cpu.D), 1},                 // 0x14
		{"DCR D", cpu.dcrR(&cpu.D), 1},                 // 0x15
		{"MVI D,D8", cpu.mviR(&cpu.D), 2},              // 0x16
		{"RAL", cpu.opRAL, 1},                          // 0x17
		{"???", cpu.opNotUsed, 1},                      // 0x18
		{"DAD D", cpu.dadRP(&cpu.D, &cpu.E), 1},        // 0x19
		{"LDAX D", cpu.ldaxRP(&cpu.D, &cpu.E), 1},      // 0x1A
		{"DCX D", cpu.dcxRP(&cpu.D, &cpu.E), 1},        // 0x1B
		{"INR E", cpu.inrR(&cpu.E), 1},                 // 0x1C
		{"DCR E", cpu.dcrR(&cpu.E), 1},                 // 0x1D
		{"MVI E,D8", cpu.mviR(&cpu.E), 2},              // 0x1E
		{"RAR", cpu.opRAR, 1},                          // 0x1F
		{"???", cpu.opNotUsed, 1},                      // 0x20
		{"LXI H,D16", cpu.lxiRP(&cpu.H, &cpu.L), 3},    // 0x21
		{"SHLD adr", cpu.opSHLD, 3},                    // 0x22
		{"INX H", cpu.inxRP(&cpu.H, &cpu.L), 1},        // 0x23
		{"INR H", cpu.inrR(&cpu.H), 1},                 // 0x24
		{"DCR H", cpu.dcrR(&cpu.H), 1},                 // 0x25
		{"MVI H,D8", cpu.mviR(&cpu.H), 2},              // 0x26
		{"DAA", cpu.opDAA, 1},                          // 0x27
		{"???", cpu.opNotUsed, 1},                      // 0x28
		{"DAD H", cpu.dadRP(&cpu.H, &cpu.L), 1},        // 0x29
		{"LHLD adr", cpu.opLHLD, 3},                    // 0x2A
		{"DCX H", cpu.dcxRP(&cpu.H, &cpu.L), 1},        // 0x2B
		{"INR L", cpu.inrR(&cpu.L), 1},                 // 0x2C
		{"DCR L", cpu.dcrR(&cpu.L), 1},                 // 0x2D
		{"MVI L,D8", cpu.mviR(&cpu.L), 2},              // 0x2E
		{"CMA", cpu.opCMA, 1},                          // 0x2F
		{"???", cpu.opNotUsed, 1},                      // 0x30
		{"LXI SP,D16", cpu.opLXISP, 3},                 // 0x31
		{"STA adr", cpu.opSTA, 3},                      // 0x32
		{"INX SP", cpu.opINXSP, 1},                     // 0x33
		{"INR M", cpu.opINRM, 1},                       // 0x34
		{"DCR M", cpu.opDCRM, 1},                       // 0x35
		{"MVI M,D8", cpu.opMVIM, 2},                    // 0x36
		{"STC", cpu.opSTC, 1},                          // 0x37
		{"???", cpu.opNotUsed, 1},                      // 0x38
		{"DAD SP", cpu.opDADSP, 1},                     // 0x39
		{"LDA adr", cpu.opLDA, 3},                      // 0x3A
		{"DCX SP", cpu.opDCXSP, 1},                     // 0x3B
		{"INR A", cpu.inrR(&cpu.A), 1},                 // 0x3C
		{"DCR A", cpu.dcrR(&cpu.A), 1},                 // 0x3D
		{"MVI A,D8", cpu.mviR(&cpu.A), 2},              // 0x3E
		{"CMC", cpu.opCMC, 1},                          // 0x3F
		{"MOV B,B", cpu.movRR(&cpu.B, &cpu.B), 1},      // 0x40
		{"MOV B,C", cpu.movRR(&cpu.B, &cpu.C), 1},      // 0x41
		{"MOV B,D", cpu.movRR(&cpu.B, &cpu.D), 1},      // 0x42
		{"MOV B,E", cpu.movRR(&cpu.B, &cpu.E), 1},      // 0x43
		{"MOV B,H", cpu.movRR(&cpu.B, &cpu.H), 1},      // 0x44
		{"MOV B,L", cpu.movRR(&cpu.B, &cpu.L), 1},      // 0x45
		{"MOV B,M", cpu.movRM(&cpu.B), 1},              // 0x46
		{"MOV B,A", cpu.movRR(&cpu.B, &cpu.A), 1},      // 0x47
		{"MOV C,B", cpu.movRR(&cpu.C, &cpu.B), 1},      // 0x48
		{"MOV C,C", cpu.movRR(&cpu.C, &cpu.C), 1},      // 0x49
		{"MOV C,D", cpu.movRR(&cpu.C, &cpu.D), 1},      // 0x4A
		{"MOV C,E", cpu.movRR(&cpu.C, &cpu.E), 1},      // 0x4B
		{"MOV C,H", cpu.movRR(&cpu.C, &cpu.H), 1},      // 0x4C
		{"MOV C,L", cpu.movRR(&cpu.C, &cpu.L), 1},      // 0x4D
		{"MOV C,M", cpu.movRM(&cpu.C), 1},              // 0x4E
		{"MOV C,A", cpu.movRR(&cpu.C, &cpu.A), 1},      // 0x4F
		{"MOV D,B", cpu.movRR(&cpu.D, &cpu.B), 1},      // 0x50
		{"MOV D,C", cpu.movRR(&cpu.D, &cpu.C), 1},      // 0x51
		{"MOV D,D", cpu.movRR(&cpu.D, &cpu.D), 1},      // 0x52
		{"MOV D,E", cpu.movRR(&cpu.D, &cpu.E), 1},      // 0x53
		{"MOV D,H", cpu.movRR(&cpu.D, &cpu.H), 1},      // 0x54
		{"MOV D,L", cpu.movRR(&cpu.D, &cpu.L), 1},      // 0x55
		{"MOV D,M", cpu.movRM(&cpu.D), 1},              // 0x56
		{"MOV D,A", cpu.movRR(&cpu.D, &cpu.A), 1},      // 0x57
		{"MOV E,B", cpu.movRR(&cpu.E, &cpu.B), 1},      // 0x58
		{"MOV E,C", cpu.movRR(&cpu.E, &cpu.C), 1},      // 0x59
		{"MOV E,D", cpu.movRR(&cpu.E, &cpu.D), 1},      // 0x5A
		{"MOV E,E", cpu.movRR(&cpu.E, &cpu.E), 1},      // 0x5B
		{"MOV E,H", cpu.movRR(&cpu.E, &cpu.H), 1},      // 0x5C
		{"MOV E,L", cpu.movRR(&cpu.E, &cpu.L), 1},      // 0x5D
		{"MOV E,M", cpu.movRM(&cpu.E), 1},              // 0x5E
		{"MOV E,A", cpu.movRR(&cpu.E, &cpu.A), 1},      // 0x5F
		{"MOV H,B", cpu.movRR(&cpu.H, &cpu.B), 1},      // 0x60
		{"MOV H,C", cpu.movRR(&cpu.H, &cpu.C), 1},      // 0x61
		{"MOV H,D", cpu.movRR(&cpu.H, &cpu.D), 1},      // 0x62
		{"MOV H,E", cpu.movRR(&cpu.H, &cpu.E), 1},      // 0x63
		{"MOV H,H", cpu.movRR(&cpu.H, &cpu.H), 1},      // 0x64
		{"MOV H,L", cpu.movRR(&cpu.H, &cpu.L), 1},      // 0x65
		{"MOV H,M", cpu.movRM(&cpu.H), 1},              // 0x66
		{"MOV H,A", cpu.movRR(&cpu.H, &cpu.A), 1},      // 0x67
		{"MOV L,B", cpu.movRR(&cpu.L, &cpu.B), 1},      // 0x68
		{"MOV L,C", cpu.movRR(&cpu.L, &cpu.C), 1},      // 0x69
		{"MOV L,D", cpu.movRR(&cpu.L, &cpu.D), 1},      // 0x6A
		{"MOV L,E", cpu.movRR(&cpu.L, &cpu.E), 1},      // 0x6B
		{"MOV L,H", cpu.movRR(&cpu.L, &cpu.H), 1},      // 0x6C
		{"MOV L,L", cpu.movRR(&cpu.L, &cpu.L), 1},      // 0x6D
		{"MOV L,M", cpu.movRM(&cpu.L), 1},              // 0x6E
		{"MOV L,A", cpu.movRR(&cpu.L, &cpu.A), 1},      // 0x6F
		{"MOV M,B", cpu.movMR(&cpu.B), 1},              // 0x70
		{"MOV M,C", cpu.movMR(&cpu.C), 1},              // 0x71
		{"MOV M,D", cpu.movMR(&cpu.D), 1},              // 0x72
		{"MOV M,E", cpu.movMR(&cpu.E), 1},              // 0x73
		{"MOV M,H", cpu.movMR(&cpu.H), 1},              // 0x74
		{"MOV M,L", cpu.movMR(&cpu.L), 1},              // 0x75
		{"HLT", cpu.opHLT, 1},                          // 0x76
		{"MOV M,A", cpu.movMR(&cpu.A), 1},              // 0x77
		{"MOV A,B", cpu.movRR(&cpu.A, &cpu.B), 1},      // 0x78
		{"MOV A,C", cpu.movRR(&cpu.A, &cpu.C), 1},      // 0x79
		{"MOV A,D", cpu.movRR(&cpu.A, &cpu.D), 1},      // 0x7A
		{"MOV A,E", cpu.movRR(&cpu.A, &cpu.E), 1},      // 0x7B
		{"MOV A,H", cpu.movRR(&cpu.A, &cpu.H), 1},      // 0x7C
		{"MOV A,L", cpu.movRR(&cpu.A, &cpu.L), 1},      // 0x7D
		{"MOV A,M", cpu.movRM(&cpu.A), 1},              // 0x7E
		{"MOV A,A", cpu.movRR(&cpu.A, &cpu.A), 1},      // 0x7F
		{"ADD B", cpu.addR(&cpu.B), 1},                 // 0x80
		{"ADD C", cpu.addR(&cpu.C), 1},                 // 0x81
		{"ADD D", cpu.addR(&cpu.D), 1},                 // 0x82
		{"ADD E", cpu.addR(&cpu.E), 1},                 // 0x83
		{"ADD H", cpu.addR(&cpu.H), 1},                 // 0x84
		{"ADD L", cpu.addR(&cpu.L), 1},                 // 0x85
		{"ADD M", cpu.opADDM, 1},                       // 0x86
		{"ADD A", cpu.addR(&cpu.A), 1},                 // 0x87
		{"ADC B", cpu.adcR(&cpu.B), 1},                 // 0x88
		{"ADC C", cpu.adcR(&cpu.C), 1},                 // 0x89
		{"ADC D", cpu.adcR(&cpu.D), 1},                 // 0x8A
		{"ADC E", cpu.adcR(&cpu.E), 1},                 // 0x8B
		{"ADC H", cpu.adcR(&cpu.H), 1},                 // 0x8C
		{"ADC L", cpu.adcR(&cpu.L), 1},                 // 0x8D
		{"ADC M", cpu.opADCM, 1},                       // 0x8E
		{"ADC A", cpu.adcR(&cpu.A), 1},                 // 0x8F
		{"SUB B", cpu.subR(&cpu.B), 1},                 // 0x90
		{"SUB C", cpu.subR(&cpu.C), 1},                 // 0x91
		{"SUB D", cpu.subR(&cpu.D), 1},                 // 0x92
		{"SUB E", cpu.subR(&cpu.E), 1},                 // 0x93
		{"SUB H", cpu.subR(&cpu.H), 1},                 // 0x94
		{"SUB L", cpu.subR(&cpu.L), 1},                 // 0x95
		{"SUB M", cpu.opSUBM, 1},                       // 0x96
		{"SUB A", cpu.subR(&cpu.A), 1},                 // 0x97
		{"SBB B", cpu.sbbR(&cpu.B), 1},                 // 0x98
		{"SBB C", cpu.sbbR(&cpu.C), 1},                 // 0x99
		{"SBB D", cpu.sbbR(&cpu.D), 1},                 // 0x9A
		{"SBB E", cpu.sbbR(&cpu.E), 1},                 // 0x9B
		{"SBB H", cpu.sbbR(&cpu.H), 1},                 // 0x9C
		{"SBB L", cpu.sbbR(&cpu.L), 1},                 // 0x9D
		{"SBB M", cpu.opSBBM, 1},                       // 0x9E
		{"SBB A", cpu.sbbR(&cpu.A), 1},                 // 0x9F
		{"ANA B", cpu.anaR(&cpu.B), 1},                 // 0xA0
		{"ANA C", cpu.anaR(&cpu.C), 1},                 // 0xA1
		{"ANA D", cpu.anaR(&cpu.D), 1},                 // 0xA2
		{"ANA E", cpu.anaR(&cpu.E), 1},                 // 0xA3
		{"ANA H", cpu.anaR(&cpu.H), 1},                 // 0xA4
		{"ANA L", cpu.anaR(&cpu.L), 1},                 // 0xA5
		{"ANA M", cpu.opANAM, 1},                       // 0xA6
		{"ANA A", cpu.anaR(&cpu.A), 1},                 // 0xA7
		{"XRA B", cpu.xraR(&cpu.B), 1},                 // 0xA8
		{"XRA C", cpu.xraR(&cpu.C), 1},                 // 0xA9
		{"XRA D", cpu.xraR(&cpu.D), 1},                 // 0xAA
		{"XRA E", cpu.xraR(&cpu.E), 1},                 // 0xAB
		{"XRA H", cpu.xraR(&cpu.H), 1},                 // 0xAC
		{"XRA L", cpu.xraR(&cpu.L), 1},                 // 0xAD
		{"XRA M", cpu.opXRAM, 1},                       // 0xAE
		{"XRA A", cpu.xraR(&cpu.A), 1},                 // 0xAF
		{"ORA B", cpu.oraR(&cpu.B), 1},                 // 0xB0
		{"ORA C", cpu.oraR(&cpu.C), 1},                 // 0xB1
		{"ORA D", cpu.oraR(&cpu.D), 1},                 // 0xB2
		{"ORA E", cpu.oraR(&cpu.E), 1},                 // 0xB3
		{"ORA H", cpu.oraR(&cpu.H), 1},                 // 0xB4
		{"ORA L", cpu.oraR(&cpu.L), 1},                 // 0xB5
		{"ORA M", cpu.opORAM, 1},                       // 0xB6
		{"ORA A", cpu.oraR(&cpu.A), 1},                 // 0xB7
		{"CMP B", cpu.cmpR(&cpu.B), 1},                 // 0xB8
		{"CMP C", cpu.cmpR(&cpu.C), 1},                 // 0xB9
		{"CMP D", cpu.cmpR(&cpu.D), 1},                 // 0xBA
		{"CMP E", cpu.cmpR(&cpu.E), 1},                 // 0xBB
		{"CMP H", cpu.cmpR(&cpu.H), 1},                 // 0xBC
		{"CMP L", cpu.cmpR(&cpu.L), 1},                 // 0xBD
		{"CMP M", cpu.opCMPM, 1},                       // 0xBE
		{"CMP A", cpu.cmpR(&cpu.A), 1},                 // 0xBF
		{"RNZ", cpu.retIf(FlagZ, false), 1},            // 0xC0
		{"POP B", cpu.popRP(&cpu.B, &cpu.C), 1},        // 0xC1
		{"JNZ adr", cpu.jmpIf(FlagZ, false), 3},        // 0xC2
		{"JMP adr", cpu.opJMP, 3},                      // 0xC3
		{"CNZ adr", cpu.callIf(FlagZ, false), 3},       // 0xC4
		{"PUSH B", cpu.pushRP(&cpu.B, &cpu.C), 1},      // 0xC5
		{"ADI D8", cpu.opADI, 2},                       // 0xC6
		{"RST 0", cpu.rst(0x00), 1},                    // 0xC7
		{"RZ", cpu.retIf(FlagZ, true), 1},              // 0xC8
		{"RET", cpu.opRET, 1},                          // 0xC9
		{"JZ adr", cpu.jmpIf(FlagZ, true), 3},          // 0xCA
		{"???", cpu.opNotUsed, 1},                      // 0xCB
		{"CZ adr", cpu.callIf(FlagZ, true), 3},         // 0xCC
		{"CALL adr", cpu.opCALL, 3},                    // 0xCD
		{"ACI D8", cpu.opACI, 2},                       // 0xCE
		{"RST 1", cpu.rst(0x08), 1},                    // 0xCF
		{"RNC", cpu.retIf(FlagCY, false), 1},           // 0xD0
		{"POP D", cpu.popRP(&cpu.D, &cpu.E), 1},        // 0xD1
		{"JNC adr", cpu.jmpIf(FlagCY, false), 3},       // 0xD2
		{"OUT D8", cpu.opOUT, 2},                       // 0xD3
		{"CNC adr", cpu.callIf(FlagCY, false), 3},      // 0xD4
		{"PUSH D", cpu.pushRP(&cpu.D, &cpu.E), 1},      // 0xD5
		{"SUI D8", cpu.opSUI, 2},                       // 0xD6
		{"RST 2", cpu.rst(0x10), 1},                    // 0xD7
		{"RC", cpu.retIf(FlagCY, true), 1},             // 0xD8
		{"???", cpu.opNotUsed, 1},                      // 0xD9
		{"JC adr", cpu.jmpIf(FlagCY, true), 3},         // 0xDA
		{"IN D8", cpu.opIN, 2},                         // 0xDB
		{"CC adr", cpu.callIf(FlagCY, true), 3},        // 0xDC
		{"???", cpu.opNotUsed, 1},                      // 0xDD
		{"SBI D8", cpu.opSBI, 2},                       // 0xDE
		{"RST 3", cpu.rst(0x18), 1},                    // 0xDF
		{"RPO", cpu.retIf(FlagP, false), 1},            // 0xE0
		{"POP H", cpu.popRP(&cpu.H, &cpu.L), 1},        // 0xE1
		{"JPO adr", cpu.jmpIf(FlagP, false), 3},        // 0xE2
		{"XTHL", cpu.opXTHL, 1},                        // 0xE3
		{"CPO adr", cpu.callIf(FlagP, false), 3},       // 0xE4
		{"PUSH H", cpu.pushRP(&cpu.H, &cpu.L), 1},      // 0xE5
		{"ANI D8", cpu.opANI, 2},                       // 0xE6
		{"RST 4", cpu.rst(0x20), 1},                    // 0xE7
		{"RPE", cpu.retIf(FlagP, true), 1},             // 0xE8
		{"PCHL", cpu.opPCHL, 1},                        // 0xE9
		{"JPE adr", cpu.jmpIf(FlagP, true), 3},         // 0xEA
		{"XCHG", cpu.opXCHG, 1},                        // 0xEB
		{"CPE adr", cpu.callIf(FlagP, true), 3},        // 0xEC
		{"???", cpu.opNotUsed, 1},                      // 0xED
		{"XRI D8", cpu.opXRI, 2},                       // 0xEE
		{"RST 5", cpu.rst(0x28), 1},                    // 0xEF
		{"RP", cpu.retIf(FlagS, false), 1},             // 0xF0
		{"POP PSW", cpu.opPOPPSW, 1},                   // 0xF1
		{"JP adr", cpu.jmpIf(FlagS, false), 3},         // 0xF2
		{"DI", cpu.opDI, 1},                            // 0xF3
		{"CP adr", cpu.callIf(FlagS, false), 3},        // 0xF4
		{"PUSH PSW", cpu.opPUSHPSW, 1},                 // 0xF5
		{"ORI D8", cpu.opORI, 2},                       // 0xF6
		{"RST 6", cpu.rst(0x30), 1},                    // 0xF7
		{"RM", cpu.retIf(FlagS, true), 1},              // 0xF8
		{"SPHL", cpu.opSPHL, 1},                        // 0xF9
		{"JM adr", cpu.jmpIf(FlagS, true), 3},          // 0xFA
		{"EI", cpu.opEI, 1},                            // 0xFB
		{"CM adr", cpu.callIf(FlagS, true), 3},         // 0xFC
		{"???", cpu.opNotUsed, 1},                      // 0xFD
		{"CPI D8", cpu.opCPI, 2},                       // 0xFE
		{"RST 7", cpu.rst(0x38), 1},                    // 0xFF
	}

	return cpu
}

// Connect the CPU to a 16-bit address bus.
func (cpu *Cpu8080) ConnectBus(b *Bus) { cpu.bus = b }

// Read from the attached bus.
func (cpu *Cpu8080) read(addr uint16) byte {
	return cpu.bus.Read(addr)
}

// Write to the attached bus.
func (cpu *Cpu8080) write(addr uint16, data byte) {
	cpu.bus.Write(addr, data)
}

// Read the next byte of the instruction stream, advancing PC.
func (cpu *Cpu8080) fetchByte() byte {
	data := cpu.read(cpu.Pc)
	cpu.Pc++
	return data
}

// Read the next two bytes of the instruction stream as a little-endian word.
func (cpu *Cpu8080) fetchWord() uint16 {
	lo := cpu.fetchByte()
	hi := cpu.fetchByte()
	return (uint16(hi) << 8) | uint16(lo)
}

////////////////////////////////////////////////////////////////
// Register pairs

func (cpu *Cpu8080) hl() uint16 { return (uint16(cpu.H) << 8) | uint16(cpu.L) }

func (cpu *Cpu8080) setHL(v uint16) {
	cpu.H = byte(v >> 8)
	cpu.L = byte(v)
}

////////////////////////////////////////////////////////////////
// Status Flags
type SF8080 byte // 8080 Status Flag

const (
	FlagCY SF8080 = 0x01 // Carry / borrow
	FlagP  SF8080 = 0x04 // Parity (even)
	FlagAC SF8080 = 0x10 // Auxiliary carry (out of bit 3)
	FlagZ  SF8080 = 0x40 // Zero
	FlagS  SF8080 = 0x80 // Sign
)

const allFlags = FlagS | FlagZ | FlagAC | FlagP | FlagCY

// The five defined bits of the packed flag byte; the rest stay zero.
const flagMask = byte(allFlags)

// Convenience functions used to get and set CPU status flags.
func (cpu *Cpu8080) getFlag(f SF8080) byte {
	return cpu.Status & byte(f)
}

func (cpu *Cpu8080) setFlag(f SF8080, b bool) {
	if b {
		cpu.Status |= byte(f)
	} else {
		cpu.Status &^= byte(f)
	}
}

////////////////////////////////////////////////////////////////
// ALU helpers

// Update the selected flags from an unmasked arithmetic result. CY is set on
// additive overflow; subtractive handlers override it with the borrow after
// the fact. v may be negative for subtracts, in which case the masked bit
// patterns match the 8080's two's-complement results.
func (cpu *Cpu8080) setArithFlags(v int, flags SF8080) {
	if flags&FlagZ != 0 {
		cpu.setFlag(FlagZ, v&0xFF == 0)
	}
	if flags&FlagS != 0 {
		cpu.setFlag(FlagS, v&0x80 != 0)
	}
	if flags&FlagP != 0 {
		cpu.setFlag(FlagP, parity(byte(v)))
	}
	if flags&FlagCY != 0 {
		cpu.setFlag(FlagCY, v > 0xFF)
	}
	if flags&FlagAC != 0 {
		cpu.setFlag(FlagAC, v&0x1F > 0x0F)
	}
}

// Update the selected flags from a logic result. Logic ops always clear CY
// and AC.
func (cpu *Cpu8080) setLogicFlags(v byte, flags SF8080) {
	if flags&FlagZ != 0 {
		cpu.setFlag(FlagZ, v == 0)
	}
	if flags&FlagS != 0 {
		cpu.setFlag(FlagS, v&0x80 != 0)
	}
	if flags&FlagP != 0 {
		cpu.setFlag(FlagP, parity(v))
	}
	if flags&FlagCY != 0 {
		cpu.setFlag(FlagCY, false)
	}
	if flags&FlagAC != 0 {
		cpu.setFlag(FlagAC, false)
	}
}

// Whether v has an even number of 1 bits.
func parity(v byte) bool {
	return bits.OnesCount8(v)%2 == 0
}

func (cpu *Cpu8080) add(operand byte, carry bool) {
	v := int(cpu.A) + int(operand)
	if carry {
		v++
	}
	cpu.setArithFlags(v, allFlags)
	cpu.A = byte(v)
}

func (cpu *Cpu8080) sub(operand byte, borrow bool) {
	v := int(cpu.A) - int(operand)
	if borrow {
		v--
	}
	cpu.setArithFlags(v, allFlags)
	cpu.setFlag(FlagCY, v < 0)
	cpu.A = byte(v)
}

// Subtract without storing the result (CMP/CPI).
func (cpu *Cpu8080) compare(operand byte) {
	v := int(cpu.A) - int(operand)
	cpu.setArithFlags(v, allFlags)
	cpu.setFlag(FlagCY, v < 0)
}

////////////////////////////////////////////////////////////////
// Stack

func (cpu *Cpu8080) call(addr uint16) {
	cpu.write(cpu.Sp-1, byte(cpu.Pc>>8))
	cpu.write(cpu.Sp-2, byte(cpu.Pc))
	cpu.Sp -= 2
	cpu.Pc = addr
}

func (cpu *Cpu8080) ret() {
	lo := cpu.read(cpu.Sp)
	hi := cpu.read(cpu.Sp + 1)
	cpu.Sp += 2
	cpu.Pc = (uint16(hi) << 8) | uint16(lo)
}

////////////////////////////////////////////////////////////////
// Interrupts

// Latch an interrupt to be serviced before the next fetch. A newer trigger
// overwrites an unserviced one. Indexes outside 0..7 are dropped.
func (cpu *Cpu8080) TriggerInterrupt(index int) {
	if index < 0 || index > 7 {
		cpu.Logger.Printf("invalid interrupt index %d, dropped", index)
		return
	}
	cpu.pendingInterrupt = index
}

// Step executes one instruction and returns the cycles consumed.
//
// A pending interrupt is serviced first (when enabled) by dispatching the
// matching RST opcode without a fetch; acceptance disables further
// interrupts until the handler runs EI. A halted CPU burns HLT-sized slices
// of time until an interrupt resumes it.
func (cpu *Cpu8080) Step() int {
	var opcode byte
	var opAddr uint16

	switch {
	case cpu.InterruptEnable && cpu.pendingInterrupt >= 0:
		opcode = 0xC7 + byte(cpu.pendingInterrupt)<<3
		opAddr = cpu.Pc
		cpu.pendingInterrupt = -1
		cpu.InterruptEnable = false
		cpu.Halted = false
	case cpu.Halted:
		cycles := int(opCycles[0x76])
		cpu.CycleCount += uint64(cycles)
		return cycles
	default:
		opAddr = cpu.Pc
		opcode = cpu.fetchByte()
	}

	inst := cpu.InstLookup[opcode]

	if cpu.isLogging {
		cpu.Logger.Printf("%04X  %02X - %-10s A:%02X B:%02X C:%02X D:%02X E:%02X HL:%02X%02X SP:%04X F:%02X CYC:%d",
			opAddr, opcode, inst.Name, cpu.A, cpu.B, cpu.C, cpu.D, cpu.E,
			cpu.H, cpu.L, cpu.Sp, cpu.Status, cpu.CycleCount)
	}

	cycles := int(opCycles[opcode])
	if !inst.Execute() {
		cycles -= untakenCycles
	}

	cpu.CycleCount += uint64(cycles)

	return cycles
}

////////////////////////////////////////////////////////////////
// Instruction handler factories
//
// The 8080 encodes its operand registers in the opcode, so most of the
// lookup table is built from these closures bound to register pointers.

// MOV r,r'
func (cpu *Cpu8080) movRR(dst, src *byte) func() bool {
	return func() bool {
		*dst = *src
		return true
	}
}

// MOV r,M
func (cpu *Cpu8080) movRM(dst *byte) func() bool {
	return func() bool {
		*dst = cpu.read(cpu.hl())
		return true
	}
}

// MOV M,r
func (cpu *Cpu8080) movMR(src *byte) func() bool {
	return func() bool {
		cpu.write(cpu.hl(), *src)
		return true
	}
}

// MVI r,D8
func (cpu *Cpu8080) mviR(dst *byte) func() bool {
	return func() bool {
		*dst = cpu.fetchByte()
		return true
	}
}

// LXI rp,D16
func (cpu *Cpu8080) lxiRP(hi, lo *byte) func() bool {
	return func() bool {
		*lo = cpu.fetchByte()
		*hi = cpu.fetchByte()
		return true
	}
}

// LDAX rp
func (cpu *Cpu8080) ldaxRP(hi, lo *byte) func() bool {
	return func() bool {
		cpu.A = cpu.read((uint16(*hi) << 8) | uint16(*lo))
		return true
	}
}

// STAX rp
func (cpu *Cpu8080) staxRP(hi, lo *byte) func() bool {
	return func() bool {
		cpu.write((uint16(*hi)<<8)|uint16(*lo), cpu.A)
		return true
	}
}

// INR r - CY is left unchanged.
func (cpu *Cpu8080) inrR(r *byte) func() bool {
	return func() bool {
		v := int(*r) + 1
		cpu.setArithFlags(v, FlagZ|FlagS|FlagP|FlagAC)
		*r = byte(v)
		return true
	}
}

// DCR r - CY is left unchanged.
func (cpu *Cpu8080) dcrR(r *byte) func() bool {
	return func() bool {
		v := int(*r) - 1
		cpu.setArithFlags(v, FlagZ|FlagS|FlagP|FlagAC)
		*r = byte(v)
		return true
	}
}

// INX rp - no flags affected.
func (cpu *Cpu8080) inxRP(hi, lo *byte) func() bool {
	return func() bool {
		v := ((uint16(*hi) << 8) | uint16(*lo)) + 1
		*hi = byte(v >> 8)
		*lo = byte(v)
		return true
	}
}

// DCX rp - no flags affected.
func (cpu *Cpu8080) dcxRP(hi, lo *byte) func() bool {
	return func() bool {
		v := ((uint16(*hi) << 8) | uint16(*lo)) - 1
		*hi = byte(v >> 8)
		*lo = byte(v)
		return true
	}
}

// DAD rp - 16-bit add into HL; only CY is affected.
func (cpu *Cpu8080) dadRP(hi, lo *byte) func() bool {
	return func() bool {
		v := int(cpu.hl()) + int((uint16(*hi)<<8)|uint16(*lo))
		cpu.setFlag(FlagCY, v > 0xFFFF)
		cpu.setHL(uint16(v))
		return true
	}
}

// ADD r / ADC r
func (cpu *Cpu8080) addR(r *byte) func() bool {
	return func() bool {
		cpu.add(*r, false)
		return true
	}
}

func (cpu *Cpu8080) adcR(r *byte) func() bool {
	return func() bool {
		cpu.add(*r, cpu.getFlag(FlagCY) != 0)
		return true
	}
}

// SUB r / SBB r
func (cpu *Cpu8080) subR(r *byte) func() bool {
	return func() bool {
		cpu.sub(*r, false)
		return true
	}
}

func (cpu *Cpu8080) sbbR(r *byte) func() bool {
	return func() bool {
		cpu.sub(*r, cpu.getFlag(FlagCY) != 0)
		return true
	}
}

// ANA r / XRA r / ORA r / CMP r
func (cpu *Cpu8080) anaR(r *byte) func() bool {
	return func() bool {
		v := cpu.A & *r
		cpu.setLogicFlags(v, allFlags)
		cpu.A = v
		return true
	}
}

func (cpu *Cpu8080) xraR(r *byte) func() bool {
	return func() bool {
		v := cpu.A ^ *r
		cpu.setLogicFlags(v, allFlags)
		cpu.A = v
		return true
	}
}

func (cpu *Cpu8080) oraR(r *byte) func() bool {
	return func() bool {
		v := cpu.A | *r
		cpu.setLogicFlags(v, allFlags)
		cpu.A = v
		return true
	}
}

func (cpu *Cpu8080) cmpR(r *byte) func() bool {
	return func() bool {
		cpu.compare(*r)
		return true
	}
}

// PUSH rp / POP rp
func (cpu *Cpu8080) pushRP(hi, lo *byte) func() bool {
	return func() bool {
		cpu.write(cpu.Sp-1, *hi)
		cpu.write(cpu.Sp-2, *lo)
		cpu.Sp -= 2
		return true
	}
}

func (cpu *Cpu8080) popRP(hi, lo *byte) func() bool {
	return func() bool {
		*lo = cpu.read(cpu.Sp)
		*hi = cpu.read(cpu.Sp + 1)
		cpu.Sp += 2
		return true
	}
}

// Jcc adr - conditional jumps cost the same taken or not.
func (cpu *Cpu8080) jmpIf(flag SF8080, want bool) func() bool {
	return func() bool {
		addr := cpu.fetchWord()
		if (cpu.getFlag(flag) != 0) == want {
			cpu.Pc = addr
		}
		return true
	}
}

// Ccc adr - reports false when the branch is not taken.
func (cpu *Cpu8080) callIf(flag SF8080, want bool) func() bool {
	return func() bool {
		addr := cpu.fetchWord()
		if (cpu.getFlag(flag) != 0) != want {
			return false
		}
		cpu.call(addr)
		return true
	}
}

// Rcc - reports false when the branch is not taken.
func (cpu *Cpu8080) retIf(flag SF8080, want bool) func() bool {
	return func() bool {
		if (cpu.getFlag(flag) != 0) != want {
			return false
		}
		cpu.ret()
		return true
	}
}

// RST n
func (cpu *Cpu8080) rst(vector uint16) func() bool {
	return func() bool {
		cpu.call(vector)
		return true
	}
}

////////////////////////////////////////////////////////////////
// Instructions

// NOP - No Operation
func (cpu *Cpu8080) opNOP() bool { return true }

// RLC - Rotate Accumulator Left
func (cpu *Cpu8080) opRLC() bool {
	bit7 := cpu.A >> 7
	cpu.setFlag(FlagCY, bit7 == 1)
	cpu.A = (cpu.A << 1) | bit7

	return true
}

// RRC - Rotate Accumulator Right
func (cpu *Cpu8080) opRRC() bool {
	bit0 := cpu.A & 0x01
	cpu.setFlag(FlagCY, bit0 == 1)
	cpu.A = (cpu.A >> 1) | (bit0 << 7)

	return true
}

// RAL - Rotate Accumulator Left through Carry
func (cpu *Cpu8080) opRAL() bool {
	bit7 := cpu.A >> 7
	cpu.A = cpu.A << 1
	if cpu.getFlag(FlagCY) != 0 {
		cpu.A |= 0x01
	}
	cpu.setFlag(FlagCY, bit7 == 1)

	return true
}

// RAR - Rotate Accumulator Right through Carry
func (cpu *Cpu8080) opRAR() bool {
	bit0 := cpu.A & 0x01
	cpu.A = cpu.A >> 1
	if cpu.getFlag(FlagCY) != 0 {
		cpu.A |= 0x80
	}
	cpu.setFlag(FlagCY, bit0 == 1)

	return true
}

// SHLD adr - Store HL Direct
func (cpu *Cpu8080) opSHLD() bool {
	addr := cpu.fetchWord()
	cpu.write(addr, cpu.L)
	cpu.write(addr+1, cpu.H)

	return true
}

// LHLD adr - Load HL Direct
func (cpu *Cpu8080) opLHLD() bool {
	addr := cpu.fetchWord()
	cpu.L = cpu.read(addr)
	cpu.H = cpu.read(addr + 1)

	return true
}

// DAA - Decimal Adjust Accumulator
//
// Two-phase BCD correction. The carry flag is sticky: once either phase
// sets it, the other cannot clear it.
func (cpu *Cpu8080) opDAA() bool {
	if cpu.A&0x0F > 9 || cpu.getFlag(FlagAC) != 0 {
		v := int(cpu.A) + 0x06
		cpu.setArithFlags(v, allFlags&^FlagCY)
		if v > 0xFF {
			cpu.setFlag(FlagCY, true)
		}
		cpu.A = byte(v)
	}
	if cpu.A>>4 > 9 || cpu.getFlag(FlagCY) != 0 {
		carry := cpu.getFlag(FlagCY) != 0
		v := int(cpu.A) + 0x60
		cpu.setArithFlags(v, allFlags)
		cpu.setFlag(FlagCY, carry || v > 0xFF)
		cpu.A = byte(v)
	}

	return true
}

// CMA - Complement Accumulator
func (cpu *Cpu8080) opCMA() bool {
	cpu.A = ^cpu.A

	return true
}

// STA adr - Store Accumulator Direct
func (cpu *Cpu8080) opSTA() bool {
	cpu.write(cpu.fetchWord(), cpu.A)

	return true
}

// LDA adr - Load Accumulator Direct
func (cpu *Cpu8080) opLDA() bool {
	cpu.A = cpu.read(cpu.fetchWord())

	return true
}

// STC - Set Carry
func (cpu *Cpu8080) opSTC() bool {
	cpu.setFlag(FlagCY, true)

	return true
}

// CMC - Complement Carry
func (cpu *Cpu8080) opCMC() bool {
	cpu.setFlag(FlagCY, cpu.getFlag(FlagCY) == 0)

	return true
}

// LXI SP,D16
func (cpu *Cpu8080) opLXISP() bool {
	cpu.Sp = cpu.fetchWord()

	return true
}

// INX SP / DCX SP
func (cpu *Cpu8080) opINXSP() bool {
	cpu.Sp++

	return true
}

func (cpu *Cpu8080) opDCXSP() bool {
	cpu.Sp--

	return true
}

// DAD SP
func (cpu *Cpu8080) opDADSP() bool {
	v := int(cpu.hl()) + int(cpu.Sp)
	cpu.setFlag(FlagCY, v > 0xFFFF)
	cpu.setHL(uint16(v))

	return true
}

// INR M / DCR M - CY is left unchanged.
func (cpu *Cpu8080) opINRM() bool {
	ptr := cpu.hl()
	v := int(cpu.read(ptr)) + 1
	cpu.setArithFlags(v, FlagZ|FlagS|FlagP|FlagAC)
	cpu.write(ptr, byte(v))

	return true
}

func (cpu *Cpu8080) opDCRM() bool {
	ptr := cpu.hl()
	v := int(cpu.read(ptr)) - 1
	cpu.setArithFlags(v, FlagZ|FlagS|FlagP|FlagAC)
	cpu.write(ptr, byte(v))

	return true
}

// MVI M,D8
func (cpu *Cpu8080) opMVIM() bool {
	cpu.write(cpu.hl(), cpu.fetchByte())

	return true
}

// HLT - Halt
//
// Surfaced as a terminal state instead of blocking; the Space Invaders ROM
// never issues it.
func (cpu *Cpu8080) opHLT() bool {
	cpu.Logger.Printf("HLT at $%04X", cpu.Pc-1)
	cpu.Halted = true

	return true
}

// Arithmetic/logic on the memory operand at (HL).
func (cpu *Cpu8080) opADDM() bool {
	cpu.add(cpu.read(cpu.hl()), false)
	return true
}

func (cpu *Cpu8080) opADCM() bool {
	cpu.add(cpu.read(cpu.hl()), cpu.getFlag(FlagCY) != 0)
	return true
}

func (cpu *Cpu8080) opSUBM() bool {
	cpu.sub(cpu.read(cpu.hl()), false)
	return true
}

func (cpu *Cpu8080) opSBBM() bool {
	cpu.sub(cpu.read(cpu.hl()), cpu.getFlag(FlagCY) != 0)
	return true
}

func (cpu *Cpu8080) opANAM() bool {
	v := cpu.A & cpu.read(cpu.hl())
	cpu.setLogicFlags(v, allFlags)
	cpu.A = v
	return true
}

func (cpu *Cpu8080) opXRAM() bool {
	v := cpu.A ^ cpu.read(cpu.hl())
	cpu.setLogicFlags(v, allFlags)
	cpu.A = v
	return true
}

func (cpu *Cpu8080) opORAM() bool {
	v := cpu.A | cpu.read(cpu.hl())
	cpu.setLogicFlags(v, allFlags)
	cpu.A = v
	return true
}

func (cpu *Cpu8080) opCMPM() bool {
	cpu.compare(cpu.read(cpu.hl()))
	return true
}

// Immediate arithmetic/logic.

// ADI D8
func (cpu *Cpu8080) opADI() bool {
	cpu.add(cpu.fetchByte(), false)
	return true
}

// ACI D8
func (cpu *Cpu8080) opACI() bool {
	cpu.add(cpu.fetchByte(), cpu.getFlag(FlagCY) != 0)
	return true
}

// SUI D8
func (cpu *Cpu8080) opSUI() bool {
	cpu.sub(cpu.fetchByte(), false)
	return true
}

// SBI D8
func (cpu *Cpu8080) opSBI() bool {
	cpu.sub(cpu.fetchByte(), cpu.getFlag(FlagCY) != 0)
	return true
}

// ANI D8
func (cpu *Cpu8080) opANI() bool {
	v := cpu.A & cpu.fetchByte()
	cpu.setLogicFlags(v, allFlags)
	cpu.A = v
	return true
}

// XRI D8
func (cpu *Cpu8080) opXRI() bool {
	v := cpu.A ^ cpu.fetchByte()
	cpu.setLogicFlags(v, allFlags)
	cpu.A = v
	return true
}

// ORI D8
func (cpu *Cpu8080) opORI() bool {
	v := cpu.A | cpu.fetchByte()
	cpu.setLogicFlags(v, allFlags)
	cpu.A = v
	return true
}

// CPI D8
func (cpu *Cpu8080) opCPI() bool {
	cpu.compare(cpu.fetchByte())
	return true
}

// JMP adr
func (cpu *Cpu8080) opJMP() bool {
	cpu.Pc = cpu.fetchWord()

	return true
}

// CALL adr
func (cpu *Cpu8080) opCALL() bool {
	cpu.call(cpu.fetchWord())

	return true
}

// RET
func (cpu *Cpu8080) opRET() bool {
	cpu.ret()

	return true
}

// PCHL - Jump to address in HL
func (cpu *Cpu8080) opPCHL() bool {
	cpu.Pc = cpu.hl()

	return true
}

// SPHL - Load SP from HL
func (cpu *Cpu8080) opSPHL() bool {
	cpu.Sp = cpu.hl()

	return true
}

// XTHL - Exchange HL with the top of the stack
func (cpu *Cpu8080) opXTHL() bool {
	lo := cpu.read(cpu.Sp)
	hi := cpu.read(cpu.Sp + 1)
	cpu.write(cpu.Sp, cpu.L)
	cpu.write(cpu.Sp+1, cpu.H)
	cpu.L = lo
	cpu.H = hi

	return true
}

// XCHG - Exchange DE and HL
func (cpu *Cpu8080) opXCHG() bool {
	cpu.D, cpu.H = cpu.H, cpu.D
	cpu.E, cpu.L = cpu.L, cpu.E

	return true
}

// PUSH PSW - Accumulator at SP-1, packed flag byte at SP-2.
func (cpu *Cpu8080) opPUSHPSW() bool {
	cpu.write(cpu.Sp-1, cpu.A)
	cpu.write(cpu.Sp-2, cpu.Status)
	cpu.Sp -= 2

	return true
}

// POP PSW
func (cpu *Cpu8080) opPOPPSW() bool {
	cpu.Status = cpu.read(cpu.Sp) & flagMask
	cpu.A = cpu.read(cpu.Sp + 1)
	cpu.Sp += 2

	return true
}

// IN D8 / OUT D8 - delegate to the bus port dispatcher.
func (cpu *Cpu8080) opIN() bool {
	cpu.A = cpu.bus.PortRead(cpu.fetchByte())

	return true
}

func (cpu *Cpu8080) opOUT() bool {
	cpu.bus.PortWrite(cpu.fetchByte(), cpu.A)

	return true
}

// EI / DI
func (cpu *Cpu8080) opEI() bool {
	cpu.InterruptEnable = true

	return true
}

func (cpu *Cpu8080) opDI() bool {
	cpu.InterruptEnable = false

	return true
}

// Catch-all instruction for the twelve undefined opcodes.
func (cpu *Cpu8080) opNotUsed() bool {
	cpu.Logger.Printf("not used instruction at $%04X", cpu.Pc-1)

	return true
}
