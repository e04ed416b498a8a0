package nes

// AddressingMode tells the CPU where the operand of an instruction lives.
//
// The 6502 has thirteen of them. Most produce an effective address; Immediate
// produces the address of the operand byte itself, Accumulator and Implied
// produce nothing. The indexed modes can incur an extra "oops" cycle when the
// computed address crosses a page boundary, see Instruction.PageCycles.
type AddressingMode byte

const (
	// NoMode marks table entries that never resolve an operand. All the
	// undocumented opcodes carry it: they are decoded only far enough to
	// be reported as an error.
	NoMode AddressingMode = iota

	// Immediate addressing embeds the 1-byte operand in the instruction
	// itself, e.g. LDA #$07.
	Immediate

	// ZeroPage addressing supplies only the low byte of the address; the
	// high byte is $00, confining it to $0000-$00FF.
	ZeroPage

	// ZeroPageX is ZeroPage with the X register added to the operand
	// byte. The sum wraps within the zero page: $FF + $10 is $0F, not
	// $010F.
	ZeroPageX

	// ZeroPageY is ZeroPage with the Y register added. Only LDX and STX
	// use it.
	ZeroPageY

	// Absolute addressing carries a full little-endian 2-byte address.
	Absolute

	// AbsoluteX is Absolute with the X register added. Crossing into the
	// next page costs read instructions one extra cycle.
	AbsoluteX

	// AbsoluteY is Absolute with the Y register added, same page-cross
	// rule as AbsoluteX.
	AbsoluteY

	// Relative addressing is used only by the branch instructions: a
	// signed 8-bit displacement from the address of the next instruction.
	Relative

	// Implied addressing has no operand at all, e.g. TAX.
	Implied

	// Accumulator addressing operates on A directly, e.g. ASL A.
	Accumulator

	// Indirect addressing reads the final address from a 2-byte pointer.
	// Only JMP uses it, and it inherits the famous 6502 bug: a pointer at
	// $xxFF fetches its high byte from $xx00 instead of the next page.
	Indirect

	// IndirectX ("($aa,X)") adds X to the zero-page operand, then reads a
	// 2-byte pointer from there. Both the index sum and the pointer's
	// second byte wrap within the zero page.
	IndirectX

	// IndirectY ("($aa),Y") reads a 2-byte pointer from the zero-page
	// operand, then adds Y to it. Crossing a page costs read instructions
	// one extra cycle.
	IndirectY
)

// InstructionKind classifies how an instruction touches memory. The table's
// timing data follows this classification: Read instructions carry a
// PageCycles penalty paid only when a cross actually happens, Write and
// ReadModWrite instructions always pay it (the base Cycles in the table
// already includes the worst case). The CPU itself reads only the cycle
// fields, not Kind.
type InstructionKind byte

const (
	_ InstructionKind = iota
	Read
	Write
	ReadModWrite
)

// Instruction is one entry of the 256-entry decode table.
type Instruction struct {
	OpCode byte
	Name   string
	Mode   AddressingMode
	Kind   InstructionKind

	// Size is the full instruction length in bytes, opcode included.
	Size byte

	// Cycles is the base cycle cost. Branches add one cycle when taken
	// and another when the taken branch crosses a page.
	Cycles byte

	// PageCycles is the penalty added when the resolved address crosses a
	// page boundary. Only read instructions in AbsoluteX, AbsoluteY and
	// IndirectY mode carry a nonzero value.
	PageCycles byte

	// Illegal marks the byte values that do not decode to one of the 151
	// documented instructions. The name kept here is the conventional
	// unofficial mnemonic, for diagnostics only; executing one is an
	// error.
	Illegal bool
}

// instructions is the decode table, indexed by opcode byte. It is built once
// and never mutated.
var instructions = [256]Instruction{
	// BRK occupies two bytes: the opcode and a padding byte the return
	// address skips over.
	{OpCode: 0x00, Name: "BRK", Size: 2, Cycles: 7, Mode: Implied},
	{OpCode: 0x01, Name: "ORA", Size: 2, Cycles: 6, Mode: IndirectX, Kind: Read},
	{OpCode: 0x02, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x03, Name: "SLO", Mode: NoMode, Illegal: true},
	{OpCode: 0x04, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x05, Name: "ORA", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0x06, Name: "ASL", Size: 2, Cycles: 5, Mode: ZeroPage, Kind: ReadModWrite},
	{OpCode: 0x07, Name: "SLO", Mode: NoMode, Illegal: true},
	{OpCode: 0x08, Name: "PHP", Size: 1, Cycles: 3, Mode: Implied},
	{OpCode: 0x09, Name: "ORA", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0x0A, Name: "ASL", Size: 1, Cycles: 2, Mode: Accumulator, Kind: ReadModWrite},
	{OpCode: 0x0B, Name: "ANC", Mode: NoMode, Illegal: true},
	{OpCode: 0x0C, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x0D, Name: "ORA", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0x0E, Name: "ASL", Size: 3, Cycles: 6, Mode: Absolute, Kind: ReadModWrite},
	{OpCode: 0x0F, Name: "SLO", Mode: NoMode, Illegal: true},
	{OpCode: 0x10, Name: "BPL", Size: 2, Cycles: 2, Mode: Relative},
	{OpCode: 0x11, Name: "ORA", Size: 2, Cycles: 5, PageCycles: 1, Mode: IndirectY, Kind: Read},
	{OpCode: 0x12, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x13, Name: "SLO", Mode: NoMode, Illegal: true},
	{OpCode: 0x14, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x15, Name: "ORA", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Read},
	{OpCode: 0x16, Name: "ASL", Size: 2, Cycles: 6, Mode: ZeroPageX, Kind: ReadModWrite},
	{OpCode: 0x17, Name: "SLO", Mode: NoMode, Illegal: true},
	{OpCode: 0x18, Name: "CLC", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0x19, Name: "ORA", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteY, Kind: Read},
	{OpCode: 0x1A, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x1B, Name: "SLO", Mode: NoMode, Illegal: true},
	{OpCode: 0x1C, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x1D, Name: "ORA", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteX, Kind: Read},
	{OpCode: 0x1E, Name: "ASL", Size: 3, Cycles: 7, Mode: AbsoluteX, Kind: ReadModWrite},
	{OpCode: 0x1F, Name: "SLO", Mode: NoMode, Illegal: true},
	{OpCode: 0x20, Name: "JSR", Size: 3, Cycles: 6, Mode: Absolute},
	{OpCode: 0x21, Name: "AND", Size: 2, Cycles: 6, Mode: IndirectX, Kind: Read},
	{OpCode: 0x22, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x23, Name: "RLA", Mode: NoMode, Illegal: true},
	{OpCode: 0x24, Name: "BIT", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0x25, Name: "AND", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0x26, Name: "ROL", Size: 2, Cycles: 5, Mode: ZeroPage, Kind: ReadModWrite},
	{OpCode: 0x27, Name: "RLA", Mode: NoMode, Illegal: true},
	{OpCode: 0x28, Name: "PLP", Size: 1, Cycles: 4, Mode: Implied},
	{OpCode: 0x29, Name: "AND", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0x2A, Name: "ROL", Size: 1, Cycles: 2, Mode: Accumulator, Kind: ReadModWrite},
	{OpCode: 0x2B, Name: "ANC", Mode: NoMode, Illegal: true},
	{OpCode: 0x2C, Name: "BIT", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0x2D, Name: "AND", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0x2E, Name: "ROL", Size: 3, Cycles: 6, Mode: Absolute, Kind: ReadModWrite},
	{OpCode: 0x2F, Name: "RLA", Mode: NoMode, Illegal: true},
	{OpCode: 0x30, Name: "BMI", Size: 2, Cycles: 2, Mode: Relative},
	{OpCode: 0x31, Name: "AND", Size: 2, Cycles: 5, PageCycles: 1, Mode: IndirectY, Kind: Read},
	{OpCode: 0x32, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x33, Name: "RLA", Mode: NoMode, Illegal: true},
	{OpCode: 0x34, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x35, Name: "AND", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Read},
	{OpCode: 0x36, Name: "ROL", Size: 2, Cycles: 6, Mode: ZeroPageX, Kind: ReadModWrite},
	{OpCode: 0x37, Name: "RLA", Mode: NoMode, Illegal: true},
	{OpCode: 0x38, Name: "SEC", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0x39, Name: "AND", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteY, Kind: Read},
	{OpCode: 0x3A, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x3B, Name: "RLA", Mode: NoMode, Illegal: true},
	{OpCode: 0x3C, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x3D, Name: "AND", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteX, Kind: Read},
	{OpCode: 0x3E, Name: "ROL", Size: 3, Cycles: 7, Mode: AbsoluteX, Kind: ReadModWrite},
	{OpCode: 0x3F, Name: "RLA", Mode: NoMode, Illegal: true},
	{OpCode: 0x40, Name: "RTI", Size: 1, Cycles: 6, Mode: Implied},
	{OpCode: 0x41, Name: "EOR", Size: 2, Cycles: 6, Mode: IndirectX, Kind: Read},
	{OpCode: 0x42, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x43, Name: "SRE", Mode: NoMode, Illegal: true},
	{OpCode: 0x44, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x45, Name: "EOR", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0x46, Name: "LSR", Size: 2, Cycles: 5, Mode: ZeroPage, Kind: ReadModWrite},
	{OpCode: 0x47, Name: "SRE", Mode: NoMode, Illegal: true},
	{OpCode: 0x48, Name: "PHA", Size: 1, Cycles: 3, Mode: Implied},
	{OpCode: 0x49, Name: "EOR", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0x4A, Name: "LSR", Size: 1, Cycles: 2, Mode: Accumulator, Kind: ReadModWrite},
	{OpCode: 0x4B, Name: "ALR", Mode: NoMode, Illegal: true},
	{OpCode: 0x4C, Name: "JMP", Size: 3, Cycles: 3, Mode: Absolute},
	{OpCode: 0x4D, Name: "EOR", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0x4E, Name: "LSR", Size: 3, Cycles: 6, Mode: Absolute, Kind: ReadModWrite},
	{OpCode: 0x4F, Name: "SRE", Mode: NoMode, Illegal: true},
	{OpCode: 0x50, Name: "BVC", Size: 2, Cycles: 2, Mode: Relative},
	{OpCode: 0x51, Name: "EOR", Size: 2, Cycles: 5, PageCycles: 1, Mode: IndirectY, Kind: Read},
	{OpCode: 0x52, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x53, Name: "SRE", Mode: NoMode, Illegal: true},
	{OpCode: 0x54, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x55, Name: "EOR", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Read},
	{OpCode: 0x56, Name: "LSR", Size: 2, Cycles: 6, Mode: ZeroPageX, Kind: ReadModWrite},
	{OpCode: 0x57, Name: "SRE", Mode: NoMode, Illegal: true},
	{OpCode: 0x58, Name: "CLI", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0x59, Name: "EOR", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteY, Kind: Read},
	{OpCode: 0x5A, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x5B, Name: "SRE", Mode: NoMode, Illegal: true},
	{OpCode: 0x5C, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x5D, Name: "EOR", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteX, Kind: Read},
	{OpCode: 0x5E, Name: "LSR", Size: 3, Cycles: 7, Mode: AbsoluteX, Kind: ReadModWrite},
	{OpCode: 0x5F, Name: "SRE", Mode: NoMode, Illegal: true},
	{OpCode: 0x60, Name: "RTS", Size: 1, Cycles: 6, Mode: Implied},
	{OpCode: 0x61, Name: "ADC", Size: 2, Cycles: 6, Mode: IndirectX, Kind: Read},
	{OpCode: 0x62, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x63, Name: "RRA", Mode: NoMode, Illegal: true},
	{OpCode: 0x64, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x65, Name: "ADC", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0x66, Name: "ROR", Size: 2, Cycles: 5, Mode: ZeroPage, Kind: ReadModWrite},
	{OpCode: 0x67, Name: "RRA", Mode: NoMode, Illegal: true},
	{OpCode: 0x68, Name: "PLA", Size: 1, Cycles: 4, Mode: Implied},
	{OpCode: 0x69, Name: "ADC", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0x6A, Name: "ROR", Size: 1, Cycles: 2, Mode: Accumulator, Kind: ReadModWrite},
	{OpCode: 0x6B, Name: "ARR", Mode: NoMode, Illegal: true},
	{OpCode: 0x6C, Name: "JMP", Size: 3, Cycles: 5, Mode: Indirect},
	{OpCode: 0x6D, Name: "ADC", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0x6E, Name: "ROR", Size: 3, Cycles: 6, Mode: Absolute, Kind: ReadModWrite},
	{OpCode: 0x6F, Name: "RRA", Mode: NoMode, Illegal: true},
	{OpCode: 0x70, Name: "BVS", Size: 2, Cycles: 2, Mode: Relative},
	{OpCode: 0x71, Name: "ADC", Size: 2, Cycles: 5, PageCycles: 1, Mode: IndirectY, Kind: Read},
	{OpCode: 0x72, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x73, Name: "RRA", Mode: NoMode, Illegal: true},
	{OpCode: 0x74, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x75, Name: "ADC", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Read},
	{OpCode: 0x76, Name: "ROR", Size: 2, Cycles: 6, Mode: ZeroPageX, Kind: ReadModWrite},
	{OpCode: 0x77, Name: "RRA", Mode: NoMode, Illegal: true},
	{OpCode: 0x78, Name: "SEI", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0x79, Name: "ADC", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteY, Kind: Read},
	{OpCode: 0x7A, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x7B, Name: "RRA", Mode: NoMode, Illegal: true},
	{OpCode: 0x7C, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x7D, Name: "ADC", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteX, Kind: Read},
	{OpCode: 0x7E, Name: "ROR", Size: 3, Cycles: 7, Mode: AbsoluteX, Kind: ReadModWrite},
	{OpCode: 0x7F, Name: "RRA", Mode: NoMode, Illegal: true},
	{OpCode: 0x80, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x81, Name: "STA", Size: 2, Cycles: 6, Mode: IndirectX, Kind: Write},
	{OpCode: 0x82, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x83, Name: "SAX", Mode: NoMode, Illegal: true},
	{OpCode: 0x84, Name: "STY", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Write},
	{OpCode: 0x85, Name: "STA", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Write},
	{OpCode: 0x86, Name: "STX", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Write},
	{OpCode: 0x87, Name: "SAX", Mode: NoMode, Illegal: true},
	{OpCode: 0x88, Name: "DEY", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0x89, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0x8A, Name: "TXA", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0x8B, Name: "XAA", Mode: NoMode, Illegal: true},
	{OpCode: 0x8C, Name: "STY", Size: 3, Cycles: 4, Mode: Absolute, Kind: Write},
	{OpCode: 0x8D, Name: "STA", Size: 3, Cycles: 4, Mode: Absolute, Kind: Write},
	{OpCode: 0x8E, Name: "STX", Size: 3, Cycles: 4, Mode: Absolute, Kind: Write},
	{OpCode: 0x8F, Name: "SAX", Mode: NoMode, Illegal: true},
	{OpCode: 0x90, Name: "BCC", Size: 2, Cycles: 2, Mode: Relative},
	{OpCode: 0x91, Name: "STA", Size: 2, Cycles: 6, Mode: IndirectY, Kind: Write},
	{OpCode: 0x92, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0x93, Name: "AHX", Mode: NoMode, Illegal: true},
	{OpCode: 0x94, Name: "STY", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Write},
	{OpCode: 0x95, Name: "STA", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Write},
	{OpCode: 0x96, Name: "STX", Size: 2, Cycles: 4, Mode: ZeroPageY, Kind: Write},
	{OpCode: 0x97, Name: "SAX", Mode: NoMode, Illegal: true},
	{OpCode: 0x98, Name: "TYA", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0x99, Name: "STA", Size: 3, Cycles: 5, Mode: AbsoluteY, Kind: Write},
	{OpCode: 0x9A, Name: "TXS", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0x9B, Name: "TAS", Mode: NoMode, Illegal: true},
	{OpCode: 0x9C, Name: "SHY", Mode: NoMode, Illegal: true},
	{OpCode: 0x9D, Name: "STA", Size: 3, Cycles: 5, Mode: AbsoluteX, Kind: Write},
	{OpCode: 0x9E, Name: "SHX", Mode: NoMode, Illegal: true},
	{OpCode: 0x9F, Name: "AHX", Mode: NoMode, Illegal: true},
	{OpCode: 0xA0, Name: "LDY", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0xA1, Name: "LDA", Size: 2, Cycles: 6, Mode: IndirectX, Kind: Read},
	{OpCode: 0xA2, Name: "LDX", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0xA3, Name: "LAX", Mode: NoMode, Illegal: true},
	{OpCode: 0xA4, Name: "LDY", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0xA5, Name: "LDA", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0xA6, Name: "LDX", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0xA7, Name: "LAX", Mode: NoMode, Illegal: true},
	{OpCode: 0xA8, Name: "TAY", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xA9, Name: "LDA", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0xAA, Name: "TAX", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xAB, Name: "LAX", Mode: NoMode, Illegal: true},
	{OpCode: 0xAC, Name: "LDY", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0xAD, Name: "LDA", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0xAE, Name: "LDX", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0xAF, Name: "LAX", Mode: NoMode, Illegal: true},
	{OpCode: 0xB0, Name: "BCS", Size: 2, Cycles: 2, Mode: Relative},
	{OpCode: 0xB1, Name: "LDA", Size: 2, Cycles: 5, PageCycles: 1, Mode: IndirectY, Kind: Read},
	{OpCode: 0xB2, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0xB3, Name: "LAX", Mode: NoMode, Illegal: true},
	{OpCode: 0xB4, Name: "LDY", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Read},
	{OpCode: 0xB5, Name: "LDA", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Read},
	{OpCode: 0xB6, Name: "LDX", Size: 2, Cycles: 4, Mode: ZeroPageY, Kind: Read},
	{OpCode: 0xB7, Name: "LAX", Mode: NoMode, Illegal: true},
	{OpCode: 0xB8, Name: "CLV", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xB9, Name: "LDA", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteY, Kind: Read},
	{OpCode: 0xBA, Name: "TSX", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xBB, Name: "LAS", Mode: NoMode, Illegal: true},
	{OpCode: 0xBC, Name: "LDY", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteX, Kind: Read},
	{OpCode: 0xBD, Name: "LDA", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteX, Kind: Read},
	{OpCode: 0xBE, Name: "LDX", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteY, Kind: Read},
	{OpCode: 0xBF, Name: "LAX", Mode: NoMode, Illegal: true},
	{OpCode: 0xC0, Name: "CPY", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0xC1, Name: "CMP", Size: 2, Cycles: 6, Mode: IndirectX, Kind: Read},
	{OpCode: 0xC2, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0xC3, Name: "DCP", Mode: NoMode, Illegal: true},
	{OpCode: 0xC4, Name: "CPY", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0xC5, Name: "CMP", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0xC6, Name: "DEC", Size: 2, Cycles: 5, Mode: ZeroPage, Kind: ReadModWrite},
	{OpCode: 0xC7, Name: "DCP", Mode: NoMode, Illegal: true},
	{OpCode: 0xC8, Name: "INY", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xC9, Name: "CMP", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0xCA, Name: "DEX", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xCB, Name: "AXS", Mode: NoMode, Illegal: true},
	{OpCode: 0xCC, Name: "CPY", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0xCD, Name: "CMP", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0xCE, Name: "DEC", Size: 3, Cycles: 6, Mode: Absolute, Kind: ReadModWrite},
	{OpCode: 0xCF, Name: "DCP", Mode: NoMode, Illegal: true},
	{OpCode: 0xD0, Name: "BNE", Size: 2, Cycles: 2, Mode: Relative},
	{OpCode: 0xD1, Name: "CMP", Size: 2, Cycles: 5, PageCycles: 1, Mode: IndirectY, Kind: Read},
	{OpCode: 0xD2, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0xD3, Name: "DCP", Mode: NoMode, Illegal: true},
	{OpCode: 0xD4, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0xD5, Name: "CMP", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Read},
	{OpCode: 0xD6, Name: "DEC", Size: 2, Cycles: 6, Mode: ZeroPageX, Kind: ReadModWrite},
	{OpCode: 0xD7, Name: "DCP", Mode: NoMode, Illegal: true},
	{OpCode: 0xD8, Name: "CLD", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xD9, Name: "CMP", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteY, Kind: Read},
	{OpCode: 0xDA, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0xDB, Name: "DCP", Mode: NoMode, Illegal: true},
	{OpCode: 0xDC, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0xDD, Name: "CMP", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteX, Kind: Read},
	{OpCode: 0xDE, Name: "DEC", Size: 3, Cycles: 7, Mode: AbsoluteX, Kind: ReadModWrite},
	{OpCode: 0xDF, Name: "DCP", Mode: NoMode, Illegal: true},
	{OpCode: 0xE0, Name: "CPX", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0xE1, Name: "SBC", Size: 2, Cycles: 6, Mode: IndirectX, Kind: Read},
	{OpCode: 0xE2, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0xE3, Name: "ISB", Mode: NoMode, Illegal: true},
	{OpCode: 0xE4, Name: "CPX", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0xE5, Name: "SBC", Size: 2, Cycles: 3, Mode: ZeroPage, Kind: Read},
	{OpCode: 0xE6, Name: "INC", Size: 2, Cycles: 5, Mode: ZeroPage, Kind: ReadModWrite},
	{OpCode: 0xE7, Name: "ISB", Mode: NoMode, Illegal: true},
	{OpCode: 0xE8, Name: "INX", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xE9, Name: "SBC", Size: 2, Cycles: 2, Mode: Immediate, Kind: Read},
	{OpCode: 0xEA, Name: "NOP", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xEB, Name: "SBC", Mode: NoMode, Illegal: true},
	{OpCode: 0xEC, Name: "CPX", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0xED, Name: "SBC", Size: 3, Cycles: 4, Mode: Absolute, Kind: Read},
	{OpCode: 0xEE, Name: "INC", Size: 3, Cycles: 6, Mode: Absolute, Kind: ReadModWrite},
	{OpCode: 0xEF, Name: "ISB", Mode: NoMode, Illegal: true},
	{OpCode: 0xF0, Name: "BEQ", Size: 2, Cycles: 2, Mode: Relative},
	{OpCode: 0xF1, Name: "SBC", Size: 2, Cycles: 5, PageCycles: 1, Mode: IndirectY, Kind: Read},
	{OpCode: 0xF2, Name: "KIL", Mode: NoMode, Illegal: true},
	{OpCode: 0xF3, Name: "ISB", Mode: NoMode, Illegal: true},
	{OpCode: 0xF4, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0xF5, Name: "SBC", Size: 2, Cycles: 4, Mode: ZeroPageX, Kind: Read},
	{OpCode: 0xF6, Name: "INC", Size: 2, Cycles: 6, Mode: ZeroPageX, Kind: ReadModWrite},
	{OpCode: 0xF7, Name: "ISB", Mode: NoMode, Illegal: true},
	{OpCode: 0xF8, Name: "SED", Size: 1, Cycles: 2, Mode: Implied},
	{OpCode: 0xF9, Name: "SBC", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteY, Kind: Read},
	{OpCode: 0xFA, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0xFB, Name: "ISB", Mode: NoMode, Illegal: true},
	{OpCode: 0xFC, Name: "NOP", Mode: NoMode, Illegal: true},
	{OpCode: 0xFD, Name: "SBC", Size: 3, Cycles: 4, PageCycles: 1, Mode: AbsoluteX, Kind: Read},
	{OpCode: 0xFE, Name: "INC", Size: 3, Cycles: 7, Mode: AbsoluteX, Kind: ReadModWrite},
	{OpCode: 0xFF, Name: "ISB", Mode: NoMode, Illegal: true},
}

// Lookup returns the decode-table entry for an opcode byte.
func Lookup(op byte) Instruction {
	return instructions[op]
}
