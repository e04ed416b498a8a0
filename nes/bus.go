package nes

// ╔═════════════════╤═══════╤═════════════════════════╤═══════════╗
// ║ Address Range   │ Size  │ Purpose                 │ Kind      ║
// ╠═════════════════╪═══════╪═════════════════════════╪═══════════╣
// ║ 0x4020 - 0xFFFF │ 49120 │ CARTRIDGE (MAPPER)      │  PRG ROM  ║
// ╠═════════════════╪═══════╪═════════════════════════╪═══════════╣
// ║ 0x4018 - 0x401F │ 8     │ TEST MODE               │           ║
// ╟╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤           ║
// ║ 0x4016 - 0x4017 │ 2     │ CONTROLLER PORTS        │           ║
// ╟╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤  I/O REG  ║
// ║ 0x4014 - 0x4015 │ 2     │ OAM-DMA / APU STATUS    │           ║
// ╟╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤           ║
// ║ 0x4000 - 0x4013 │ 20    │ APU CHANNELS            │           ║
// ╠═════════════════╪═══════╪═════════════════════════╪═══════════╣
// ║ 0x2008 - 0x3FFF │ 8184  │ MIRRORS 0x2000 - 0x2007 │           ║
// ╟╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤  PPU REG  ║
// ║ 0x2000 - 0x2007 │ 8     │ PPU REGISTERS           │           ║
// ╠═════════════════╪═══════╪═════════════════════════╪═══════════╣
// ║ 0x0800 - 0x1FFF │ 6144  │ MIRRORS 0x0000 - 0x07FF │           ║
// ╟╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤    RAM    ║
// ║ 0x0000 - 0x07FF │ 2048  │ WORK RAM                │           ║
// ╚═════════════════╧═══════╧═════════════════════════╧═══════════╝

const (
	ramSize = 2048
	ioSize  = 0x20

	ppuRegBase = 0x2000
	ioRegBase  = 0x4000

	oamDMAAddr   = 0x4014
	apuStatAddr  = 0x4015
	ctrl1Addr    = 0x4016
	ctrl2Addr    = 0x4017
	cartBaseAddr = 0x4020
)

// Mapper is the cartridge hardware's view of the CPU bus. The bus delegates
// every access in $4020-$FFFF to it. A mapper that maps a range read-only
// simply drops writes to it.
//
// Construction from a cartridge image, CHR access and mirroring queries live
// with the collaborator that owns the cartridge, not here.
type Mapper interface {
	ReadPRG(addr uint16) byte
	WritePRG(addr uint16, v byte)
}

// PPU is the register window the bus exposes at $2000-$3FFF, plus the OAM
// port used during DMA and the NMI edge the CPU polls.
//
// ReadRegister is the mutating path: real hardware reads of $2002 clear the
// vblank flag and the address latch, and $2007 advances the VRAM address.
// PeekRegister must answer without any of those side effects; normal
// execution never uses it, the disassembler and debugger do.
type PPU interface {
	ReadRegister(reg uint16) byte
	PeekRegister(reg uint16) byte
	WriteRegister(reg uint16, v byte)
	WriteOAM(v byte)
	TakeNMI() bool
}

// APU is the audio collaborator's register seam. Channel writes are observed
// alongside the bus scratch so reads still return the last-written byte;
// $4015 reads come from the APU itself. A nil APU leaves every port on the
// scratch bytes, which is all the CPU core needs.
type APU interface {
	ReadStatus() byte
	WriteRegister(addr uint16, v byte)
}

// Bus routes 16-bit CPU addresses to work RAM, the PPU register window, the
// APU/IO scratch, the controller ports and the cartridge mapper. It owns the
// 2 KiB of RAM and the two controllers; the PPU and APU are shared with the
// outer loop that clocks them.
type Bus struct {
	ram [ramSize]byte

	// io latches the last byte written to each APU/IO register so reads
	// of ports the core does not interpret return it. The APU collaborator
	// owns the semantics.
	io [ioSize]byte

	ppu    PPU
	apu    APU
	mapper Mapper

	controllers [2]Controller

	// dmaPending is set by a write to $4014 and drained by the CPU, which
	// charges the 513/514 cycle stall at the end of the instruction.
	dmaPending bool
}

// NewBus wires a bus to its PPU and (optionally nil) APU. The mapper arrives
// later via AttachMapper, once a cartridge is loaded.
func NewBus(ppu PPU, apu APU) *Bus {
	return &Bus{ppu: ppu, apu: apu}
}

// AttachMapper installs the cartridge mapper. Until this is called, any Read
// or Write in $4020-$FFFF panics with a MissingCartridgeError; Peek reads $FF
// there instead.
func (b *Bus) AttachMapper(m Mapper) {
	b.mapper = m
}

// Controller returns one of the two pads so the host input collaborator can
// feed it button state. i is 0 or 1.
func (b *Bus) Controller(i int) *Controller {
	return &b.controllers[i]
}

// Read performs a CPU read with full hardware side effects: PPU register
// reads mutate PPU state and controller reads advance the shift register.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < ppuRegBase:
		return b.ram[addr&(ramSize-1)]

	case addr < ioRegBase:
		return b.ppu.ReadRegister(addr & 0x0007)

	case addr == apuStatAddr:
		if b.apu != nil {
			return b.apu.ReadStatus()
		}
		return b.io[addr-ioRegBase]

	case addr == ctrl1Addr:
		return b.controllers[0].ShiftOut()

	case addr == ctrl2Addr:
		return b.controllers[1].ShiftOut()

	case addr < cartBaseAddr:
		return b.io[addr-ioRegBase]

	default:
		if b.mapper == nil {
			panic(&MissingCartridgeError{Addr: addr})
		}
		return b.mapper.ReadPRG(addr)
	}
}

// Peek reads without side effects, for the disassembler and debugger. The
// PPU answers through its side-effect-free path, controllers report the next
// serial bit without shifting, and a missing mapper reads as open bus rather
// than panicking.
func (b *Bus) Peek(addr uint16) byte {
	switch {
	case addr < ppuRegBase:
		return b.ram[addr&(ramSize-1)]

	case addr < ioRegBase:
		return b.ppu.PeekRegister(addr & 0x0007)

	case addr == ctrl1Addr:
		return b.controllers[0].Peek()

	case addr == ctrl2Addr:
		return b.controllers[1].Peek()

	case addr < cartBaseAddr:
		return b.io[addr-ioRegBase]

	default:
		if b.mapper == nil {
			return 0xFF
		}
		return b.mapper.ReadPRG(addr)
	}
}

// Write performs a CPU write. A write to $4014 copies a full page into the
// PPU's OAM through ordinary bus reads (so mirrors and mapper-backed pages
// behave) and flags the DMA stall for the CPU to charge. A write to $4016
// strobes both controllers; $4017 belongs to the APU frame counter and does
// not re-trigger the strobe.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr < ppuRegBase:
		b.ram[addr&(ramSize-1)] = v

	case addr < ioRegBase:
		b.ppu.WriteRegister(addr&0x0007, v)

	case addr == oamDMAAddr:
		b.io[addr-ioRegBase] = v
		b.oamDMA(v)

	case addr == ctrl1Addr:
		b.io[addr-ioRegBase] = v
		b.controllers[0].Strobe(v&1 == 1)
		b.controllers[1].Strobe(v&1 == 1)

	case addr < cartBaseAddr:
		b.io[addr-ioRegBase] = v
		if b.apu != nil && (addr <= 0x4013 || addr == apuStatAddr || addr == ctrl2Addr) {
			b.apu.WriteRegister(addr, v)
		}

	default:
		if b.mapper == nil {
			panic(&MissingCartridgeError{Addr: addr})
		}
		b.mapper.WritePRG(addr, v)
	}
}

// oamDMA copies the 256 bytes of page $HH00 into the PPU's OAM.
func (b *Bus) oamDMA(page byte) {
	addr := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAM(b.Read(addr))
		addr++
	}
	b.dmaPending = true
}

// takeDMA reports and clears the pending DMA stall.
func (b *Bus) takeDMA() bool {
	p := b.dmaPending
	b.dmaPending = false
	return p
}
