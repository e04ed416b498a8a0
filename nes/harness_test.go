package nes

// Test collaborators. The real PPU and mapper live outside this module; the
// stubs here give the bus just enough behavior to observe routing.

// stubPPU records register traffic and collects OAM-DMA bytes.
type stubPPU struct {
	regs [8]byte
	oam  []byte
	nmi  bool

	reads  int // mutating reads, to catch Peek leaking side effects
	writes int
}

func (p *stubPPU) ReadRegister(reg uint16) byte {
	p.reads++
	return p.regs[reg]
}

func (p *stubPPU) PeekRegister(reg uint16) byte {
	return p.regs[reg]
}

func (p *stubPPU) WriteRegister(reg uint16, v byte) {
	p.writes++
	p.regs[reg] = v
}

func (p *stubPPU) WriteOAM(v byte) {
	p.oam = append(p.oam, v)
}

func (p *stubPPU) TakeNMI() bool {
	n := p.nmi
	p.nmi = false
	return n
}

// stubAPU latches the last status byte and records register writes.
type stubAPU struct {
	status byte
	writes map[uint16]byte
}

func newStubAPU() *stubAPU {
	return &stubAPU{writes: make(map[uint16]byte)}
}

func (a *stubAPU) ReadStatus() byte {
	return a.status
}

func (a *stubAPU) WriteRegister(addr uint16, v byte) {
	a.writes[addr] = v
}

// flatMapper exposes the whole cartridge range as writable memory, which
// makes vectors and test programs trivial to place.
type flatMapper struct {
	mem [0x10000]byte
}

func (m *flatMapper) ReadPRG(addr uint16) byte {
	return m.mem[addr]
}

func (m *flatMapper) WritePRG(addr uint16, v byte) {
	m.mem[addr] = v
}

// load copies a program into cartridge space.
func (m *flatMapper) load(addr uint16, prog ...byte) {
	copy(m.mem[addr:], prog)
}

// setVector writes a little-endian address at one of the vector slots.
func (m *flatMapper) setVector(vector, target uint16) {
	m.mem[vector] = byte(target)
	m.mem[vector+1] = byte(target >> 8)
}

// newTestRig builds a CPU on a bus with a stub PPU and a flat mapper whose
// reset vector points at org. The CPU comes back already reset.
func newTestRig(org uint16) (*CPU, *Bus, *stubPPU, *flatMapper) {
	ppu := &stubPPU{}
	mapper := &flatMapper{}
	mapper.setVector(resetAddr, org)

	bus := NewBus(ppu, nil)
	bus.AttachMapper(mapper)

	cpu := NewCPU(bus)
	cpu.Reset()

	return cpu, bus, ppu, mapper
}
