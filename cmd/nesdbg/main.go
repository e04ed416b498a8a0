// Command nesdbg is an interactive step-debugger for the CPU core. It loads
// a flat program image (a binary file or a hex string) into cartridge space,
// points the reset vector at it and single-steps the CPU, showing memory,
// registers and the upcoming disassembly.
//
// It is deliberately PPU-less: the register window is backed by plain
// latches, so programs that poke $2000-$3FFF run without a video backend.
//
//	nesdbg -hex "A9 01 69 01 00"
//	nesdbg -org 0xC000 program.bin
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nescore/nes"
)

// debugMapper exposes the whole cartridge range as flat, writable memory so
// hand-written programs need no iNES container or banking.
type debugMapper struct {
	mem [0x10000]byte
}

func (m *debugMapper) ReadPRG(addr uint16) byte     { return m.mem[addr] }
func (m *debugMapper) WritePRG(addr uint16, v byte) { m.mem[addr] = v }

// latchPPU stands in for the real PPU: eight plain register latches and an
// OAM sink, no rendering, no NMIs.
type latchPPU struct {
	regs [8]byte
	oam  [256]byte
	head byte
}

func (p *latchPPU) ReadRegister(reg uint16) byte     { return p.regs[reg] }
func (p *latchPPU) PeekRegister(reg uint16) byte     { return p.regs[reg] }
func (p *latchPPU) WriteRegister(reg uint16, v byte) { p.regs[reg] = v }
func (p *latchPPU) TakeNMI() bool                    { return false }

func (p *latchPPU) WriteOAM(v byte) {
	p.oam[p.head] = v
	p.head++
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	currentStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

type model struct {
	cpu *nes.CPU
	bus *nes.Bus

	org     uint16
	prevPC  uint16
	stepErr error
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ", "j", "enter":
		if m.stepErr != nil {
			return m, nil
		}
		m.prevPC = m.cpu.PC()
		if _, err := m.cpu.Step(); err != nil {
			m.stepErr = err
		}

	case "r":
		m.stepErr = nil
		m.cpu.Reset()
		m.prevPC = m.cpu.PC()
	}

	return m, nil
}

// renderRow renders 16 bytes of memory as one hex row, highlighting the
// current PC.
func (m *model) renderRow(start uint16) string {
	s := fmt.Sprintf("%04x │", start)
	for i := uint16(0); i < 16; i++ {
		cell := fmt.Sprintf(" %02x", m.bus.Peek(start+i))
		if start+i == m.cpu.PC() {
			cell = " " + currentStyle.Render(fmt.Sprintf("%02x", m.bus.Peek(start+i)))
		}
		s += cell
	}
	return s
}

func (m *model) memory() string {
	rows := []string{headerStyle.Render("memory")}

	// Zero page, the stack page around SP, and the code around PC.
	for _, base := range []uint16{0x0000, 0x0010} {
		rows = append(rows, m.renderRow(base))
	}
	rows = append(rows, dimStyle.Render("···"))
	rows = append(rows, m.renderRow(0x0100|uint16(m.cpu.SP())&0xF0))
	rows = append(rows, dimStyle.Render("···"))

	pcRow := m.cpu.PC() &^ 0x000F
	for i := uint16(0); i < 4; i++ {
		rows = append(rows, m.renderRow(pcRow+16*i))
	}

	return strings.Join(rows, "\n")
}

func (m *model) registers() string {
	p := m.cpu.Status()
	flags := ""
	for i, name := range []string{"N", "V", "U", "B", "D", "I", "Z", "C"} {
		if p&(1<<(7-i)) != 0 {
			flags += name
		} else {
			flags += dimStyle.Render(strings.ToLower(name))
		}
		flags += " "
	}

	return strings.Join([]string{
		headerStyle.Render("registers"),
		fmt.Sprintf(" PC: %04x (%04x)", m.cpu.PC(), m.prevPC),
		fmt.Sprintf("  A: %02x", m.cpu.A()),
		fmt.Sprintf("  X: %02x", m.cpu.X()),
		fmt.Sprintf("  Y: %02x", m.cpu.Y()),
		fmt.Sprintf(" SP: %02x", m.cpu.SP()),
		fmt.Sprintf("  P: %02x  %s", p, flags),
		fmt.Sprintf("CYC: %d", m.cpu.Cycles()),
	}, "\n")
}

func (m *model) listing() string {
	rows := []string{headerStyle.Render("disassembly")}

	pc := m.cpu.PC()
	for i := 0; i < 8; i++ {
		line := fmt.Sprintf("%04X  %s", pc, nes.Disassemble(m.bus, pc))
		if i == 0 {
			line = currentStyle.Render(line)
		}
		rows = append(rows, line)

		size := nes.Lookup(m.bus.Peek(pc)).Size
		if size == 0 {
			size = 1
		}
		pc += uint16(size)
	}

	return strings.Join(rows, "\n")
}

func (m *model) View() string {
	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.memory(),
		"   ",
		m.registers(),
	)

	bottom := dimStyle.Render(spew.Sdump(nes.Lookup(m.bus.Peek(m.cpu.PC()))))

	status := dimStyle.Render("space/j step · r reset · q quit")
	if m.stepErr != nil {
		status = errorStyle.Render(m.stepErr.Error())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		top,
		"",
		m.listing(),
		"",
		bottom,
		status,
	) + "\n"
}

// parseHex turns "A9 01 00" into bytes.
func parseHex(s string) ([]byte, error) {
	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad hex byte %q: %w", f, err)
		}
		out = append(out, byte(b))
	}
	return out, nil
}

func main() {
	hexProg := flag.String("hex", "", "program as hex bytes, e.g. \"A9 01 69 01\"")
	orgFlag := flag.String("org", "0x8000", "load address and reset target")
	flag.Parse()

	org64, err := strconv.ParseUint(strings.TrimPrefix(*orgFlag, "0x"), 16, 16)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad -org:", err)
		os.Exit(1)
	}
	org := uint16(org64)
	if org < 0x4020 {
		fmt.Fprintln(os.Stderr, "-org must be in cartridge space ($4020-$FFFF)")
		os.Exit(1)
	}

	var program []byte
	switch {
	case *hexProg != "":
		program, err = parseHex(*hexProg)
	case flag.NArg() == 1:
		program, err = os.ReadFile(flag.Arg(0))
	default:
		err = fmt.Errorf("need a program: -hex or a binary file argument")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mapper := &debugMapper{}
	copy(mapper.mem[org:], program)
	mapper.mem[0xFFFC] = byte(org)
	mapper.mem[0xFFFD] = byte(org >> 8)

	bus := nes.NewBus(&latchPPU{}, nil)
	bus.AttachMapper(mapper)

	cpu := nes.NewCPU(bus)
	cpu.Reset()

	m := &model{cpu: cpu, bus: bus, org: org, prevPC: cpu.PC()}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
