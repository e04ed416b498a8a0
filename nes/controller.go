package nes

// Button identifies one of the eight pad buttons, in the order the hardware
// reports them over the serial protocol.
type Button byte

const (
	A Button = iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

// Controller models one standard NES pad: a live button snapshot and the
// 8-bit shift register the console reads one bit at a time.
//
// Writing 1 to bit 0 of $4016 strobes both pads, reloading their shift
// registers from the current buttons; writing 0 ends the strobe and freezes
// them. Each read of $4016/$4017 then returns the low bit and shifts, with
// vacated positions reading as 1 the way the real pad does after eight reads.
type Controller struct {
	buttons byte
	shifter byte
	strobe  bool
}

// SetButtons replaces the live button snapshot. Bit 0 is A, bit 7 is Right.
// While the strobe is held high the shift register tracks it immediately.
func (c *Controller) SetButtons(v byte) {
	c.buttons = v
	if c.strobe {
		c.shifter = c.buttons
	}
}

// Press sets a single button in the snapshot.
func (c *Controller) Press(b Button) {
	c.SetButtons(c.buttons | 1<<b)
}

// Release clears a single button in the snapshot.
func (c *Controller) Release(b Button) {
	c.SetButtons(c.buttons &^ (1 << b))
}

// Strobe drives the strobe line. While high the shift register tracks the
// buttons; the falling edge freezes it for serial readout.
func (c *Controller) Strobe(on bool) {
	if on || c.strobe {
		c.shifter = c.buttons
	}
	c.strobe = on
}

// ShiftOut returns the next serial bit in bit 0 and advances the shift
// register. While the strobe is high the register is reloaded first, so the
// read always reports the A button.
func (c *Controller) ShiftOut() byte {
	if c.strobe {
		c.shifter = c.buttons
	}
	bit := c.shifter & 1
	c.shifter = c.shifter>>1 | 0x80
	return bit
}

// Peek returns what ShiftOut would return without advancing the register.
func (c *Controller) Peek() byte {
	if c.strobe {
		return c.buttons & 1
	}
	return c.shifter & 1
}
