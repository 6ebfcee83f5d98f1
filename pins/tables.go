package pins

import "fmt"

// I2CBus identifies an I2C bus instance resolved from a pin pairing.
type I2CBus uint8

// I2C bus instances.
const (
	I2C0 I2CBus = iota
	I2C1
)

func (b I2CBus) String() string {
	return fmt.Sprintf("I2C%d", uint8(b))
}

// SPIBus identifies an SPI bus instance resolved from a pin set.
type SPIBus uint8

// SPI bus instances.
const (
	SPI0 SPIBus = iota
	SPI1
)

func (b SPIBus) String() string {
	return fmt.Sprintf("SPI%d", uint8(b))
}

// UARTBus identifies a UART instance resolved from a pin set.
type UARTBus uint8

// UART instances.
const (
	UART0 UARTBus = iota
	UART1
)

func (b UARTBus) String() string {
	return fmt.Sprintf("UART%d", uint8(b))
}

// PWMOutput selects one of the two outputs of a PWM slice.
type PWMOutput uint8

// PWM slice outputs. Even pins map to output A, odd pins to output B.
const (
	PWMOutputA PWMOutput = iota
	PWMOutputB
)

func (o PWMOutput) String() string {
	if o == PWMOutputB {
		return "B"
	}
	return "A"
}

// PWMChannel addresses one output of one of the eight PWM slices.
type PWMChannel struct {
	// Slice is the PWM slice number (0-7)
	Slice uint8

	// Output selects the A or B output of the slice
	Output PWMOutput
}

// String returns the conventional short form, for example "PWM3A".
func (c PWMChannel) String() string {
	return fmt.Sprintf("PWM%d%s", c.Slice, c.Output)
}

// PWMChannelOf derives the PWM channel assignment for a pin:
// slice floor(id/2) mod 8, output A for even ids and B for odd ids.
// Every pin maps to a channel; there is no error path.
func PWMChannelOf(pin PinID) PWMChannel {
	c := PWMChannel{Slice: uint8(pin) / 2 % 8}
	if pin%2 != 0 {
		c.Output = PWMOutputB
	}
	return c
}

// I2CTable holds the I2C resolution maps for one board.
type I2CTable struct {
	// SDA maps pins declared with an SDA role to their bus
	SDA map[PinID]I2CBus

	// SCL maps pins declared with an SCL role to their bus
	SCL map[PinID]I2CBus
}

// SPITable holds the SPI resolution maps for one board.
type SPITable struct {
	// TX maps pins declared with a TX role to their bus
	TX map[PinID]SPIBus

	// SCK maps pins declared with an SCK role to their bus
	SCK map[PinID]SPIBus

	// RX maps pins declared with an RX role to their bus
	RX map[PinID]SPIBus

	// CS maps pins declared with a CS role to their bus
	CS map[PinID]SPIBus
}

// UARTTable holds the UART resolution maps for one board.
type UARTTable struct {
	// TX maps pins declared with a TX role to their bus
	TX map[PinID]UARTBus

	// RX maps pins declared with an RX role to their bus
	RX map[PinID]UARTBus

	// CTS maps pins declared with a CTS role to their bus
	CTS map[PinID]UARTBus

	// RTS maps pins declared with an RTS role to their bus
	RTS map[PinID]UARTBus
}

// Tables bundles the per-peripheral resolution tables built from one
// board's validated pin set. PWM needs no table; it is derived by
// PWMChannelOf alone.
type Tables struct {
	I2C  I2CTable
	SPI  SPITable
	UART UARTTable
}

// BuildTables constructs the resolution tables for a validated pin
// sequence. Construction never fails: role conflicts are rejected at
// pin construction, and mismatched pin pairings surface as a failed
// resolution instead of a build error. Table contents are a pure
// function of the pin set.
func BuildTables(pp []Pin) *Tables {
	t := &Tables{
		I2C: I2CTable{
			SDA: make(map[PinID]I2CBus),
			SCL: make(map[PinID]I2CBus),
		},
		SPI: SPITable{
			TX:  make(map[PinID]SPIBus),
			SCK: make(map[PinID]SPIBus),
			RX:  make(map[PinID]SPIBus),
			CS:  make(map[PinID]SPIBus),
		},
		UART: UARTTable{
			TX:  make(map[PinID]UARTBus),
			RX:  make(map[PinID]UARTBus),
			CTS: make(map[PinID]UARTBus),
			RTS: make(map[PinID]UARTBus),
		},
	}

	for _, p := range pp {
		for _, r := range p.Roles {
			info := roleIndex[r]
			switch info.sig {
			case sigSDA:
				t.I2C.SDA[p.ID] = I2CBus(info.bus)
			case sigSCL:
				t.I2C.SCL[p.ID] = I2CBus(info.bus)
			case sigSPITX:
				t.SPI.TX[p.ID] = SPIBus(info.bus)
			case sigSPISCK:
				t.SPI.SCK[p.ID] = SPIBus(info.bus)
			case sigSPIRX:
				t.SPI.RX[p.ID] = SPIBus(info.bus)
			case sigSPICS:
				t.SPI.CS[p.ID] = SPIBus(info.bus)
			case sigUARTTX:
				t.UART.TX[p.ID] = UARTBus(info.bus)
			case sigUARTRX:
				t.UART.RX[p.ID] = UARTBus(info.bus)
			case sigUARTCTS:
				t.UART.CTS[p.ID] = UARTBus(info.bus)
			case sigUARTRTS:
				t.UART.RTS[p.ID] = UARTBus(info.bus)
			}
		}
	}

	return t
}

// ResolveI2C resolves the bus formed by the sda and scl pins. It
// reports false when either pin does not carry the matching role for
// a common bus.
func (t *Tables) ResolveI2C(sda, scl PinID) (I2CBus, bool) {
	bus, ok := t.I2C.SDA[sda]
	if !ok {
		return 0, false
	}
	if b, ok := t.I2C.SCL[scl]; !ok || b != bus {
		return 0, false
	}
	return bus, true
}

// ResolveSPI resolves the bus formed by the tx and sck pins and the
// optional rx and cs pins. Pass NoPin for an unused optional pin; a
// two wire configuration needs tx and sck only. A present optional pin
// must carry the matching role for the resolved bus.
func (t *Tables) ResolveSPI(tx, sck, rx, cs PinID) (SPIBus, bool) {
	bus, ok := t.SPI.TX[tx]
	if !ok {
		return 0, false
	}
	if b, ok := t.SPI.SCK[sck]; !ok || b != bus {
		return 0, false
	}
	if rx == NoPin && cs == NoPin {
		return bus, true
	}
	if rx != NoPin {
		if b, ok := t.SPI.RX[rx]; !ok || b != bus {
			return 0, false
		}
	}
	if cs != NoPin {
		if b, ok := t.SPI.CS[cs]; !ok || b != bus {
			return 0, false
		}
	}
	return bus, true
}

// ResolveUART resolves the bus formed by the tx and rx pins and the
// optional cts and rts pins. Pass NoPin for an unused optional pin.
func (t *Tables) ResolveUART(tx, rx, cts, rts PinID) (UARTBus, bool) {
	bus, ok := t.UART.TX[tx]
	if !ok {
		return 0, false
	}
	if b, ok := t.UART.RX[rx]; !ok || b != bus {
		return 0, false
	}
	if cts == NoPin && rts == NoPin {
		return bus, true
	}
	if cts != NoPin {
		if b, ok := t.UART.CTS[cts]; !ok || b != bus {
			return 0, false
		}
	}
	if rts != NoPin {
		if b, ok := t.UART.RTS[rts]; !ok || b != bus {
			return 0, false
		}
	}
	return bus, true
}
