package generator

import (
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/moffa90/go-pinmap/layout"
	"github.com/moffa90/go-pinmap/pins"
)

// fileHeader is the marker carried by every generated file.
const fileHeader = `// Code generated by pinmapgen. DO NOT EDIT.
//
// Use the pinmapgen command to regenerate this file.
`

// buildTag maps a board tag into Go build tag space. Tags may contain
// hyphens, build constraint words may not.
func buildTag(tag string) string {
	return strings.ReplaceAll(tag, "-", "_")
}

// sortedKeys returns the keys of m in ascending order. Emitted case
// arms must not depend on map iteration order.
func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// renderBoard renders the complete Go source of one board file,
// gated on the board's build tag.
func renderBoard(pkg string, board *layout.Board) ([]byte, error) {
	t := pins.BuildTables(board.Pins)
	tag := buildTag(board.Tag)

	var b strings.Builder
	b.WriteString(fileHeader)
	fmt.Fprintf(&b, "\n//go:build %s\n\n", tag)
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	fmt.Fprintf(&b, "// Board is the tag of the active board.\nconst Board = %q\n\n", tag)
	fmt.Fprintf(&b, "// BoardName is the display name declared by the board's layout.\nconst BoardName = %q\n\n", board.Name)

	writePinConsts(&b, board)
	writePWM(&b, board)
	writeI2C(&b, t)
	writeSPI(&b, t)
	writeUART(&b, t)

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to format board file")
	}
	return src, nil
}

// writePinConsts writes one PinID constant per declared pin, carrying
// the pin's layout doc lines.
func writePinConsts(b *strings.Builder, board *layout.Board) {
	fmt.Fprintf(b, "// Pins declared by the %q layout.\nconst (\n", board.Tag)
	for _, p := range board.Pins {
		for _, d := range p.Doc {
			fmt.Fprintf(b, "\t// %s\n", d)
		}
		fmt.Fprintf(b, "\tPin%d PinID = %d\n", p.ID, p.ID)
	}
	fmt.Fprintf(b, ")\n\n")
}

// writePWM writes the PWM resolver. The channel mapping is total, so
// the default branch falls back to the slice arithmetic instead of
// reporting a failure.
func writePWM(b *strings.Builder, board *layout.Board) {
	fmt.Fprintf(b, "// PinPWM returns the PWM channel assignment for pin.\n")
	fmt.Fprintf(b, "func PinPWM(pin PinID) PWMChannel {\n\tswitch pin {\n")
	for _, p := range board.Pins {
		c := pins.PWMChannelOf(p.ID)
		fmt.Fprintf(b, "\tcase Pin%d:\n\t\treturn PWMChannel{Slice: %d, Output: PWMOutput%s}\n", p.ID, c.Slice, c.Output)
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn pwmChannelFor(uint8(pin))\n\t}\n}\n\n")
}

// writeBusSelect writes the switch resolving the bus from the mapping
// signal; an unmapped pin resolves to no bus. The switch assigns into
// a bus variable declared by the caller.
func writeBusSelect[V fmt.Stringer](b *strings.Builder, arg string, m map[pins.PinID]V) {
	fmt.Fprintf(b, "\tswitch %s {\n", arg)
	for _, pin := range sortedKeys(m) {
		fmt.Fprintf(b, "\tcase Pin%d:\n\t\tbus = %s\n", pin, m[pin])
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn 0, false\n\t}\n")
}

// writeBusCheck writes the switch verifying that a signal pin belongs
// to the already resolved bus. Optional signals accept NoPin first.
func writeBusCheck[V fmt.Stringer](b *strings.Builder, arg string, m map[pins.PinID]V, optional bool) {
	fmt.Fprintf(b, "\tswitch {\n")
	if optional {
		fmt.Fprintf(b, "\tcase %s == NoPin:\n", arg)
	}
	for _, pin := range sortedKeys(m) {
		fmt.Fprintf(b, "\tcase bus == %s && %s == Pin%d:\n", m[pin], arg, pin)
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn 0, false\n\t}\n")
}

// writeI2C writes the I2C resolver. A board missing either mandatory
// signal can never resolve a bus, so its resolver short circuits.
func writeI2C(b *strings.Builder, t *pins.Tables) {
	fmt.Fprintf(b, "// PinI2C resolves the I2C bus formed by the sda and scl pins,\n")
	fmt.Fprintf(b, "// reporting whether the pairing is valid.\n")
	fmt.Fprintf(b, "func PinI2C(sda, scl PinID) (I2CBus, bool) {\n")
	if len(t.I2C.SDA) == 0 || len(t.I2C.SCL) == 0 {
		fmt.Fprintf(b, "\t// no complete I2C pinout declared\n\treturn 0, false\n}\n\n")
		return
	}
	fmt.Fprintf(b, "\tvar bus I2CBus\n")
	writeBusSelect(b, "sda", t.I2C.SDA)
	writeBusCheck(b, "scl", t.I2C.SCL, false)
	fmt.Fprintf(b, "\treturn bus, true\n}\n\n")
}

// writeSPI writes the SPI resolver.
func writeSPI(b *strings.Builder, t *pins.Tables) {
	fmt.Fprintf(b, "// PinSPI resolves the SPI bus formed by the tx and sck pins and\n")
	fmt.Fprintf(b, "// the optional rx and cs pins. Pass NoPin for an unused optional\n")
	fmt.Fprintf(b, "// pin; a two wire configuration needs tx and sck only.\n")
	fmt.Fprintf(b, "func PinSPI(tx, sck, rx, cs PinID) (SPIBus, bool) {\n")
	if len(t.SPI.TX) == 0 || len(t.SPI.SCK) == 0 {
		fmt.Fprintf(b, "\t// no complete SPI pinout declared\n\treturn 0, false\n}\n\n")
		return
	}
	fmt.Fprintf(b, "\tvar bus SPIBus\n")
	writeBusSelect(b, "tx", t.SPI.TX)
	writeBusCheck(b, "sck", t.SPI.SCK, false)
	fmt.Fprintf(b, "\tif rx == NoPin && cs == NoPin {\n\t\treturn bus, true\n\t}\n")
	writeBusCheck(b, "rx", t.SPI.RX, true)
	writeBusCheck(b, "cs", t.SPI.CS, true)
	fmt.Fprintf(b, "\treturn bus, true\n}\n\n")
}

// writeUART writes the UART resolver.
func writeUART(b *strings.Builder, t *pins.Tables) {
	fmt.Fprintf(b, "// PinUART resolves the UART formed by the tx and rx pins and the\n")
	fmt.Fprintf(b, "// optional cts and rts pins. Pass NoPin for an unused optional pin.\n")
	fmt.Fprintf(b, "func PinUART(tx, rx, cts, rts PinID) (UARTBus, bool) {\n")
	if len(t.UART.TX) == 0 || len(t.UART.RX) == 0 {
		fmt.Fprintf(b, "\t// no complete UART pinout declared\n\treturn 0, false\n}\n")
		return
	}
	fmt.Fprintf(b, "\tvar bus UARTBus\n")
	writeBusSelect(b, "tx", t.UART.TX)
	writeBusCheck(b, "rx", t.UART.RX, false)
	fmt.Fprintf(b, "\tif cts == NoPin && rts == NoPin {\n\t\treturn bus, true\n\t}\n")
	writeBusCheck(b, "cts", t.UART.CTS, true)
	writeBusCheck(b, "rts", t.UART.RTS, true)
	fmt.Fprintf(b, "\treturn bus, true\n}\n")
}

// aggregatorTypes is the shared vocabulary declared by the aggregator
// file. Board files are import-free; everything they reference lives
// here. The values mirror the pins package so resolutions agree.
const aggregatorTypes = `// PinID identifies a single pin declared by the active board layout.
type PinID uint8

// NoPin marks an optional pin argument as absent.
const NoPin PinID = 0xFF

// I2CBus identifies an I2C bus instance.
type I2CBus uint8

// I2C bus instances.
const (
	I2C0 I2CBus = iota
	I2C1
)

func (b I2CBus) String() string {
	if b == I2C1 {
		return "I2C1"
	}
	return "I2C0"
}

// SPIBus identifies an SPI bus instance.
type SPIBus uint8

// SPI bus instances.
const (
	SPI0 SPIBus = iota
	SPI1
)

func (b SPIBus) String() string {
	if b == SPI1 {
		return "SPI1"
	}
	return "SPI0"
}

// UARTBus identifies a UART instance.
type UARTBus uint8

// UART instances.
const (
	UART0 UARTBus = iota
	UART1
)

func (b UARTBus) String() string {
	if b == UART1 {
		return "UART1"
	}
	return "UART0"
}

// PWMOutput selects one of the two outputs of a PWM slice.
type PWMOutput uint8

// PWM slice outputs.
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
	Slice  uint8
	Output PWMOutput
}

// String returns the conventional short form, for example "PWM3A".
func (c PWMChannel) String() string {
	const digits = "01234567"
	i := int(c.Slice) & 7
	return "PWM" + digits[i:i+1] + c.Output.String()
}

// pwmChannelFor derives the PWM channel for a raw pin number: slice
// floor(id/2) mod 8, output A for even ids and B for odd ids.
func pwmChannelFor(id uint8) PWMChannel {
	c := PWMChannel{Slice: id / 2 % 8}
	if id%2 != 0 {
		c.Output = PWMOutputB
	}
	return c
}
`

// renderAggregator renders the shared source file: the pin vocabulary
// plus the index of every generated board.
func renderAggregator(pkg string, boards []*layout.Board) ([]byte, error) {
	sorted := make([]*layout.Board, len(boards))
	copy(sorted, boards)
	sort.Slice(sorted, func(i, j int) bool {
		return buildTag(sorted[i].Tag) < buildTag(sorted[j].Tag)
	})

	var b strings.Builder
	b.WriteString(fileHeader)
	fmt.Fprintf(&b, "\npackage %s\n\n", pkg)
	b.WriteString(aggregatorTypes)
	b.WriteString("\n// Boards indexes every generated board tag to its display name.\nvar Boards = map[string]string{\n")
	for _, bd := range sorted {
		fmt.Fprintf(&b, "\t%q: %q,\n", buildTag(bd.Tag), bd.Name)
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to format aggregator file")
	}
	return src, nil
}
