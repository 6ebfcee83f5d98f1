package pins

import "fmt"

// Role is a peripheral signal function a pin may be declared capable of.
// The string value is the canonical upper-case token used in layout files.
type Role string

// I2C class roles.
const (
	// RoleI2C0SDA is the data line of I2C bus 0
	RoleI2C0SDA Role = "I2C0_SDA"

	// RoleI2C0SCL is the clock line of I2C bus 0
	RoleI2C0SCL Role = "I2C0_SCL"

	// RoleI2C1SDA is the data line of I2C bus 1
	RoleI2C1SDA Role = "I2C1_SDA"

	// RoleI2C1SCL is the clock line of I2C bus 1
	RoleI2C1SCL Role = "I2C1_SCL"
)

// SPI class roles.
const (
	// RoleSPI0RX is the receive line of SPI bus 0
	RoleSPI0RX Role = "SPI0_RX"

	// RoleSPI0CS is the chip select line of SPI bus 0
	RoleSPI0CS Role = "SPI0_CS"

	// RoleSPI0SCK is the clock line of SPI bus 0
	RoleSPI0SCK Role = "SPI0_SCK"

	// RoleSPI0TX is the transmit line of SPI bus 0
	RoleSPI0TX Role = "SPI0_TX"

	// RoleSPI1RX is the receive line of SPI bus 1
	RoleSPI1RX Role = "SPI1_RX"

	// RoleSPI1CS is the chip select line of SPI bus 1
	RoleSPI1CS Role = "SPI1_CS"

	// RoleSPI1SCK is the clock line of SPI bus 1
	RoleSPI1SCK Role = "SPI1_SCK"

	// RoleSPI1TX is the transmit line of SPI bus 1
	RoleSPI1TX Role = "SPI1_TX"
)

// UART class roles.
const (
	// RoleUART0TX is the transmit line of UART 0
	RoleUART0TX Role = "UART0_TX"

	// RoleUART0RX is the receive line of UART 0
	RoleUART0RX Role = "UART0_RX"

	// RoleUART0CTS is the clear-to-send line of UART 0
	RoleUART0CTS Role = "UART0_CTS"

	// RoleUART0RTS is the request-to-send line of UART 0
	RoleUART0RTS Role = "UART0_RTS"

	// RoleUART1TX is the transmit line of UART 1
	RoleUART1TX Role = "UART1_TX"

	// RoleUART1RX is the receive line of UART 1
	RoleUART1RX Role = "UART1_RX"

	// RoleUART1CTS is the clear-to-send line of UART 1
	RoleUART1CTS Role = "UART1_CTS"

	// RoleUART1RTS is the request-to-send line of UART 1
	RoleUART1RTS Role = "UART1_RTS"
)

// Class is one of the three peripheral families a role belongs to.
// A pin may hold at most one role per class.
type Class uint8

// Peripheral classes.
const (
	// ClassI2C covers the SDA/SCL role pairs
	ClassI2C Class = iota

	// ClassSPI covers the TX/SCK/RX/CS role sets
	ClassSPI

	// ClassUART covers the TX/RX/CTS/RTS role sets
	ClassUART
)

// String returns the class name as it appears in layout role tokens.
func (c Class) String() string {
	switch c {
	case ClassI2C:
		return "I2C"
	case ClassSPI:
		return "SPI"
	case ClassUART:
		return "UART"
	default:
		return fmt.Sprintf("unknown class %d", uint8(c))
	}
}

// signal identifies the exact bus line a role maps to. Signals are
// distinct across classes so table placement is a single dispatch.
type signal uint8

const (
	sigSDA signal = iota
	sigSCL
	sigSPITX
	sigSPISCK
	sigSPIRX
	sigSPICS
	sigUARTTX
	sigUARTRX
	sigUARTCTS
	sigUARTRTS
)

// roleInfo carries the classification metadata for one role.
type roleInfo struct {
	class Class
	bus   uint8
	sig   signal
}

// roleIndex drives role classification, per-class conflict detection
// and resolution table placement. Tokens outside this index are
// rejected at pin construction.
var roleIndex = map[Role]roleInfo{
	RoleI2C0SDA: {ClassI2C, 0, sigSDA},
	RoleI2C0SCL: {ClassI2C, 0, sigSCL},
	RoleI2C1SDA: {ClassI2C, 1, sigSDA},
	RoleI2C1SCL: {ClassI2C, 1, sigSCL},

	RoleSPI0RX:  {ClassSPI, 0, sigSPIRX},
	RoleSPI0CS:  {ClassSPI, 0, sigSPICS},
	RoleSPI0SCK: {ClassSPI, 0, sigSPISCK},
	RoleSPI0TX:  {ClassSPI, 0, sigSPITX},
	RoleSPI1RX:  {ClassSPI, 1, sigSPIRX},
	RoleSPI1CS:  {ClassSPI, 1, sigSPICS},
	RoleSPI1SCK: {ClassSPI, 1, sigSPISCK},
	RoleSPI1TX:  {ClassSPI, 1, sigSPITX},

	RoleUART0TX:  {ClassUART, 0, sigUARTTX},
	RoleUART0RX:  {ClassUART, 0, sigUARTRX},
	RoleUART0CTS: {ClassUART, 0, sigUARTCTS},
	RoleUART0RTS: {ClassUART, 0, sigUARTRTS},
	RoleUART1TX:  {ClassUART, 1, sigUARTTX},
	RoleUART1RX:  {ClassUART, 1, sigUARTRX},
	RoleUART1CTS: {ClassUART, 1, sigUARTCTS},
	RoleUART1RTS: {ClassUART, 1, sigUARTRTS},
}

// Class returns the peripheral class of the role and whether the role
// is part of the known vocabulary.
func (r Role) Class() (Class, bool) {
	info, ok := roleIndex[r]
	return info.class, ok
}
