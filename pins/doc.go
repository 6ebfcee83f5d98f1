// Package pins defines the peripheral role vocabulary and the pin
// resolution model shared by the layout parser and the code generator.
//
// # Role Vocabulary
//
// A pin may be declared capable of peripheral signal roles drawn from
// a fixed vocabulary partitioned into three classes:
//
//	I2C:  I2C0_SDA, I2C0_SCL, I2C1_SDA, I2C1_SCL
//	SPI:  SPI0_RX, SPI0_CS, SPI0_SCK, SPI0_TX (and the SPI1_* set)
//	UART: UART0_TX, UART0_RX, UART0_CTS, UART0_RTS (and the UART1_* set)
//
// A pin holds at most one role per class; combinations across classes
// are unrestricted, so a single pin may serve I2C, SPI and UART
// depending on how the runtime configures it.
//
// # Pin Construction
//
// NewPin performs the role validation step:
//
//	p, err := pins.NewPin(4, docLines, []string{"I2C0_SDA", "UART1_TX"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Tokens are case-insensitive and normalized to upper case. Unknown
// tokens and per-class duplicates are rejected with typed errors.
//
// # Resolution Tables
//
// BuildTables turns a validated pin set into the four resolvers a
// board module exposes:
//
//	t := pins.BuildTables(board.Pins)
//	bus, ok := t.ResolveI2C(4, 5)
//	spi, ok := t.ResolveSPI(19, 18, pins.NoPin, pins.NoPin)
//
// Resolution is a runtime-evaluated partial function: the builder
// cannot know which pins a caller will pick, so a mismatched pairing
// resolves to no bus instead of failing the build. PWM needs no table;
// PWMChannelOf derives the channel for any pin from its number alone.
//
// # Error Handling
//
// Validation failures are reported with typed errors:
//   - PinRangeError: pin number outside 0-254
//   - InvalidRoleError: role token outside the vocabulary
//   - RoleConflictError: two roles of one class on one pin
package pins
