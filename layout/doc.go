// Package layout provides parsing for board layout files.
//
// # Layout File Format
//
// A layout file is a line-oriented UTF-8 text file describing one
// board: a display name, a board tag and the set of pins the board
// exposes with the peripheral roles each pin supports.
//
//	// Comment lines start with a double slash.
//	<Name>            display name, e.g. "Raspberry Pi Pico"
//	#<tag>            board tag, e.g. "#pico" (at least 3 characters)
//	<id>: <roles>     one pin entry per line
//
// Pin entries take one of three forms:
//
//	4: I2C0_SDA, UART1_TX    roles separated by commas (or spaces)
//	5:                       pin declared with no roles
//	6: -                     explicit "no roles" marker
//
// Comment lines directly above a pin entry become its doc lines and
// are carried into the generated source. Role tokens are
// case-insensitive and validated against the vocabulary in the pins
// package; a pin may hold at most one role per peripheral class.
//
// Example layout:
//
//	// Example development board.
//	Example Board (rev1)
//	#example
//
//	// Status LED, PWM capable.
//	25:
//	0: UART0_TX, I2C0_SDA
//	1: UART0_RX, I2C0_SCL
//
// # Usage
//
// Parse a layout file from disk:
//
//	board, err := layout.Parse("layouts/pico.layout")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Name: %s\n", board.Name)
//	fmt.Printf("Tag:  %s\n", board.Tag)
//	for _, p := range board.Pins {
//	    fmt.Printf("Pin %d: %v\n", p.ID, p.Roles)
//	}
//
// Parse from an io.Reader:
//
//	data := strings.NewReader(layoutContent)
//	board, err := layout.ParseReader(data)
//
// # Error Handling
//
// Parse returns detailed errors for invalid files:
//   - Missing or malformed name and tag entries
//   - Malformed pin lines and pin ids
//   - Duplicate pin ids
//   - Unknown role tokens and per-class role conflicts
//   - Files with no pin entries
//
// Role validation failures carry the typed errors of the pins package
// and can be inspected with errors.As.
package layout
