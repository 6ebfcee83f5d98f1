package layout

import "github.com/moffa90/go-pinmap/pins"

// Board represents a complete parsed board layout file.
type Board struct {
	// Name is the display name declared at the top of the file
	Name string

	// Tag is the board's tag, normalized to lower case
	Tag string

	// Pins contains all declared pins, sorted ascending by ID
	Pins []pins.Pin
}
