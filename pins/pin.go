package pins

import "strings"

// Pin identifier range constants.
const (
	// NoPin marks an optional pin argument as absent
	NoPin PinID = 0xFF

	// MaxPinID is the highest pin number a layout may declare.
	// The value above it is reserved for NoPin.
	MaxPinID = 0xFE
)

// PinID identifies a single physical pin declared by a board layout.
type PinID uint8

// NewPinID validates a raw pin number and converts it to a PinID.
// Valid pin numbers are 0 to MaxPinID inclusive.
func NewPinID(id int) (PinID, error) {
	if id < 0 || id > MaxPinID {
		return 0, &PinRangeError{ID: id}
	}
	return PinID(id), nil
}

// Pin describes a single declared pin.
type Pin struct {
	// ID is the pin number declared in the layout
	ID PinID

	// Doc holds the comment lines preceding the pin entry (may be empty)
	Doc []string

	// Roles holds the validated, normalized role tokens
	Roles []Role
}

// NewPin validates raw role tokens and builds a Pin. Tokens are
// normalized to upper case and classified against the known role
// vocabulary; empty tokens are skipped. A pin may hold at most one
// role per peripheral class.
//
// The doc slice is copied, so callers may reuse their buffer.
//
// Example:
//
//	p, err := pins.NewPin(4, nil, []string{"i2c0_sda", "UART1_TX"})
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewPin(id int, doc []string, tokens []string) (Pin, error) {
	pid, err := NewPinID(id)
	if err != nil {
		return Pin{}, err
	}

	p := Pin{ID: pid}
	if len(doc) > 0 {
		p.Doc = append(p.Doc, doc...)
	}

	var counts [3]int
	for _, tok := range tokens {
		if len(tok) == 0 {
			continue
		}
		r := Role(strings.ToUpper(tok))
		info, ok := roleIndex[r]
		if !ok {
			return Pin{}, &InvalidRoleError{Pin: id, Role: string(r)}
		}
		p.Roles = append(p.Roles, r)
		counts[info.class]++
	}

	for class, n := range counts {
		if n > 1 {
			return Pin{}, &RoleConflictError{Pin: id, Class: Class(class)}
		}
	}

	return p, nil
}

// HasRole reports whether the pin was declared with the given role.
func (p Pin) HasRole(r Role) bool {
	for _, v := range p.Roles {
		if v == r {
			return true
		}
	}
	return false
}
