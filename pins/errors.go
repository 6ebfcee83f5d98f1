package pins

import "fmt"

// PinRangeError indicates a pin number outside the valid range.
type PinRangeError struct {
	// ID is the rejected pin number
	ID int
}

func (e *PinRangeError) Error() string {
	return fmt.Sprintf("pin ID %d is out of range: valid range is 0-%d", e.ID, MaxPinID)
}

// InvalidRoleError indicates a role token outside the known vocabulary.
type InvalidRoleError struct {
	// Pin is the declared pin number the token was attached to
	Pin int

	// Role is the normalized token that failed classification
	Role string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("pin \"%d\" has an invalid role %q", e.Pin, e.Role)
}

// RoleConflictError indicates more than one role of the same
// peripheral class on a single pin.
type RoleConflictError struct {
	// Pin is the declared pin number
	Pin int

	// Class is the peripheral class declared more than once
	Class Class
}

func (e *RoleConflictError) Error() string {
	return fmt.Sprintf("pin \"%d\" can only have a single %s role", e.Pin, e.Class)
}
