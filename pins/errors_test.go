package pins

import (
	"strings"
	"testing"
)

func TestPinRangeError(t *testing.T) {
	err := &PinRangeError{ID: 300}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "pin ID 300") {
		t.Errorf("error message should contain pin number, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "out of range") {
		t.Errorf("error message should contain 'out of range', got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "0-254") {
		t.Errorf("error message should contain range, got: %s", errMsg)
	}
}

func TestInvalidRoleError(t *testing.T) {
	err := &InvalidRoleError{Pin: 3, Role: "BOGUS"}

	errMsg := err.Error()

	if !strings.Contains(errMsg, `pin "3"`) {
		t.Errorf("error message should contain pin number, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, `invalid role "BOGUS"`) {
		t.Errorf("error message should contain role token, got: %s", errMsg)
	}
}

func TestRoleConflictError(t *testing.T) {
	tests := []struct {
		name    string
		class   Class
		wantMsg string
	}{
		{name: "i2c", class: ClassI2C, wantMsg: "single I2C role"},
		{name: "spi", class: ClassSPI, wantMsg: "single SPI role"},
		{name: "uart", class: ClassUART, wantMsg: "single UART role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &RoleConflictError{Pin: 7, Class: tt.class}
			errMsg := err.Error()

			if !strings.Contains(errMsg, `pin "7"`) {
				t.Errorf("error message should contain pin number, got: %s", errMsg)
			}
			if !strings.Contains(errMsg, tt.wantMsg) {
				t.Errorf("error message should contain %q, got: %s", tt.wantMsg, errMsg)
			}
		})
	}
}

func TestErrorTypes(t *testing.T) {
	// Test that all error types implement error interface
	var _ error = &PinRangeError{}
	var _ error = &InvalidRoleError{}
	var _ error = &RoleConflictError{}
}
