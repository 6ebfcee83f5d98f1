package generator

import (
	"bytes"
	"go/format"
	"strings"
	"testing"

	"github.com/moffa90/go-pinmap/layout"
)

func mustBoard(t *testing.T, content string) *layout.Board {
	t.Helper()
	board, err := layout.ParseReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("failed to parse layout: %v", err)
	}
	return board
}

func TestBuildTag(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{tag: "pico", want: "pico"},
		{tag: "tiny2040", want: "tiny2040"},
		{tag: "abc-1", want: "abc_1"},
		{tag: "a-b-c", want: "a_b_c"},
	}

	for _, tt := range tests {
		if got := buildTag(tt.tag); got != tt.want {
			t.Errorf("buildTag(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestRenderBoardFormatted(t *testing.T) {
	src, err := renderBoard("boards", mustBoard(t, picoLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	formatted, err := format.Source(src)
	if err != nil {
		t.Fatalf("generated source does not format: %v", err)
	}
	if !bytes.Equal(src, formatted) {
		t.Error("generated source is not gofmt formatted")
	}
}

func TestRenderBoardContents(t *testing.T) {
	src, err := renderBoard("boards", mustBoard(t, picoLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by pinmapgen. DO NOT EDIT.",
		"//go:build pico",
		"package boards",
		`const Board = "pico"`,
		`const BoardName = "Raspberry Pi Pico"`,
		"// Onboard LED",
		"Pin25 PinID = 25",
		"case Pin1:",
		"return PWMChannel{Slice: 0, Output: PWMOutputB}",
		"return pwmChannelFor(uint8(pin))",
		"bus = I2C0",
		"case bus == I2C0 && scl == Pin5:",
		"case bus == SPI0 && sck == Pin18:",
		"if rx == NoPin && cs == NoPin {",
		"if cts == NoPin && rts == NoPin {",
		"case rx == NoPin:",
		"return 0, false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("board file should contain %q", want)
		}
	}

	// Board files must not import anything.
	if strings.Contains(out, "import") {
		t.Error("board file should not contain imports")
	}
}

func TestRenderBoardUnknownPinsFallThrough(t *testing.T) {
	// A board with a single pin still resolves PWM for every other
	// pin through the default arm.
	src, err := renderBoard("boards", mustBoard(t, "Tiny\n\n#tiny\n\n7: I2C0_SDA\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(src)

	if !strings.Contains(out, "case Pin7:") {
		t.Error("board file should declare a case for pin 7")
	}
	if !strings.Contains(out, "default:\n\t\treturn pwmChannelFor(uint8(pin))") {
		t.Error("PWM switch should fall back to pwmChannelFor")
	}
}

func TestRenderBoardMissingClassShortCircuits(t *testing.T) {
	// Pin 7 declares SDA but no pin declares SCL, so no resolver on
	// this board can ever report a bus.
	src, err := renderBoard("boards", mustBoard(t, "Tiny\n\n#tiny\n\n7: I2C0_SDA\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// no complete I2C pinout declared",
		"// no complete SPI pinout declared",
		"// no complete UART pinout declared",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("board file should contain %q", want)
		}
	}
	if strings.Contains(out, "var bus") {
		t.Error("short circuited resolvers should not declare a bus variable")
	}
}

func TestRenderAggregatorFormatted(t *testing.T) {
	boards := []*layout.Board{mustBoard(t, picoLayout)}
	src, err := renderAggregator("boards", boards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	formatted, err := format.Source(src)
	if err != nil {
		t.Fatalf("generated source does not format: %v", err)
	}
	if !bytes.Equal(src, formatted) {
		t.Error("generated source is not gofmt formatted")
	}
}

func TestRenderAggregatorContents(t *testing.T) {
	boards := []*layout.Board{
		mustBoard(t, "Zebra Board\n\n#zebra\n\n0: UART0_TX\n"),
		mustBoard(t, "Apple Board\n\n#apple\n\n0: UART0_TX\n"),
	}
	src, err := renderAggregator("boards", boards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by pinmapgen. DO NOT EDIT.",
		"package boards",
		"type PinID uint8",
		"const NoPin PinID = 0xFF",
		"type PWMChannel struct",
		"func pwmChannelFor(id uint8) PWMChannel",
		"var Boards = map[string]string{",
		`"apple": "Apple Board"`,
		`"zebra": "Zebra Board"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("aggregator should contain %q", want)
		}
	}

	// Entries are ordered by tag regardless of input order.
	if strings.Index(out, `"apple"`) > strings.Index(out, `"zebra"`) {
		t.Error("aggregator entries should be sorted by tag")
	}

	if strings.Contains(out, "//go:build") {
		t.Error("aggregator should not carry a build constraint")
	}
	if strings.Contains(out, "import") {
		t.Error("aggregator should not contain imports")
	}
}
