package layout

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/moffa90/go-pinmap/pins"
)

// Constants for layout file parsing.
const (
	// MinLines is the minimum number of lines a layout file must contain
	MinLines = 5

	// MinTagLength is the minimum length of a board tag
	MinTagLength = 3
)

// Parse parses a board layout file from the given file path.
// Returns the complete board structure or an error if parsing fails.
//
// Example:
//
//	board, err := layout.Parse("layouts/pico.layout")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s [%s]: %d pins\n", board.Name, board.Tag, len(board.Pins))
func Parse(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a board layout from any io.Reader.
// This is useful for testing and reading from non-file sources.
//
// Example:
//
//	data := strings.NewReader(layoutContent)
//	board, err := layout.ParseReader(data)
func ParseReader(r io.Reader) (*Board, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	if len(lines) < MinLines {
		return nil, fmt.Errorf("layout too short: got %d lines, minimum is %d", len(lines), MinLines)
	}

	name, next, err := scanName(lines)
	if err != nil {
		return nil, err
	}
	if !ValidName(name) {
		return nil, fmt.Errorf("name value %q is not valid", name)
	}

	tag, next, err := scanTag(lines, next)
	if err != nil {
		return nil, err
	}
	if !ValidTag(tag) {
		return nil, fmt.Errorf("tag value %q is not valid", tag)
	}

	pp, err := scanPins(lines, next)
	if err != nil {
		return nil, err
	}
	if len(pp) == 0 {
		return nil, fmt.Errorf("no pin entries found")
	}
	sort.Slice(pp, func(i, j int) bool { return pp[i].ID < pp[j].ID })

	return &Board{
		Name: name,
		Tag:  strings.ToLower(tag),
		Pins: pp,
	}, nil
}

// scanName finds the board name: the first line that is non-blank,
// not a comment, does not start with '#' and contains no ':'. Returns
// the name and the index of the line after it.
func scanName(lines []string) (string, int, error) {
	for i, l := range lines {
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		if strings.HasPrefix(l, "#") || strings.Contains(l, ":") {
			break
		}
		return l, i + 1, nil
	}
	return "", 0, fmt.Errorf("name entry was not found")
}

// scanTag finds the board tag after the name: the first line starting
// with '#' whose value is at least MinTagLength characters. The search
// aborts at the first pin entry; other lines are skipped. Returns the
// tag value and the index of the line after it.
func scanTag(lines []string, start int) (string, int, error) {
	for i := start; i < len(lines); i++ {
		l := lines[i]
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		if strings.HasPrefix(l, "#") && len(l) > MinTagLength {
			return l[1:], i + 1, nil
		}
		if strings.Contains(l, ":") {
			break
		}
	}
	return "", 0, fmt.Errorf("#<tag> entry was not found")
}

// scanPins parses the pin entry region. Comment lines accumulate into
// a doc buffer attached to the next pin entry; the buffer clears after
// every pin entry. Duplicate ids are rejected across all pin entries,
// including entries declared with no roles.
func scanPins(lines []string, start int) ([]pins.Pin, error) {
	var (
		doc  []string
		out  []pins.Pin
		seen = make(map[int]bool)
	)
	for i := start; i < len(lines); i++ {
		l := lines[i]
		if l == "" {
			continue
		}
		if strings.HasPrefix(l, "//") {
			doc = append(doc, stripComment(l))
			continue
		}

		sep := strings.Index(l, ":")
		if sep <= 0 {
			return nil, fmt.Errorf("invalid pin line entry %q", l)
		}
		prefix := l[:sep]
		id, err := strconv.Atoi(strings.TrimSpace(prefix))
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid pin ID %q", prefix)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate pin ID \"%d\"", id)
		}
		seen[id] = true

		rest := strings.TrimSpace(l[sep+1:])
		var tokens []string
		switch {
		case rest == "" || rest == "-":
			// declared with no roles
		case strings.Contains(rest, ","):
			tokens = strings.Split(rest, ",")
		default:
			tokens = strings.Split(rest, " ")
		}
		for j, t := range tokens {
			tokens[j] = strings.TrimSpace(t)
		}

		p, err := pins.NewPin(id, doc, tokens)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		doc = doc[:0]
	}
	return out, nil
}

// stripComment removes the leading comment marker and padding from a
// doc comment line: every leading '/' and ' ' byte is dropped.
func stripComment(l string) string {
	for i := 0; i < len(l); i++ {
		if l[i] == '/' || l[i] == ' ' {
			continue
		}
		return strings.TrimSpace(l[i:])
	}
	return strings.TrimSpace(l)
}
