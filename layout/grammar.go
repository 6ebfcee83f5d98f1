package layout

// ValidTag reports whether v satisfies the strict identifier grammar
// used for board tags: ASCII letters, digits, underscore and hyphen,
// at least two characters, not starting with a digit, underscore or
// hyphen.
func ValidTag(v string) bool {
	if len(v) <= 1 {
		return false
	}
	if c := v[0]; c >= '0' && c <= '9' || c == '_' || c == '-' {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !isStrictChar(v[i]) {
			return false
		}
	}
	return true
}

// ValidName reports whether v satisfies the display name grammar used
// for board names: the strict identifier characters plus space,
// brackets, braces, parentheses, pipe and at sign.
func ValidName(v string) bool {
	if len(v) <= 1 {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if isStrictChar(c) {
			continue
		}
		switch c {
		case ' ', '[', ']', '|', '{', '}', '(', ')', '@':
		default:
			return false
		}
	}
	return true
}

func isStrictChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}
