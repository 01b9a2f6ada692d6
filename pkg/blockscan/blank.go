package blockscan

// MatchBlankLine reports whether view starts with a blank line: only spaces,
// tabs, and carriage returns up to a newline or end of input.
//
// The newline, when present, is consumed. A whitespace-only tail with no
// newline is still blank. Empty input never matches.
func MatchBlankLine(view []byte) (Match, bool) {
	for pos, ch := range view {
		switch ch {
		case space, tab, carriageReturn:
		case newline:
			return matched(view, pos+1), true
		default:
			return Match{}, false
		}
	}

	if len(view) == 0 {
		return Match{}, false
	}

	return matched(view, len(view)), true
}
