package blockscan

// MatchHorizontalRule reports whether view starts with a horizontal rule.
//
// A rule is up to three spaces followed by at least three '*', '-' or '_'
// characters of the same kind, optionally separated by spaces, and ended by a
// newline or end of input. Any other byte on the line fails the whole line,
// even after three items have been seen. The consumed newline is included in
// the match.
func MatchHorizontalRule(view []byte) (Match, bool) {
	rest := SkipPrefix(view)
	if len(rest) == 0 || !isRuleItem(rest[0]) {
		return Match{}, false
	}

	item := rest[0]
	pos := len(view) - len(rest)
	count := 0

scan:
	for pos < len(view) {
		switch view[pos] {
		case item:
			count++
		case space:
		case newline:
			pos++
			break scan
		default:
			return Match{}, false
		}
		pos++
	}

	if count < minRunLength {
		return Match{}, false
	}

	return matched(view, pos), true
}

func isRuleItem(ch byte) bool {
	return ch == '*' || ch == '-' || ch == '_'
}
