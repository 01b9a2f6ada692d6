package blockscan

// MatchCodeFence reports whether view starts with a code-fence opener: up to
// three spaces followed by a contiguous run of at least three backticks or
// three tildes.
//
// Only the delimiter is consumed. The info string, trailing content, and the
// newline stay in the remainder for the caller.
func MatchCodeFence(view []byte) (FenceMatch, bool) {
	rest := SkipPrefix(view)
	if len(rest) == 0 {
		return FenceMatch{}, false
	}

	char := FenceChar(rest[0])
	if char != Backtick && char != Tilde {
		return FenceMatch{}, false
	}

	length := 0
	for length < len(rest) && FenceChar(rest[length]) == char {
		length++
	}

	if length < minRunLength {
		return FenceMatch{}, false
	}

	consumed := len(view) - len(rest) + length
	return FenceMatch{
		Match:  matched(view, consumed),
		Length: length,
		Char:   char,
	}, true
}
