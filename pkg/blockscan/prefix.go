package blockscan

// SkipPrefix drops up to three leading spaces from view.
//
// Tabs are left in place. A tab here is as wide as four spaces, which already
// disqualifies the line, and the matcher that runs next rejects it.
func SkipPrefix(view []byte) []byte {
	n := 0
	for n < maxPrefixSpaces && n < len(view) && view[n] == space {
		n++
	}
	return view[n:]
}
