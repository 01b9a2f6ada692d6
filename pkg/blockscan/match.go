package blockscan

import "fmt"

// Byte constants recognized by the matchers.
const (
	space          = ' '
	tab            = '\t'
	newline        = '\n'
	carriageReturn = '\r'
)

// maxPrefixSpaces is the indentation a rule or fence may carry before it
// becomes an indented code block.
const maxPrefixSpaces = 3

// minRunLength is the minimum number of item or fence characters.
const minRunLength = 3

// Match describes a successful recognition at the start of a view.
type Match struct {
	// Consumed is the number of bytes recognized, including any skipped prefix.
	Consumed int

	// Remainder is input[Consumed:]. It shares the input's backing array.
	Remainder []byte
}

// FenceChar is the delimiter byte of a code fence.
type FenceChar byte

// Fence characters.
const (
	Backtick FenceChar = '`'
	Tilde    FenceChar = '~'
)

// String returns the fence character as a one-byte string.
func (c FenceChar) String() string {
	return string(rune(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c FenceChar) MarshalText() ([]byte, error) {
	return []byte{byte(c)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *FenceChar) UnmarshalText(text []byte) error {
	if len(text) != 1 || (FenceChar(text[0]) != Backtick && FenceChar(text[0]) != Tilde) {
		return fmt.Errorf("invalid fence character %q", text)
	}
	*c = FenceChar(text[0])
	return nil
}

// FenceMatch is a Match for a code-fence opener.
type FenceMatch struct {
	Match

	// Length is the number of fence characters in the run.
	Length int

	// Char is the fence character used.
	Char FenceChar
}

// matched builds a Match that consumed n bytes of input.
func matched(input []byte, n int) Match {
	return Match{Consumed: n, Remainder: input[n:]}
}
