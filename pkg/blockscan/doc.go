// Package blockscan classifies the start of the unconsumed input of a Markdown
// document. It recognizes horizontal rules, blank lines, and code-fence openers,
// and reports how many bytes each recognition consumed.
//
// Every function takes a view of the caller's buffer ([]byte) and never writes
// to it. Remainders are sub-slices of the input, so advancing a cursor costs no
// allocation. All functions are pure and safe for concurrent use.
package blockscan
