// Package width estimates how many terminal columns a string occupies.
//
// Measurement walks the string one unit at a time. A unit is an escape
// sequence (zero columns), a control character (zero columns), an invalid
// UTF-8 byte (one column) or a grapheme cluster, whose width comes from
// github.com/rivo/uniseg. Combining marks therefore never count on their
// own, and CJK or emoji-presentation clusters take two columns.
//
// Truncation only ever cuts between units, so a truncated string never ends
// in the middle of a code point, a cluster or an escape sequence.
package width
