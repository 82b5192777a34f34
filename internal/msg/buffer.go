package msg

import (
	"slices"

	"github.com/muurk/fyi/internal/ansi"
	"github.com/muurk/fyi/internal/width"
)

// Region names one contiguous byte range of a rendered message.
type Region int

const (
	RegionIndent Region = iota
	RegionTimestamp
	RegionPrefixOpen
	RegionPrefix
	RegionPrefixClose
	RegionSeparator
	RegionBody
	RegionSuffix
	RegionNewline

	regionCount
)

var regionNames = [regionCount]string{
	"indent", "timestamp", "prefix-open", "prefix", "prefix-close",
	"separator", "body", "suffix", "newline",
}

func (r Region) String() string {
	if r >= 0 && r < regionCount {
		return regionNames[r]
	}
	return "invalid"
}

type extent struct {
	start, length int
}

// Buffer is a rendered message. The bytes are stored contiguously and every
// region's (start, length) is tracked so a single region can be replaced in
// place without rendering the whole message again.
type Buffer struct {
	buf []byte
	toc [regionCount]extent
}

func newBuffer(parts *[regionCount]string) *Buffer {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	b := &Buffer{buf: make([]byte, 0, n)}
	for i, p := range parts {
		b.toc[i] = extent{start: len(b.buf), length: len(p)}
		b.buf = append(b.buf, p...)
	}
	return b
}

// Replace swaps the content of region r, shifting every later region by the
// length difference. Only the bytes after the region move.
func (b *Buffer) Replace(r Region, content string) {
	if r < 0 || r >= regionCount {
		return
	}
	ext := b.toc[r]
	end := ext.start + ext.length
	delta := len(content) - ext.length

	switch {
	case delta > 0:
		old := len(b.buf)
		b.buf = slices.Grow(b.buf, delta)[:old+delta]
		copy(b.buf[end+delta:], b.buf[end:old])
	case delta < 0:
		copy(b.buf[end+delta:], b.buf[end:])
		b.buf = b.buf[:len(b.buf)+delta]
	}
	copy(b.buf[ext.start:], content)

	b.toc[r].length = len(content)
	for i := r + 1; i < regionCount; i++ {
		b.toc[i].start += delta
	}
}

// SetBody replaces the body region.
func (b *Buffer) SetBody(body string) {
	b.Replace(RegionBody, body)
}

// Region returns a copy of the bytes currently held by region r.
func (b *Buffer) Region(r Region) string {
	if r < 0 || r >= regionCount {
		return ""
	}
	ext := b.toc[r]
	return string(b.buf[ext.start : ext.start+ext.length])
}

// Bytes returns the rendered message. The slice aliases the buffer and is
// only valid until the next Replace.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) String() string {
	return string(b.buf)
}

// Len returns the byte length of the rendered message.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Width returns the display width of the rendered message.
func (b *Buffer) Width() int {
	return width.Width(string(b.buf))
}

// Fitted returns the message with the body cut so that the whole line fits
// in cols columns. Nothing but the body is ever trimmed; when even an empty
// body would not fit, Fitted returns nil. If the kept part of a trimmed body
// still contains escape sequences a reset is added after it.
func (b *Buffer) Fitted(cols int) []byte {
	full := string(b.buf)
	total := width.Width(full)
	if total <= cols {
		return slices.Clone(b.buf)
	}

	body := b.toc[RegionBody]
	bodyText := full[body.start : body.start+body.length]
	avail := cols - (total - width.Width(bodyText))
	if avail < 0 {
		return nil
	}

	kept := width.Truncate(bodyText, avail)
	out := make([]byte, 0, len(b.buf))
	out = append(out, b.buf[:body.start]...)
	out = append(out, kept...)
	if width.HasANSI(kept) {
		out = append(out, ansi.Reset...)
	}
	return append(out, b.buf[body.start+body.length:]...)
}
