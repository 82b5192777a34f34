// Package msg builds and prints fyi status lines.
//
// A Message is an immutable value describing one line: a Kind (a built-in
// prefix such as Error or Success, or a CustomKind with a caller-chosen
// label and color), a body, an optional indent level, timestamp and suffix,
// and the stream it belongs on.
//
//	m := msg.Error("Disk full").WithIndent(1).WithTimestamp(true)
//	err := msg.NewPrinter(nil, nil).Print(m)
//
// # Rendering
//
// Render lays a message out into a Buffer. The buffer is a single byte
// slice split into fixed regions:
//
//	[indent][timestamp][prefix-open][prefix][prefix-close][separator][body][suffix][newline]
//
// Each region's offset and length are tracked, so Replace (and SetBody) can
// swap one region in place and only move the bytes that follow it. This is
// what lets a caller re-print the same line with a new body without
// building it from scratch.
//
// An empty custom label and KindNone both leave the prefix regions and the
// separator empty. In ansi.ModePlain no escape sequences are written at all.
//
// # Printing
//
// Printer writes each message with a single Write call to its stream and
// returns a *PrintError of type ErrTypeWriteFailure when the stream rejects
// it. Prompt turns a message into a [y/N] question and loops until it gets
// a usable answer.
package msg
