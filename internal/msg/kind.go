package msg

import (
	"strings"

	"github.com/muurk/fyi/internal/ansi"
)

// Kind selects a message prefix. It is either a BuiltIn or a CustomKind.
type Kind interface {
	isKind()
	String() string
}

// BuiltIn is one of the fixed prefixes.
type BuiltIn uint8

const (
	// KindNone prints the body with no prefix at all.
	KindNone BuiltIn = iota
	KindConfirm
	KindCrunched
	KindDebug
	KindDone
	KindError
	KindInfo
	KindNotice
	KindSuccess
	KindTask
	KindWarning
)

type builtinPrefix struct {
	name  string
	label string
	color uint8
}

var builtins = [...]builtinPrefix{
	KindNone:     {"none", "", 0},
	KindConfirm:  {"confirm", "Confirm", 208},
	KindCrunched: {"crunched", "Crunched", 10},
	KindDebug:    {"debug", "Debug", 14},
	KindDone:     {"done", "Done", 10},
	KindError:    {"error", "Error", 9},
	KindInfo:     {"info", "Info", 13},
	KindNotice:   {"notice", "Notice", 13},
	KindSuccess:  {"success", "Success", 10},
	KindTask:     {"task", "Task", 199},
	KindWarning:  {"warning", "Warning", 11},
}

func (BuiltIn) isKind() {}

// String returns the lower-case kind name, as accepted by ParseKind.
func (k BuiltIn) String() string {
	if int(k) < len(builtins) {
		return builtins[k].name
	}
	return "none"
}

// Label returns the prefix text without the trailing colon.
func (k BuiltIn) Label() string {
	if int(k) < len(builtins) {
		return builtins[k].label
	}
	return ""
}

// Color returns the prefix palette color.
func (k BuiltIn) Color() uint8 {
	if int(k) < len(builtins) {
		return builtins[k].color
	}
	return 0
}

// BuiltIns lists every built-in kind with a prefix, in display order.
func BuiltIns() []BuiltIn {
	return []BuiltIn{
		KindConfirm, KindCrunched, KindDebug, KindDone, KindError,
		KindInfo, KindNotice, KindSuccess, KindTask, KindWarning,
	}
}

// CustomKind is a caller-defined prefix. An empty label suppresses the
// prefix entirely.
type CustomKind struct {
	Label string
	Color uint8
}

func (CustomKind) isKind() {}

func (k CustomKind) String() string {
	return k.Label
}

// NewCustom validates color and returns a custom kind. Colors outside 1-255
// are rejected, never clamped.
func NewCustom(label string, color int) (CustomKind, error) {
	if color < 1 || color > 255 {
		return CustomKind{}, NewInvalidColorError(color)
	}
	return CustomKind{Label: label, Color: uint8(color)}, nil
}

// ParseKind maps a kind name to its built-in value. Matching ignores case;
// "prompt" is accepted for KindConfirm.
func ParseKind(name string) (BuiltIn, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "prompt" {
		return KindConfirm, nil
	}
	for i, b := range builtins {
		if b.name == name {
			return BuiltIn(i), nil
		}
	}
	return KindNone, NewUnknownKindError(name)
}

// prefixOf resolves the label and style a kind renders with.
func prefixOf(k Kind) (string, ansi.Style) {
	switch k := k.(type) {
	case BuiltIn:
		if k == KindNone {
			return "", ansi.Style{}
		}
		return k.Label(), ansi.Fg(k.Color()).With(ansi.Bold)
	case CustomKind:
		return k.Label, ansi.Fg256(k.Color).With(ansi.Bold)
	default:
		return "", ansi.Style{}
	}
}
