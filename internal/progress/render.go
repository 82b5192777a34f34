package progress

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/muurk/fyi/internal/ansi"
	"github.com/muurk/fyi/internal/width"
)

const (
	// MinBarCells and MaxBarCells bound the number of bar glyphs.
	MinBarCells = 10
	MaxBarCells = 40

	// etaThreshold is how long the bar must run before an ETA is shown.
	etaThreshold = 250 * time.Millisecond

	gap         = "  "
	unknownETA  = "--:--:--"
	ellipsis    = "…"
	doneGlyph   = "#"
	todoGlyph   = "-"
	labelJoiner = ", "
)

var (
	elapsedStyle = ansi.Style{Attrs: ansi.Dim}
	doneStyle    = ansi.Fg(199).With(ansi.Bold)
	todoStyle    = ansi.Fg(4)
	countStyle   = ansi.Style{Attrs: ansi.Bold}
	pctStyle     = ansi.Fg(15).With(ansi.Bold)
	etaStyle     = ansi.Style{Attrs: ansi.Dim}
	labelStyle   = ansi.Fg(6)
)

// ratio returns completed/total in [0, 1].
func ratio(s Snapshot) float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

func eta(s Snapshot, elapsed time.Duration) string {
	if elapsed < etaThreshold || s.Completed == 0 {
		return unknownETA
	}
	if s.Completed >= s.Total {
		return Clock(0)
	}
	per := elapsed / time.Duration(s.Completed)
	return Clock(per * time.Duration(s.Total-s.Completed))
}

// renderLine builds one progress line for a terminal cols wide. The line is
// kept at least one column short of the width so the cursor never wraps.
//
// Layout: [elapsed]  [bar]  done/total  pct%  eta HH:MM:SS  labels
//
// The bar is dropped first when space runs out, then labels are elided.
// If the fixed fields alone do not fit, the whole line is truncated.
func renderLine(s Snapshot, now time.Time, cols int, mode ansi.Mode, maxLabels int) string {
	usable := cols - 1
	if usable <= 0 {
		return ""
	}

	elapsed := s.Elapsed(now)
	fields := []ansi.Span{
		ansi.Styled(elapsedStyle, "["+Clock(elapsed)+"]"),
		{Text: gap},
		ansi.Styled(countStyle, humanize.Comma(int64(s.Completed))),
		{Text: "/" + humanize.Comma(int64(s.Total))},
		{Text: gap},
		ansi.Styled(pctStyle, strconv.FormatFloat(ratio(s)*100, 'f', 2, 64)+"%"),
		{Text: gap},
		ansi.Styled(etaStyle, "eta "+eta(s, elapsed)),
	}

	fixed := 0
	for _, f := range fields {
		fixed += width.Width(f.Text)
	}

	if fixed > usable {
		line := ansi.Join(mode, fields...)
		out := width.Truncate(line, usable)
		if width.HasANSI(out) {
			out += ansi.Reset
		}
		return out
	}

	var sb strings.Builder
	sb.WriteString(fields[0].Render(mode))
	sb.WriteString(fields[1].Text)

	room := usable - fixed
	cells := min(max(usable/4, MinBarCells), MaxBarCells)
	if cells+2+len(gap) <= room {
		filled := int(ratio(s) * float64(cells))
		sb.WriteString("[")
		sb.WriteString(ansi.Styled(doneStyle, strings.Repeat(doneGlyph, filled)).Render(mode))
		sb.WriteString(ansi.Styled(todoStyle, strings.Repeat(todoGlyph, cells-filled)).Render(mode))
		sb.WriteString("]")
		sb.WriteString(gap)
		room -= cells + 2 + len(gap)
	}

	for _, f := range fields[2:] {
		sb.WriteString(f.Render(mode))
	}

	if len(s.Labels) > 0 && room > len(gap) {
		if text := fitLabels(s.Labels, room-len(gap), maxLabels); text != "" {
			sb.WriteString(gap)
			sb.WriteString(ansi.Styled(labelStyle, text).Render(mode))
		}
	}
	return sb.String()
}

func more(n int) string {
	return "+" + humanize.Comma(int64(n)) + " more"
}

// fitLabels shows as many of labels (at most maxLabels) as fit in cols,
// summarising the rest as "+K more". When not even one label fits whole,
// the first one is cut short with an ellipsis.
func fitLabels(labels []string, cols, maxLabels int) string {
	clean := make([]string, len(labels))
	for i, l := range labels {
		clean[i] = width.Strip(l)
	}

	for k := min(maxLabels, len(clean)); k >= 1; k-- {
		text := strings.Join(clean[:k], labelJoiner)
		if hidden := len(clean) - k; hidden > 0 {
			text += " " + more(hidden)
		}
		if width.Width(text) <= cols {
			return text
		}
	}

	if maxLabels >= 1 {
		tail := ""
		if len(clean) > 1 {
			tail = " " + more(len(clean)-1)
		}
		if keep := cols - width.Width(tail) - width.Width(ellipsis); keep >= 1 {
			if cut := width.Truncate(clean[0], keep); cut != "" {
				return cut + ellipsis + tail
			}
		}
	}

	if all := more(len(clean)); width.Width(all) <= cols {
		return all
	}
	return ""
}
