package dialog

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/confirm/internal/domain/entity"
)

// Composite draws box over base with its top-left cell at (x, y). Cells of
// base outside the box keep their styling; base grows with blank lines when
// the box reaches below it.
func Composite(base, box string, x, y int) string {
	x = max(x, 0)
	y = max(y, 0)

	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	for len(baseLines) < y+len(boxLines) {
		baseLines = append(baseLines, "")
	}

	for i, line := range boxLines {
		row := y + i
		bg := baseLines[row]
		if w := ansi.StringWidth(bg); w < x {
			bg += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(bg, x, "")
		right := ansi.TruncateLeft(bg, x+ansi.StringWidth(line), "")
		baseLines[row] = left + ansi.ResetStyle + line + ansi.ResetStyle + right
	}
	return strings.Join(baseLines, "\n")
}

// Center returns the origin that centers a w×h box in a vw×vh viewport.
func Center(w, h, vw, vh int) (x, y int) {
	return max((vw-w)/2, 0), max((vh-h)/2, 0)
}

// PlaceBelow returns the origin of a w×h box attached under anchor. The box
// flips above the anchor when it does not fit below, and is clamped into the
// viewport either way.
func PlaceBelow(anchor entity.Rect, w, h, vw, vh int) (x, y int) {
	x = anchor.X
	y = anchor.Bottom()

	if vh > 0 && y+h > vh {
		if above := anchor.Y - h; above >= 0 {
			y = above
		} else {
			y = vh - h
		}
	}
	if vw > 0 && x+w > vw {
		x = vw - w
	}
	return max(x, 0), max(y, 0)
}

// viewportOf measures a rendered frame.
func viewportOf(view string) (width, height int) {
	lines := strings.Split(view, "\n")
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	return width, len(lines)
}
