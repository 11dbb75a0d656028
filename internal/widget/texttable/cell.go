package texttable

import "github.com/mattn/go-runewidth"

// ellipsis marks a cell cut short to fit its column.
const ellipsis = "…"

// fit truncates or pads s to exactly width display cells.
func fit(s string, width int, alignRight bool) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, ellipsis)
	}
	if alignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// clip truncates s to at most width display cells without padding.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, ellipsis)
	}
	return s
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
