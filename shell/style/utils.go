package style

import "github.com/mattn/go-runewidth"

// TruncateEnd truncates a string to maxCells terminal cells, keeping the
// start portion. Returns the truncated string and whether truncation
// occurred. Wide runes count as two cells.
func TruncateEnd(s string, maxCells int) (string, bool) {
	if runewidth.StringWidth(s) <= maxCells {
		return s, false
	}
	if maxCells <= 3 {
		return runewidth.Truncate(s, maxCells, ""), true
	}
	return runewidth.Truncate(s, maxCells, "..."), true
}

// TruncateStart truncates a string from the start, keeping the end portion.
// Useful for file paths where the end is most relevant.
func TruncateStart(s string, maxCells int) (string, bool) {
	if runewidth.StringWidth(s) <= maxCells {
		return s, false
	}
	if maxCells <= 3 {
		return runewidth.TruncateLeft(s, runewidth.StringWidth(s)-maxCells, ""), true
	}
	return runewidth.TruncateLeft(s, runewidth.StringWidth(s)-maxCells+3, "..."), true
}
