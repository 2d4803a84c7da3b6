package emulator

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width of r: 2 for wide characters (CJK,
// emoji), 1 for normal, 0 for combining marks and control characters.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}
