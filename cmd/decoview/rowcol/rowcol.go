// Package rowcol converts between the row/column positions used by the
// textarea component and the linear integer offsets the decoration
// package indexes against.
package rowcol

import "strings"

// Offset converts a (row, col) position in lines into a linear offset,
// counting one position per rune of every line plus one for each newline
// joining lines. Out-of-range rows/cols clamp to the nearest valid value.
func Offset(lines []string, row, col int) int {
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}
	if row < 0 {
		return 0
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len([]rune(lines[i])) + 1
	}

	line := []rune(lines[row])
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	return offset + col
}

// Position converts a linear offset back into a (row, col) position
// against lines. An offset beyond the end of the text clamps to the
// last position.
func Position(lines []string, offset int) (row, col int) {
	if offset < 0 {
		offset = 0
	}
	for i, line := range lines {
		length := len([]rune(line))
		if offset <= length {
			return i, offset
		}
		offset -= length + 1
	}
	if len(lines) == 0 {
		return 0, 0
	}
	last := len(lines) - 1
	return last, len([]rune(lines[last]))
}

// Lines splits text into the same line representation the textarea
// component exposes via Lines(), so offsets computed here agree with it.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}
