package main

import (
	"io"

	"github.com/phoenix-tui/phoenix/cmd/decoview/rowcol"
	"github.com/phoenix-tui/phoenix/decoration"
	"github.com/phoenix-tui/phoenix/render"
)

// exportSnapshot paints text, annotated by highlights and bookmarks, into a
// render.Buffer and flushes it through a render.Renderer as a static ANSI
// snapshot written to out. It is the non-interactive sibling of the live
// tea.Program view: a one-shot paint for piping decoview's output to a file
// or another command, rather than reusing Program's own redraw loop.
func exportSnapshot(text string, highlights, bookmarks decoration.Set, out io.Writer) error {
	lines := rowcol.Lines(text)
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)) + 2; n > width {
			width = n
		}
	}
	if width == 0 {
		width = 1
	}
	height := len(lines)
	if height == 0 {
		height = 1
	}

	r := render.New(width, height, out)
	defer r.Close()
	buf := r.Buffer()
	defer buf.Release()

	for row, line := range lines {
		buf.SetString(2, row, line, render.StyleDefault())
	}

	spans := decoration.SpansInRange([]decoration.Set{highlights}, 0, highlights.Length)
	for _, s := range spans {
		c, ok := classPalette[s.Attributes["class"]]
		if !ok {
			continue
		}
		row, col := rowcol.Position(lines, s.From)
		endRow, endCol := rowcol.Position(lines, s.To)
		if row != endRow {
			// Highlight spans never cross a line in this tokenizer; skip
			// defensively rather than garble the snapshot.
			continue
		}
		lineRunes := []rune(lines[row])
		buf.SetString(2+col, row, string(lineRunes[col:endCol]), render.StyleFg(c.r, c.g, c.b))
	}

	for _, offset := range bookmarkOffsets(bookmarks) {
		row, _ := rowcol.Position(lines, offset)
		buf.SetString(0, row, "*", render.StyleFg(255, 200, 0))
	}

	return r.Render(buf)
}

func bookmarkOffsets(set decoration.Set) []int {
	var offsets []int
	for _, d := range set.Local {
		offsets = append(offsets, d.From)
	}
	for _, c := range set.Children {
		offsets = append(offsets, bookmarkOffsets(c)...)
	}
	return offsets
}
