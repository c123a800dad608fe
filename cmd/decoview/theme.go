package main

import (
	styleapi "github.com/phoenix-tui/phoenix/style/api"
)

// rgb is a plain color triple. classPalette keeps one copy of the highlight
// colors so both the interactive style/api rendering and the static
// render-package snapshot export (see export.go) agree on what each class
// looks like.
type rgb struct{ r, g, b uint8 }

var classPalette = map[string]rgb{
	"keyword": {198, 120, 221},
	"string":  {152, 195, 121},
	"comment": {92, 99, 112},
}

// theme holds the styles applied to each highlight class produced by
// highlightDecorations, plus the chrome around the editor and preview
// panes. Colors are chosen conservatively so they read on both truecolor
// and 256-color terminals; style/api itself degrades further for 16-color
// terminals.
type theme struct {
	title    styleapi.Style
	chrome   styleapi.Style
	status   styleapi.Style
	bookmark styleapi.Style
	classes  map[string]styleapi.Style
}

func newTheme() theme {
	classes := make(map[string]styleapi.Style, len(classPalette))
	for class, c := range classPalette {
		s := styleapi.New().Foreground(styleapi.RGB(c.r, c.g, c.b))
		if class == "keyword" {
			s = s.Bold(true)
		}
		classes[class] = s
	}
	return theme{
		title: styleapi.New().Foreground(styleapi.RGB(250, 250, 250)).Bold(true),
		chrome: styleapi.New().
			Foreground(styleapi.RGB(120, 120, 120)),
		status: styleapi.New().Foreground(styleapi.RGB(180, 180, 180)),
		bookmark: styleapi.New().
			Foreground(styleapi.RGB(20, 20, 20)).
			Background(styleapi.RGB(255, 200, 0)),
		classes: classes,
	}
}

// render applies the style for class, falling back to plain text when the
// class has no style (an attribute added by a caller this theme doesn't
// know about).
func (t theme) render(class, text string) string {
	s, ok := t.classes[class]
	if !ok {
		return text
	}
	return styleapi.Render(s, text)
}
