package main

import (
	"strings"
	"unicode"

	"github.com/phoenix-tui/phoenix/decoration"
)

var keywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// highlightDecorations tokenizes text and returns range decorations for
// keywords, string literals, and line comments. It is recomputed, from
// scratch, over the changed window only; callers widen that window to the
// nearest token boundary before calling.
func highlightDecorations(text string) []decoration.Decoration {
	runes := []rune(text)
	var decs []decoration.Decoration

	i := 0
	for i < len(runes) {
		switch {
		case strings.HasPrefix(string(runes[i:]), "//"):
			start := i
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			decs = append(decs, mustRange(start, i, "comment"))

		case runes[i] == '"':
			start := i
			i++
			for i < len(runes) && runes[i] != '"' {
				if runes[i] == '\\' && i+1 < len(runes) {
					i++
				}
				i++
			}
			if i < len(runes) {
				i++
			}
			decs = append(decs, mustRange(start, i, "string"))

		case unicode.IsLetter(runes[i]) || runes[i] == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			if keywords[word] {
				decs = append(decs, mustRange(start, i, "keyword"))
			}

		default:
			i++
		}
	}

	return decs
}

func mustRange(from, to int, class string) decoration.Decoration {
	d, err := decoration.Range(from, to, decoration.RangeSpec{
		Attributes: map[string]string{"class": class},
	})
	if err != nil {
		// from < to always holds here: every caller advances i past start
		// before constructing the range.
		panic(err)
	}
	return d
}
