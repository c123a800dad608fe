// Package main implements decoview, a small terminal editor that
// demonstrates the decoration package: it keeps a syntax-highlighting
// decoration.Set and a bookmarks decoration.Set alongside a textarea,
// remaps both across every edit, and renders a merged-span preview below
// the editor.
//
// Controls:
//   - Standard Emacs-style editing keys (see components/input/textarea)
//   - Ctrl+B            : toggle a bookmark on the preview line under the
//     cursor's row
//   - Ctrl+L             : open the bookmark navigator (a modal listing every
//     bookmarked line); press its numbered shortcut to jump the cursor there
//   - Ctrl+K             : fold (or unfold) the line under the cursor into a
//     single placeholder widget in the preview pane
//   - Ctrl+Y             : copy the current selection to the system clipboard
//   - Double-click a preview line : toggle a bookmark on that line
//   - Ctrl+C, Ctrl+Q, Esc : quit (Esc also closes the bookmark navigator)
package main

import (
	"fmt"
	"strings"

	mouseapi "github.com/phoenix-tui/phoenix/mouse/api"
	mouseservice "github.com/phoenix-tui/phoenix/mouse/domain/service"

	"github.com/phoenix-tui/phoenix/cmd/decoview/rowcol"
	"github.com/phoenix-tui/phoenix/clipboard"
	"github.com/phoenix-tui/phoenix/core"
	"github.com/phoenix-tui/phoenix/decoration"
	"github.com/phoenix-tui/phoenix/layout"
	styleapi "github.com/phoenix-tui/phoenix/style/api"
	tea "github.com/phoenix-tui/phoenix/tea/api"
	textarea "github.com/phoenix-tui/phoenix/components/input/textarea/api"
	modalapi "github.com/phoenix-tui/phoenix/components/modal/api"
	viewport "github.com/phoenix-tui/phoenix/components/viewport/api"
)

const (
	titleRows    = 1
	separatorRow = 1
)

// Model is the decoview application state. It is immutable in the Elm
// Architecture sense: Update always returns a new Model rather than
// mutating the receiver.
type Model struct {
	ta          textarea.TextArea
	preview     *viewport.Viewport
	bookmarkNav *modalapi.Modal
	theme       theme
	clicks      *mouseservice.ClickDetector
	text        string
	highlights  decoration.Set
	bookmarks   decoration.Set
	folds       decoration.Set
	status      string

	width, height int
	taHeight      int
	previewTopRow int
	previewHeight int
}

// NewModel builds the initial decoview state over the given starter text.
func NewModel(text string) Model {
	taHeight := 10
	previewHeight := 10

	ta := textarea.New().
		Size(80, taHeight).
		ShowLineNumbers(true).
		SetValue(text).
		MoveCursorToEnd()

	m := Model{
		ta:            ta,
		preview:       viewport.New(80, previewHeight).MouseEnabled(true),
		bookmarkNav:   modalapi.NewWithTitle("Bookmarks", "no bookmarks yet").Size(40, 10).DimBackground(true),
		theme:         newTheme(),
		clicks:        mouseservice.NewClickDetector(0, 1),
		text:          text,
		highlights:    decoration.Of(highlightDecorations(text)...),
		bookmarks:     decoration.Empty,
		folds:         decoration.Empty,
		width:         80,
		height:        taHeight + previewHeight + titleRows + separatorRow + 1,
		taHeight:      taHeight,
		previewHeight: previewHeight,
		previewTopRow: titleRows + taHeight + separatorRow,
	}
	m.preview = m.preview.SetContent(text)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		updated, cmd := m.bookmarkNav.Update(msg)
		m.bookmarkNav = updated
		return m, cmd

	case modalapi.ButtonPressedMsg:
		return m.jumpToBookmark(msg.Action), nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.bookmarkNav.IsVisible() {
		updated, cmd := m.bookmarkNav.Update(msg)
		m.bookmarkNav = updated
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "ctrl+q", "esc":
		return m, tea.Quit()

	case "ctrl+b":
		row, _ := m.ta.CursorPosition()
		return m.toggleBookmark(row), nil

	case "ctrl+l":
		m.bookmarkNav = m.buildBookmarkNav()
		return m, nil

	case "ctrl+k":
		row, _ := m.ta.CursorPosition()
		return m.toggleFold(row), nil

	case "ctrl+y":
		if text := m.ta.SelectedText(); text != "" {
			_ = clipboard.Write(text)
			m.status = fmt.Sprintf("copied %d characters", len([]rune(text)))
		}
		return m, nil
	}

	newTA, cmd := m.ta.Update(msg)
	m.ta = newTA
	m = m.syncAfterEdit()
	return m, cmd
}

// buildBookmarkNav rebuilds the bookmark navigator modal from the current
// bookmark set, one numbered button per bookmarked line (up to 9 - enough
// for a demo document, and DefaultKeyBindings only reserves single runes for
// shortcuts), and shows it.
func (m Model) buildBookmarkNav() *modalapi.Modal {
	lines := rowcol.Lines(m.text)
	offsets := bookmarkOffsets(m.bookmarks)

	content := "no bookmarks yet - press ctrl+b on a line first"
	var buttons []modalapi.Button
	if len(offsets) > 0 {
		var rows []string
		for i, offset := range offsets {
			if i >= 9 {
				break
			}
			row, _ := rowcol.Position(lines, offset)
			key := fmt.Sprintf("%d", i+1)
			rows = append(rows, fmt.Sprintf("%s. line %d: %s", key, row+1, strings.TrimSpace(lastOf(lines, row))))
			buttons = append(buttons, modalapi.Button{
				Label:  fmt.Sprintf("%d", row+1),
				Key:    key,
				Action: fmt.Sprintf("jump:%d", row),
			})
		}
		content = strings.Join(rows, "\n")
	}

	return modalapi.NewWithTitle("Bookmarks", content).
		Size(50, 12).
		DimBackground(true).
		Buttons(buttons).
		Show()
}

// jumpToBookmark handles a modalapi.ButtonPressedMsg Action of the form
// "jump:<row>" emitted by the bookmark navigator: it moves the cursor to
// that row and hides the navigator.
func (m Model) jumpToBookmark(action string) Model {
	var row int
	if _, err := fmt.Sscanf(action, "jump:%d", &row); err != nil {
		return m
	}
	m.ta = m.ta.SetCursorPosition(row, 0)
	m.bookmarkNav = m.bookmarkNav.Hide()
	m.status = fmt.Sprintf("jumped to line %d", row+1)
	return m
}

// toggleFold collapses the line under row into a single "line NN" widget
// placeholder, or un-collapses it if it is already folded. Grounded on the
// decoration package's collapsed-range merge semantics: a Collapsed range
// decoration suppresses every decoration strictly inside it and contributes
// one synthetic "widget"-attributed span in its place.
func (m Model) toggleFold(row int) Model {
	lines := rowcol.Lines(m.text)
	from := rowcol.Offset(lines, row, 0)
	to := from + len([]rune(lastOf(lines, row)))

	folded := false
	forEachDecoration(m.folds, func(d decoration.Decoration) {
		if d.From == from && d.To == to {
			folded = true
		}
	})

	if folded {
		m.folds = m.folds.Update(decoration.UpdateOptions{
			Filter:     func(d decoration.Decoration) bool { return !(d.From == from && d.To == to) },
			FilterFrom: from,
			FilterTo:   to,
		})
		m.status = fmt.Sprintf("line %d unfolded", row+1)
	} else if to > from {
		fold, err := decoration.Range(from, to, decoration.RangeSpec{
			Collapsed: true,
			TagName:   fmt.Sprintf("line %d", row+1),
		})
		if err == nil {
			m.folds = m.folds.Update(decoration.UpdateOptions{Add: []decoration.Decoration{fold}})
			m.status = fmt.Sprintf("line %d folded", row+1)
		}
	}

	m.preview = m.preview.SetContent(m.renderAnnotatedText())
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	newPreview, _ := m.preview.Update(msg)
	m.preview = newPreview

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m
	}

	row := m.previewRowAt(msg.Y)
	if row < 0 {
		return m
	}

	ev := mouseapi.NewMouseEvent(mouseapi.EventRelease, mouseapi.ButtonLeft, mouseapi.NewPosition(msg.X, msg.Y), mouseapi.NewModifiers(msg.Shift, msg.Ctrl, msg.Alt))
	result := m.clicks.DetectClick(ev)
	if result == nil || result.Type() != mouseapi.EventDoubleClick {
		return m
	}

	return m.toggleBookmark(row)
}

// previewRowAt converts a screen row (as reported by tea.MouseMsg.Y) into a
// document row, or -1 when y falls outside the preview pane.
func (m Model) previewRowAt(y int) int {
	if y < m.previewTopRow || y >= m.previewTopRow+m.previewHeight {
		return -1
	}
	return m.preview.ScrollOffset() + (y - m.previewTopRow)
}

// forEachDecoration walks every decoration held by set, at any depth of its
// child tree, calling fn once per decoration.
func forEachDecoration(set decoration.Set, fn func(decoration.Decoration)) {
	for _, d := range set.Local {
		fn(d)
	}
	for _, c := range set.Children {
		forEachDecoration(c, fn)
	}
}

// toggleBookmark adds or removes a point decoration at the start of row.
func (m Model) toggleBookmark(row int) Model {
	lines := rowcol.Lines(m.text)
	offset := rowcol.Offset(lines, row, 0)

	hasBookmark := false
	forEachDecoration(m.bookmarks, func(d decoration.Decoration) {
		if d.From == offset {
			hasBookmark = true
		}
	})

	if hasBookmark {
		m.bookmarks = m.bookmarks.Update(decoration.UpdateOptions{
			Filter:     func(d decoration.Decoration) bool { return d.From != offset },
			FilterFrom: offset,
			FilterTo:   offset,
		})
		m.status = fmt.Sprintf("bookmark removed at line %d", row+1)
	} else {
		m.bookmarks = m.bookmarks.Update(decoration.UpdateOptions{
			Add: []decoration.Decoration{decoration.Point(offset, decoration.PointSpec{Side: -1})},
		})
		m.status = fmt.Sprintf("bookmark set at line %d", row+1)
	}

	m.preview = m.preview.SetContent(m.renderAnnotatedText())
	return m
}

// syncAfterEdit diffs the textarea's value against the last-seen text,
// remaps highlights and bookmarks across the resulting edit, recomputes
// highlighting, and refreshes the preview pane.
func (m Model) syncAfterEdit() Model {
	next := m.ta.Value()
	if next == m.text {
		return m
	}

	from, to, insertedLen := diffChange(m.text, next)
	change := decoration.NewChange(from, to, insertedLen)

	m.highlights = m.highlights.Map([]decoration.Change{change})
	m.bookmarks = m.bookmarks.Map([]decoration.Change{change})
	m.folds = m.folds.Map([]decoration.Change{change})
	m.text = next

	lines := rowcol.Lines(next)
	windowFrom, windowTo := expandToLineBounds(lines, from, from+insertedLen)
	windowDecs := highlightDecorations(next[windowFrom:windowTo])
	shifted := make([]decoration.Decoration, len(windowDecs))
	for i, d := range windowDecs {
		shifted[i] = d.Move(windowFrom)
	}
	m.highlights = m.highlights.Update(decoration.UpdateOptions{
		Filter:     func(decoration.Decoration) bool { return false },
		FilterFrom: windowFrom,
		FilterTo:   windowTo,
		Add:        shifted,
	})

	m.preview = m.preview.SetContent(m.renderAnnotatedText())
	return m
}

// expandToLineBounds widens [from, to) to the start of its first line and
// the end of its last line, so a highlighter that tokenizes from scratch
// never sees a token cut in half by the window edge.
func expandToLineBounds(lines []string, from, to int) (int, int) {
	startRow, _ := rowcol.Position(lines, from)
	endRow, _ := rowcol.Position(lines, to)
	return rowcol.Offset(lines, startRow, 0), rowcol.Offset(lines, endRow, len([]rune(lastOf(lines, endRow))))
}

func lastOf(lines []string, row int) string {
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}

// renderAnnotatedText renders the document through SpansInRange, applying
// the theme's styling per class and a bookmark marker at any bookmarked
// line's start.
func (m Model) renderAnnotatedText() string {
	spans := decoration.SpansInRange([]decoration.Set{m.highlights, m.folds}, 0, m.highlights.Length)

	var b strings.Builder
	for i := 0; i < len(spans); {
		widget, folded := spans[i].Attributes["widget"]
		if !folded {
			text := m.text[spans[i].From:spans[i].To]
			b.WriteString(m.theme.render(spans[i].Attributes["class"], text))
			i++
			continue
		}

		// A collapsed range can still surface as several consecutive
		// "widget"-attributed spans (see DecoratedSpansInRange's own
		// doc comment); merge them back into the single placeholder
		// the collapsed range logically represents.
		j := i
		for j < len(spans) && spans[j].Attributes["widget"] == widget {
			j++
		}
		original := m.text[spans[i].From:spans[j-1].To]
		b.WriteString(styleapi.Render(m.theme.chrome, foldPlaceholder(widget, original)))
		i = j
	}
	rendered := b.String()

	lines := strings.Split(rendered, "\n")
	plainLines := rowcol.Lines(m.text)
	forEachDecoration(m.bookmarks, func(d decoration.Decoration) {
		markBookmarkLine(lines, plainLines, d.From, m.theme)
	})

	return strings.Join(lines, "\n")
}

// foldPlaceholder renders a collapsed line's widget label padded to the
// display width of the text it replaces, via core.StringWidth, so folding a
// line doesn't reflow the columns of the lines around it.
func foldPlaceholder(widget, original string) string {
	width := core.StringWidth(original)
	label := clampToWidth(fmt.Sprintf("▸ %s", widget), width)
	if pad := width - core.StringWidth(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	return label
}

func markBookmarkLine(renderedLines, plainLines []string, offset int, t theme) {
	row, _ := rowcol.Position(plainLines, offset)
	if row < 0 || row >= len(renderedLines) {
		return
	}
	renderedLines[row] = styleapi.Render(t.bookmark, "★ ") + renderedLines[row]
}

// View implements tea.Model.
func (m Model) View() string {
	if m.bookmarkNav.IsVisible() {
		return m.bookmarkNav.View()
	}

	status := m.status
	if status == "" {
		status = "ctrl+b bookmark · ctrl+l list bookmarks · ctrl+k fold line · ctrl+y copy selection · ctrl+c quit"
	}
	status = clampToWidth(status, m.width)

	return layout.Column().
		AddRaw(styleapi.Render(m.theme.title, "decoview — positional decoration demo")).
		AddRaw(m.ta.View()).
		AddRaw(styleapi.Render(m.theme.chrome, strings.Repeat("─", m.width))).
		AddRaw(m.preview.View()).
		AddRaw(styleapi.Render(m.theme.status, status)).
		Render(m.width, m.height)
}

// clampToWidth truncates s, by display column rather than byte or rune
// count, so a status line with wide or multi-byte glyphs never overruns a
// narrow terminal.
func clampToWidth(s string, width int) string {
	if width <= 0 || core.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && core.StringWidth(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
