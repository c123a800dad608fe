// Package phoenix is the root umbrella module for Phoenix TUI Framework.
//
// Phoenix is a modern, high-performance Terminal User Interface framework for Go,
// built with Domain-Driven Design principles and modern Go 1.25+ patterns.
//
// # Architecture
//
// Phoenix consists of independent libraries that can be used together or separately:
//
//   - github.com/phoenix-tui/phoenix/style       - CSS-like styling system
//   - github.com/phoenix-tui/phoenix/tea         - Elm Architecture (Model-Update-View)
//   - github.com/phoenix-tui/phoenix/render      - High-performance differential renderer
//   - github.com/phoenix-tui/phoenix/components  - Rich UI component library
//   - github.com/phoenix-tui/phoenix/mouse       - Mouse input handling
//   - github.com/phoenix-tui/phoenix/clipboard   - Cross-platform clipboard operations
//   - github.com/phoenix-tui/phoenix/terminal    - Terminal detection & capabilities
//   - github.com/phoenix-tui/phoenix/testing     - Testing utilities (Mock/Null terminals)
//   - github.com/phoenix-tui/phoenix/decoration  - Positional decoration index for text
//
// # Quick Start
//
// Install individual libraries:
//
//	go get github.com/phoenix-tui/phoenix/tea@latest
//	go get github.com/phoenix-tui/phoenix/components@latest
//
// Or install all libraries via the root module:
//
//	go get github.com/phoenix-tui/phoenix@latest
//
// # Example: Hello World
//
//	package main
//
//	import (
//	    "fmt"
//	    "os"
//	    tea "github.com/phoenix-tui/phoenix/tea/api"
//	)
//
//	type model struct{ message string }
//
//	func (m model) Init() tea.Cmd { return nil }
//
//	func (m model) Update(msg tea.Msg) (model, tea.Cmd) {
//	    if _, ok := msg.(tea.KeyMsg); ok {
//	        return m, tea.Quit()
//	    }
//	    return m, nil
//	}
//
//	func (m model) View() string {
//	    return fmt.Sprintf("Hello, %s!\n\nPress any key to quit.", m.message)
//	}
//
//	func main() {
//	    p := phoenix.NewProgram(model{message: "World"})
//	    if err := p.Run(); err != nil {
//	        fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	        os.Exit(1)
//	    }
//	}
//
// See cmd/decoview for a larger example: a small text editor built on
// components/input/textarea, components/viewport, and decoration, wired
// together the way an application built on this umbrella is expected to.
//
// # Multi-Module Monorepo
//
// This repository uses a multi-module structure where each library is independently versioned.
// The root module serves as an umbrella module for convenient installation and documentation.
package phoenix

import (
	clipboardapi "github.com/phoenix-tui/phoenix/clipboard/api"
	styleapi "github.com/phoenix-tui/phoenix/style/api"
	teaapi "github.com/phoenix-tui/phoenix/tea/api"
	terminalapi "github.com/phoenix-tui/phoenix/terminal/api"
	terminalinfra "github.com/phoenix-tui/phoenix/terminal/infrastructure"
)

// ┌─────────────────────────────────────────────────────────────┐
// │ Style - CSS-like Styling                                    │
// └─────────────────────────────────────────────────────────────┘

// NewStyle creates a new Style builder for applying colors, borders, padding, etc.
//
// Example:
//
//	s := phoenix.NewStyle().
//		Foreground(style.RGB(255, 0, 0)).
//		Bold(true)
//	fmt.Println(style.Render(s, "Styled text"))
func NewStyle() styleapi.Style {
	return styleapi.New()
}

// ┌─────────────────────────────────────────────────────────────┐
// │ Tea - Elm Architecture (Model-Update-View)                  │
// └─────────────────────────────────────────────────────────────┘

// modelConstraint defines the interface that models must implement for Tea programs.
// This is re-exported from tea/api to make the umbrella API self-contained.
type modelConstraint[T any] interface {
	Init() teaapi.Cmd
	Update(teaapi.Msg) (T, teaapi.Cmd)
	View() string
}

// NewProgram creates a new Tea Program with the given model.
// This is the main entry point for building Phoenix TUI applications.
//
// Example:
//
//	type MyModel struct { count int }
//	// ... implement tea.Model interface ...
//
//	p := phoenix.NewProgram(MyModel{}, phoenix.WithAltScreen[MyModel]())
//	if err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
func NewProgram[T modelConstraint[T]](model T, opts ...teaapi.ProgramOption[T]) *teaapi.Program[T] {
	return teaapi.New(model, opts...)
}

// WithAltScreen enables the alternate screen buffer.
// This allows your TUI to take over the full terminal without affecting the scrollback.
//
// Example:
//
//	p := phoenix.NewProgram(model, phoenix.WithAltScreen[MyModel]())
func WithAltScreen[T any]() teaapi.ProgramOption[T] {
	return teaapi.WithAltScreen[T]()
}

// WithMouseAllMotion enables mouse support with all motion events.
//
// Example:
//
//	p := phoenix.NewProgram(model, phoenix.WithMouseAllMotion[MyModel]())
func WithMouseAllMotion[T any]() teaapi.ProgramOption[T] {
	return teaapi.WithMouseAllMotion[T]()
}

// Quit returns a command that quits the program.
//
// Example:
//
//	func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
//		if msg.(tea.KeyMsg).String() == "q" {
//			return m, phoenix.Quit()
//		}
//		return m, nil
//	}
func Quit() teaapi.Cmd {
	return teaapi.Quit()
}

// ┌─────────────────────────────────────────────────────────────┐
// │ Clipboard - Cross-platform Clipboard Operations             │
// └─────────────────────────────────────────────────────────────┘

// ReadClipboard reads text from the system clipboard.
//
// Example:
//
//	text, err := phoenix.ReadClipboard()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Clipboard:", text)
func ReadClipboard() (string, error) {
	return clipboardapi.Read()
}

// WriteClipboard writes text to the system clipboard.
//
// Example:
//
//	err := phoenix.WriteClipboard("Hello, clipboard!")
//	if err != nil {
//		log.Fatal(err)
//	}
func WriteClipboard(text string) error {
	return clipboardapi.Write(text)
}

// ┌─────────────────────────────────────────────────────────────┐
// │ Terminal - Platform-optimized Terminal Operations           │
// └─────────────────────────────────────────────────────────────┘

// NewPlatformTerminal creates a new platform-optimized Terminal.
// Automatically selects the best implementation for the current platform:
//   - Windows Console API (fastest on Windows cmd.exe/PowerShell)
//   - ANSI fallback (for Git Bash, MinTTY, Unix)
//
// Example:
//
//	term := phoenix.NewPlatformTerminal()
//	term.HideCursor()
//	defer term.ShowCursor()
func NewPlatformTerminal() terminalapi.Terminal {
	return terminalinfra.NewTerminal()
}

// NewANSITerminal creates a new ANSI-based Terminal.
// Use this when you want to force ANSI escape codes (e.g., for SSH, tmux).
//
// Example:
//
//	term := phoenix.NewANSITerminal()
//	term.Clear()
func NewANSITerminal() terminalapi.Terminal {
	return terminalinfra.NewANSITerminal()
}
