package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/phoenix-tui/phoenix/tea/api"
	"github.com/phoenix-tui/phoenix/terminal"
)

const starterText = `package main

import "fmt"

func main() {
	// edit me - try typing, Ctrl+B to bookmark a line
	fmt.Println("hello, decoview")
}
`

func main() {
	logPath := flag.String("log", "", "write debug logs to this file instead of discarding them")
	exportPath := flag.String("export", "", "render the starter document to this path as a static ANSI snapshot and exit, instead of running the interactive editor")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decoview: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *exportPath != "" {
		if err := runExport(*exportPath); err != nil {
			fmt.Fprintf(os.Stderr, "decoview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if info := describeTerminal(terminal.New()); info != "" {
		log.Print(info)
	}

	p := tea.New(NewModel(starterText), tea.WithAltScreen[Model](), tea.WithMouseAllMotion[Model]())
	if err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "decoview: %v\n", err)
		os.Exit(1)
	}
}

func runExport(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m := NewModel(starterText)
	return exportSnapshot(m.text, m.highlights, m.bookmarks, f)
}
