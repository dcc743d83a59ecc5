// Package output provides CLI output formatting utilities
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	useColors bool
	quiet     bool
}

// NewPrinter creates a new printer writing to stdout.
func NewPrinter(useColors, quiet bool) *Printer {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		useColors = false
	}
	return &Printer{
		out:       os.Stdout,
		useColors: useColors,
		quiet:     quiet,
	}
}

// SetOutput redirects output, used by command tests.
func (p *Printer) SetOutput(out io.Writer) {
	p.out = out
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
	}
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.Bold).Fprintf(p.out, "%s\n", title)
	} else {
		fmt.Fprintf(p.out, "%s\n", title)
	}
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}

// DirtyBadge marks an entry with uncommitted changes.
func (p *Printer) DirtyBadge(dirty bool) string {
	if !dirty {
		return ""
	}
	if p.useColors {
		return color.YellowString(" *")
	}
	return " *"
}
