// Package ui prints styled status lines for the batch and history commands.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// OkLine reports an accepted input.
func OkLine(w io.Writer, path string, tokens int) {
	fmt.Fprintln(w, okStyle.Render("ok ")+"  "+path+"  "+faintStyle.Render(plural(tokens, "token")))
}

// ErrLine reports a rejected input with the first line of its diagnostic.
func ErrLine(w io.Writer, path string, diagnostic string) {
	first, _, _ := strings.Cut(diagnostic, "\n")
	fmt.Fprintln(w, errStyle.Render("err")+"  "+path+"  "+faintStyle.Render(first))
}

// SummaryLine totals a batch.
func SummaryLine(w io.Writer, accepted, rejected int) {
	fmt.Fprintf(w, "parsed %s: %s accepted, %s rejected\n",
		plural(accepted+rejected, "file"), humanize.Comma(int64(accepted)), humanize.Comma(int64(rejected)))
}

// RunLine prints one recorded run relative to now.
func RunLine(w io.Writer, path string, accepted bool, at, now time.Time) {
	tag := okStyle.Render("ok ")
	if !accepted {
		tag = errStyle.Render("err")
	}
	fmt.Fprintln(w, tag+"  "+path+"  "+faintStyle.Render(humanize.RelTime(at, now, "ago", "from now")))
}

func plural(n int, word string) string {
	s := humanize.Comma(int64(n)) + " " + word
	if n != 1 {
		s += "s"
	}
	return s
}
