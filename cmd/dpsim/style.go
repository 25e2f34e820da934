// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styler decorates trace output when it goes to a terminal.
type styler struct {
	tty        bool
	headStyle  lipgloss.Style
	warnStyle  lipgloss.Style
	titleStyle lipgloss.Style
}

func newStyler(w io.Writer) *styler {
	s := &styler{
		headStyle:  lipgloss.NewStyle().Bold(true).Underline(true),
		warnStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	}
	if f, ok := w.(*os.File); ok {
		s.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return s
}

func (s *styler) render(st lipgloss.Style, text string) string {
	if !s.tty {
		return text
	}
	return st.Render(text)
}

func (s *styler) header(text string) string { return s.render(s.headStyle, text) }
func (s *styler) warn(text string) string   { return s.render(s.warnStyle, text) }
func (s *styler) title(text string) string  { return s.render(s.titleStyle, text) }
