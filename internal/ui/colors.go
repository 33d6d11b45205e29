package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/registrar/internal/models"
)

var styles = NewPalette(Scheme{
	Title:      "#7D56F4",
	OK:         "#04B575",
	Err:        "#FF0000",
	Warn:       "#FFA500",
	Muted:      "#626262",
	Student:    "#3C9EE7",
	Instructor: "#E7A23C",
	Course:     "#A23CE7",
})

// Scheme names the hex colors a [Palette] is built from.
type Scheme struct {
	Title, OK, Err, Warn, Muted  string
	Student, Instructor, Course string
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
	kinds map[models.Kind]lipgloss.Style
}

func NewPalette(s Scheme) *Palette {
	return &Palette{
		title: NewBold(s.Title).MarginBottom(1),
		ok:    NewBold(s.OK),
		err:   NewBold(s.Err),
		warn:  NewStyle(s.Warn),
		help:  NewEm(s.Muted),
		kinds: map[models.Kind]lipgloss.Style{
			models.KindStudent:    NewBold(s.Student),
			models.KindInstructor: NewBold(s.Instructor),
			models.KindCourse:     NewBold(s.Course),
		},
	}
}

// Badge renders a record kind as a fixed-width colored tag.
func (p *Palette) Badge(kind models.Kind) string {
	style, ok := p.kinds[kind]
	if !ok {
		style = p.help
	}
	return style.Width(10).Render(string(kind))
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
