package board

import (
	"github.com/bnema/tetris-stack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	empty   lipgloss.Style
	slot    lipgloss.Style
	section lipgloss.Style
	kinds   map[domain.Kind]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:   lipgloss.NewStyle().Faint(true),
		slot:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		section: lipgloss.NewStyle().MarginTop(1),
		kinds: map[domain.Kind]lipgloss.Style{
			domain.KindI: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
			domain.KindO: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
			domain.KindT: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("129")),
			domain.KindL: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		},
	}
}

func (s styles) piece(kind domain.Kind) lipgloss.Style {
	if style, ok := s.kinds[kind]; ok {
		return style
	}
	return s.label
}
