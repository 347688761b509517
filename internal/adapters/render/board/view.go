package board

import (
	"fmt"
	"strings"

	"github.com/bnema/tetris-stack/internal/application"
	"github.com/bnema/tetris-stack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// ShowFreeSlots pads each row with placeholders up to capacity.
	ShowFreeSlots bool
}

const freeSlot = "[   ]"

func renderView(board application.Board, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Tetris Stack"),
		s.header.Render(fmt.Sprintf("mode: %s  queue: %d/%d  reserve: %d/%d  next id: %d",
			board.Mode, len(board.Queue), board.QueueCapacity, len(board.Stack), board.StackCapacity, board.NextID)),
	}

	queueRow := lipgloss.JoinHorizontal(lipgloss.Top,
		s.label.Render("Piece queue      "),
		renderRow(board.Queue, board.QueueCapacity, "[empty]", opts, s),
	)
	lines = append(lines, s.section.Render(queueRow))

	if board.Mode != application.ModeMinimal {
		stackRow := lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render("Reserve (top->base) "),
			renderRow(board.Stack, board.StackCapacity, "(empty)", opts, s),
		)
		lines = append(lines, stackRow)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(pieces []domain.Piece, capacity int, emptyLabel string, opts RenderOptions, s styles) string {
	cells := make([]string, 0, capacity)
	for _, p := range pieces {
		cells = append(cells, s.piece(p.Kind).Render(p.String()))
	}

	if opts.ShowFreeSlots {
		for i := len(pieces); i < capacity; i++ {
			cells = append(cells, s.slot.Render(freeSlot))
		}
	}

	if len(cells) == 0 {
		return s.empty.Render(emptyLabel)
	}

	return strings.Join(cells, " ")
}
