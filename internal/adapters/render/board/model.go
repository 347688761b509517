package board

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnema/tetris-stack/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")
	ErrBoardOverCapacity     = errors.New("board holds more pieces than its capacity")
)

// drawMsg asks the model to lay out the board it was built with.
type drawMsg struct{}

type model struct {
	board  application.Board
	opts   RenderOptions
	styles styles
	frame  string
	drawn  bool
}

func newModel(board application.Board, opts RenderOptions) model {
	return model{
		board:  board,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return drawMsg{} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(drawMsg); !ok || m.drawn {
		return m, nil
	}

	m.frame = renderView(m.board, m.opts, m.styles)
	m.drawn = true
	return m, tea.Quit
}

func (m model) View() string {
	return m.frame
}

// Render lays out one frame of the board. The queue and the reserve row
// must fit their capacities; a board that does not is reported rather than
// drawn, since it can only come from a broken session.
func Render(board application.Board, opts RenderOptions) (string, error) {
	if err := checkCapacity(board); err != nil {
		return "", err
	}

	p := tea.NewProgram(
		newModel(board, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("render board: %w", err)
	}

	rendered, ok := final.(model)
	if !ok || !rendered.drawn {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

func checkCapacity(board application.Board) error {
	if len(board.Queue) > board.QueueCapacity {
		return fmt.Errorf("queue %d/%d: %w", len(board.Queue), board.QueueCapacity, ErrBoardOverCapacity)
	}
	if board.Mode != application.ModeMinimal && len(board.Stack) > board.StackCapacity {
		return fmt.Errorf("reserve %d/%d: %w", len(board.Stack), board.StackCapacity, ErrBoardOverCapacity)
	}
	return nil
}
