package application

import "github.com/bnema/tetris-stack/internal/domain"

// Board is a read-only snapshot of a session for presentation.
type Board struct {
	Mode          Mode
	Queue         []domain.Piece // front to back
	Stack         []domain.Piece // top to base
	QueueCapacity int
	StackCapacity int
	NextID        domain.PieceID
}
