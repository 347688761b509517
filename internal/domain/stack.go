package domain

import "fmt"

// Stack is a fixed-capacity LIFO of pieces. Index 0 is the base.
type Stack struct {
	items []Piece
	top   int
}

func NewStack(capacity int) (*Stack, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("stack capacity must be positive, got %d", capacity)
	}

	return &Stack{items: make([]Piece, capacity)}, nil
}

func (s *Stack) Len() int { return s.top }
func (s *Stack) Cap() int { return len(s.items) }
func (s *Stack) IsEmpty() bool { return s.top == 0 }
func (s *Stack) IsFull() bool { return s.top == len(s.items) }

func (s *Stack) Push(p Piece) error {
	if s.IsFull() {
		return ErrStackFull
	}

	s.items[s.top] = p
	s.top++
	return nil
}

func (s *Stack) Pop() (Piece, error) {
	if s.IsEmpty() {
		return Piece{}, ErrStackEmpty
	}

	s.top--
	p := s.items[s.top]
	s.items[s.top] = Piece{}
	return p, nil
}

func (s *Stack) PeekTop() (Piece, bool) {
	return s.PeekAt(s.top - 1)
}

func (s *Stack) PeekAt(indexFromBase int) (Piece, bool) {
	if indexFromBase < 0 || indexFromBase >= s.top {
		return Piece{}, false
	}

	return s.items[indexFromBase], true
}

func (s *Stack) SetAt(indexFromBase int, p Piece) error {
	if indexFromBase < 0 || indexFromBase >= s.top {
		return fmt.Errorf("stack index %d (size %d): %w", indexFromBase, s.top, ErrOffsetOutOfRange)
	}

	s.items[indexFromBase] = p
	return nil
}

// Snapshot returns a fresh top-to-base copy of the stacked pieces.
func (s *Stack) Snapshot() []Piece {
	out := make([]Piece, 0, s.top)
	for i := s.top - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out
}
