package domain

import "fmt"

// Queue is a fixed-capacity circular FIFO of pieces. Front is the oldest
// piece, back the newest.
type Queue struct {
	buf   []Piece
	front int
	size  int
}

// OverwriteOutcome reports what EnqueueOverwrite did. Discarded is only
// meaningful when DiscardedOldest is true.
type OverwriteOutcome struct {
	Inserted        bool
	DiscardedOldest bool
	Discarded       Piece
}

func NewQueue(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("queue capacity must be positive, got %d", capacity)
	}

	return &Queue{buf: make([]Piece, capacity)}, nil
}

func (q *Queue) Len() int { return q.size }
func (q *Queue) Cap() int { return len(q.buf) }
func (q *Queue) IsEmpty() bool { return q.size == 0 }
func (q *Queue) IsFull() bool { return q.size == len(q.buf) }

func (q *Queue) Enqueue(p Piece) error {
	if q.IsFull() {
		return ErrQueueFull
	}

	q.buf[q.index(q.size)] = p
	q.size++
	return nil
}

// EnqueueOverwrite always inserts p at the back, evicting the front piece
// first when the queue is full.
func (q *Queue) EnqueueOverwrite(p Piece) OverwriteOutcome {
	var out OverwriteOutcome
	if q.IsFull() {
		out.Discarded = q.buf[q.front]
		out.DiscardedOldest = true
		q.buf[q.front] = Piece{}
		q.front = q.index(1)
		q.size--
	}

	q.buf[q.index(q.size)] = p
	q.size++
	out.Inserted = true
	return out
}

func (q *Queue) Dequeue() (Piece, error) {
	if q.IsEmpty() {
		return Piece{}, ErrQueueEmpty
	}

	p := q.buf[q.front]
	q.buf[q.front] = Piece{}
	q.front = q.index(1)
	q.size--
	return p, nil
}

func (q *Queue) PeekFront() (Piece, bool) {
	return q.PeekAt(0)
}

// PeekAt returns the piece offset positions behind the front.
func (q *Queue) PeekAt(offset int) (Piece, bool) {
	if offset < 0 || offset >= q.size {
		return Piece{}, false
	}

	return q.buf[q.index(offset)], true
}

// SetAt replaces the piece at offset in place. The size is unchanged.
func (q *Queue) SetAt(offset int, p Piece) error {
	if offset < 0 || offset >= q.size {
		return fmt.Errorf("queue offset %d (size %d): %w", offset, q.size, ErrOffsetOutOfRange)
	}

	q.buf[q.index(offset)] = p
	return nil
}

// Snapshot returns a fresh front-to-back copy of the queued pieces.
func (q *Queue) Snapshot() []Piece {
	out := make([]Piece, q.size)
	for i := range out {
		out[i] = q.buf[q.index(i)]
	}
	return out
}

func (q *Queue) index(offset int) int {
	return (q.front + offset) % len(q.buf)
}
