package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tetris-stack/internal/domain"
)

// Outcome describes the result of one operation. Err holds the expected
// precondition failure, if any; the other fields are set only when the
// corresponding piece moved.
type Outcome struct {
	Operation Operation
	Err       error

	Played    *domain.Piece
	Reserved  *domain.Piece
	Used      *domain.Piece
	Generated *domain.Piece
	// Discarded is the piece evicted by an overwrite refill.
	Discarded *domain.Piece

	// SwappedQueue and SwappedStack hold the pieces that left the queue and
	// the stack during a swap, in positional order.
	SwappedQueue []domain.Piece
	SwappedStack []domain.Piece
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

func (o Outcome) DiscardedOldest() bool {
	return o.Discarded != nil
}

// Message returns a one-line human description of the outcome.
func (o Outcome) Message() string {
	parts := []string{o.headline()}
	if o.Generated != nil {
		parts = append(parts, fmt.Sprintf("generated %s", o.Generated))
	}
	if o.Discarded != nil {
		parts = append(parts, fmt.Sprintf("queue was full, discarded oldest %s", o.Discarded))
	}
	return strings.Join(parts, "; ")
}

func (o Outcome) headline() string {
	if o.Err != nil {
		return failureHeadline(o.Operation, o.Err)
	}

	switch o.Operation {
	case OperationPlay:
		return fmt.Sprintf("played %s", o.Played)
	case OperationReserve:
		return fmt.Sprintf("reserved %s", o.Reserved)
	case OperationUseReserved:
		return fmt.Sprintf("used reserved %s", o.Used)
	case OperationSwapFrontTop:
		return fmt.Sprintf("swapped queue front %s with stack top %s", joinPieces(o.SwappedQueue), joinPieces(o.SwappedStack))
	case OperationSwapTriple:
		return fmt.Sprintf("swapped queue front %s with stack %s", joinPieces(o.SwappedQueue), joinPieces(o.SwappedStack))
	case OperationManualEnqueue:
		return "enqueued new piece"
	default:
		return string(o.Operation)
	}
}

func failureHeadline(op Operation, err error) string {
	switch {
	case errors.Is(err, ErrUnknownOperation):
		return fmt.Sprintf("unknown operation %q", string(op))
	case errors.Is(err, ErrOperationUnavailable):
		return fmt.Sprintf("%s is not available in this mode", op)
	case errors.Is(err, domain.ErrQueueEmpty) && op == OperationPlay:
		return "queue is empty, nothing played"
	case errors.Is(err, domain.ErrQueueEmpty) && op == OperationReserve:
		return "queue is empty, nothing reserved"
	case errors.Is(err, domain.ErrStackFull):
		return "reserve stack is full, nothing reserved"
	case errors.Is(err, domain.ErrStackEmpty) && op == OperationUseReserved:
		return "reserve stack is empty, nothing to use"
	case errors.Is(err, domain.ErrQueueEmpty), errors.Is(err, domain.ErrStackEmpty):
		return fmt.Sprintf("nothing to swap: %v", err)
	case errors.Is(err, domain.ErrInsufficientElements):
		return fmt.Sprintf("triple swap needs 3 pieces in both queue and stack: %v", err)
	case errors.Is(err, domain.ErrQueueFull):
		return "queue is full, nothing enqueued"
	default:
		return fmt.Sprintf("%s failed: %v", op, err)
	}
}

func joinPieces(pieces []domain.Piece) string {
	parts := make([]string, 0, len(pieces))
	for _, p := range pieces {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}
