package application

import (
	"errors"
	"fmt"

	"github.com/bnema/tetris-stack/internal/domain"
	"github.com/bnema/tetris-stack/internal/ports"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

const tripleSwapWidth = 3

var (
	ErrOperationUnavailable = errors.New("operation unavailable in session mode")
	ErrUnknownOperation     = errors.New("unknown operation")
)

// Service owns one session: the upcoming-piece queue, the reserve stack
// and the piece generator. It is not safe for concurrent use.
type Service struct {
	mode   Mode
	queue  *domain.Queue
	stack  *domain.Stack
	gen    *Generator
	logger *zap.Logger
}

// NewService builds a session and fills the queue to capacity.
func NewService(cfg SessionConfig, rnd ports.RandomSource, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}

	queue, err := domain.NewQueue(cfg.QueueCapacity)
	if err != nil {
		return nil, fmt.Errorf("create queue: %w", err)
	}
	stack, err := domain.NewStack(cfg.StackCapacity)
	if err != nil {
		return nil, fmt.Errorf("create stack: %w", err)
	}

	s := &Service{
		mode:   mode,
		queue:  queue,
		stack:  stack,
		gen:    NewGenerator(rnd, domain.PieceID(cfg.FirstID)),
		logger: logger,
	}

	for !s.queue.IsFull() {
		s.mustEnqueue(OperationManualEnqueue, s.gen.Next())
	}

	s.logger.Info("session started",
		zap.String("mode", string(s.mode)),
		zap.Int("queue_capacity", queue.Cap()),
		zap.Int("stack_capacity", stack.Cap()),
		zap.Uint64("next_id", uint64(s.gen.Peek())),
	)

	return s, nil
}

func (s *Service) Mode() Mode {
	return s.mode
}

func (s *Service) Board() Board {
	return Board{
		Mode:          s.mode,
		Queue:         s.queue.Snapshot(),
		Stack:         s.stack.Snapshot(),
		QueueCapacity: s.queue.Cap(),
		StackCapacity: s.stack.Cap(),
		NextID:        s.gen.Peek(),
	}
}

// Execute runs op if the session mode offers it.
func (s *Service) Execute(op Operation) Outcome {
	if !op.Valid() {
		return s.record(Outcome{Operation: op, Err: fmt.Errorf("%s: %w", op, ErrUnknownOperation)})
	}
	if !s.mode.Allows(op) {
		return s.record(Outcome{Operation: op, Err: fmt.Errorf("%s: %w", op, ErrOperationUnavailable)})
	}

	switch op {
	case OperationPlay:
		return s.Play()
	case OperationReserve:
		return s.Reserve()
	case OperationUseReserved:
		return s.UseReserved()
	case OperationSwapFrontTop:
		return s.SwapFrontTop()
	case OperationSwapTriple:
		return s.SwapTriple()
	case OperationManualEnqueue:
		return s.ManualEnqueue()
	default:
		return s.record(Outcome{Operation: op, Err: fmt.Errorf("%s: %w", op, ErrUnknownOperation)})
	}
}

// Play removes the queue front. In full mode a new piece is generated
// afterwards even when the queue was empty, through the overwrite path.
func (s *Service) Play() Outcome {
	out := Outcome{Operation: OperationPlay}

	played, err := s.queue.Dequeue()
	if err != nil {
		out.Err = err
		if s.mode == ModeFull {
			s.overwriteRefill(&out)
		}
		return s.record(out)
	}
	out.Played = &played

	if s.mode == ModeFull {
		generated := s.gen.Next()
		s.mustEnqueue(OperationPlay, generated)
		out.Generated = &generated
	}

	return s.record(out)
}

// Reserve moves the queue front onto the stack and refills the queue.
func (s *Service) Reserve() Outcome {
	out := Outcome{Operation: OperationReserve}
	if s.stack.IsFull() {
		out.Err = domain.ErrStackFull
		return s.record(out)
	}

	reserved, err := s.queue.Dequeue()
	if err != nil {
		out.Err = err
		s.overwriteRefill(&out)
		return s.record(out)
	}

	if err := s.stack.Push(reserved); err != nil {
		invariant(OperationReserve, err)
	}
	out.Reserved = &reserved

	generated := s.gen.Next()
	s.mustEnqueue(OperationReserve, generated)
	out.Generated = &generated

	return s.record(out)
}

// UseReserved pops the stack top. The queue is left untouched.
func (s *Service) UseReserved() Outcome {
	out := Outcome{Operation: OperationUseReserved}

	used, err := s.stack.Pop()
	if err != nil {
		out.Err = err
		return s.record(out)
	}
	out.Used = &used

	return s.record(out)
}

func (s *Service) SwapFrontTop() Outcome {
	out := Outcome{Operation: OperationSwapFrontTop}

	front, ok := s.queue.PeekFront()
	if !ok {
		out.Err = domain.ErrQueueEmpty
		return s.record(out)
	}
	top, ok := s.stack.PeekTop()
	if !ok {
		out.Err = domain.ErrStackEmpty
		return s.record(out)
	}

	s.mustSet(OperationSwapFrontTop, s.queue.SetAt(0, top))
	s.mustSet(OperationSwapFrontTop, s.stack.SetAt(s.stack.Len()-1, front))
	out.SwappedQueue = []domain.Piece{front}
	out.SwappedStack = []domain.Piece{top}

	return s.record(out)
}

// SwapTriple exchanges the three front queue pieces with the three stacked
// pieces: queue offsets 0,1,2 receive stack top, middle, base, and the old
// queue front becomes the new stack top.
func (s *Service) SwapTriple() Outcome {
	out := Outcome{Operation: OperationSwapTriple}
	if s.queue.Len() < tripleSwapWidth || s.stack.Len() < tripleSwapWidth {
		out.Err = fmt.Errorf("queue has %d, stack has %d: %w", s.queue.Len(), s.stack.Len(), domain.ErrInsufficientElements)
		return s.record(out)
	}

	var fromQueue, fromStack [tripleSwapWidth]domain.Piece
	for i := 0; i < tripleSwapWidth; i++ {
		fromQueue[i], _ = s.queue.PeekAt(i)
		fromStack[i], _ = s.stack.PeekAt(i)
	}

	for i := 0; i < tripleSwapWidth; i++ {
		s.mustSet(OperationSwapTriple, s.queue.SetAt(i, fromStack[tripleSwapWidth-1-i]))
		s.mustSet(OperationSwapTriple, s.stack.SetAt(i, fromQueue[i]))
	}
	out.SwappedQueue = fromQueue[:]
	out.SwappedStack = fromStack[:]

	return s.record(out)
}

// ManualEnqueue generates a piece and appends it. A full queue consumes
// no id.
func (s *Service) ManualEnqueue() Outcome {
	out := Outcome{Operation: OperationManualEnqueue}
	if s.queue.IsFull() {
		out.Err = domain.ErrQueueFull
		return s.record(out)
	}

	generated := s.gen.Next()
	s.mustEnqueue(OperationManualEnqueue, generated)
	out.Generated = &generated

	return s.record(out)
}

func (s *Service) overwriteRefill(out *Outcome) {
	generated := s.gen.Next()
	result := s.queue.EnqueueOverwrite(generated)
	out.Generated = &generated
	if result.DiscardedOldest {
		discarded := result.Discarded
		out.Discarded = &discarded
	}
}

func (s *Service) mustEnqueue(op Operation, p domain.Piece) {
	if err := s.queue.Enqueue(p); err != nil {
		invariant(op, err)
	}
}

func (s *Service) mustSet(op Operation, err error) {
	if err != nil {
		invariant(op, err)
	}
}

func (s *Service) record(out Outcome) Outcome {
	fields := []zap.Field{
		zap.String("operation", string(out.Operation)),
		zap.Bool("ok", out.OK()),
		zap.Int("queue_len", s.queue.Len()),
		zap.Int("stack_len", s.stack.Len()),
	}
	if out.Err != nil {
		fields = append(fields, zap.String("reason", out.Err.Error()))
	}
	if out.Generated != nil {
		fields = append(fields, zap.Uint64("generated_id", uint64(out.Generated.ID)))
	}
	s.logger.Debug("operation applied", fields...)

	if out.Discarded != nil {
		s.logger.Warn("refill discarded oldest piece",
			zap.String("operation", string(out.Operation)),
			zap.Uint64("discarded_id", uint64(out.Discarded.ID)),
		)
	}

	return out
}

// invariant reports a defect: a primitive failed after its precondition
// had already been checked.
func invariant(op Operation, err error) {
	panic(pkgerrors.Wrapf(domain.ErrInvariantViolation, "%s: %v", op, err))
}
