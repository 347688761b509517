package domain

import "errors"

var (
	ErrQueueEmpty           = errors.New("queue is empty")
	ErrQueueFull            = errors.New("queue is full")
	ErrStackEmpty           = errors.New("stack is empty")
	ErrStackFull            = errors.New("stack is full")
	ErrInsufficientElements = errors.New("insufficient elements")
	ErrOffsetOutOfRange     = errors.New("offset out of range")

	// ErrInvariantViolation marks a programming defect, never an expected outcome.
	ErrInvariantViolation = errors.New("internal invariant violated")
)
