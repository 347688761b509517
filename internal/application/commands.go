package application

import (
	"fmt"
	"strings"
)

type Operation string

const (
	OperationPlay          Operation = "play"
	OperationReserve       Operation = "reserve"
	OperationUseReserved   Operation = "use_reserved"
	OperationSwapFrontTop  Operation = "swap_front_top"
	OperationSwapTriple    Operation = "swap_triple"
	OperationManualEnqueue Operation = "manual_enqueue"
)

func (o Operation) Valid() bool {
	switch o {
	case OperationPlay, OperationReserve, OperationUseReserved, OperationSwapFrontTop, OperationSwapTriple, OperationManualEnqueue:
		return true
	default:
		return false
	}
}

// Mode selects the command set a session offers.
type Mode string

const (
	// ModeMinimal offers Play and ManualEnqueue only, with no refill.
	ModeMinimal Mode = "minimal"
	// ModeFull offers the five queue/stack operations with refill.
	ModeFull Mode = "full"
)

func ParseMode(raw string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case ModeMinimal, ModeFull:
		return mode, nil
	case "":
		return ModeFull, nil
	default:
		return "", fmt.Errorf("unsupported session mode %q", raw)
	}
}

// Operations lists the operations available in the mode, in menu order.
func (m Mode) Operations() []Operation {
	if m == ModeMinimal {
		return []Operation{OperationPlay, OperationManualEnqueue}
	}

	return []Operation{
		OperationPlay,
		OperationReserve,
		OperationUseReserved,
		OperationSwapFrontTop,
		OperationSwapTriple,
	}
}

func (m Mode) Allows(op Operation) bool {
	for _, candidate := range m.Operations() {
		if candidate == op {
			return true
		}
	}
	return false
}

type SessionConfig struct {
	Mode          Mode
	QueueCapacity int
	StackCapacity int
	// FirstID is the id given to the first generated piece.
	FirstID uint64
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Mode:          ModeFull,
		QueueCapacity: 5,
		StackCapacity: 3,
	}
}
