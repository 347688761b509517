package domain

import "fmt"

type Kind byte

const (
	KindI Kind = 'I'
	KindO Kind = 'O'
	KindT Kind = 'T'
	KindL Kind = 'L'
)

// Kinds is the fixed symbol set pieces are drawn from, in draw order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindL}

func (k Kind) Valid() bool {
	switch k {
	case KindI, KindO, KindT, KindL:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(rune(k))
}

type PieceID uint64

type Piece struct {
	Kind Kind
	ID   PieceID
}

// String renders the piece as "[<kind> <id>]".
func (p Piece) String() string {
	return fmt.Sprintf("[%s %d]", p.Kind, p.ID)
}
