package application

import (
	"github.com/bnema/tetris-stack/internal/domain"
	"github.com/bnema/tetris-stack/internal/ports"
)

// Generator produces pieces with strictly increasing ids. It is the only
// owner of the id counter.
type Generator struct {
	rnd  ports.RandomSource
	next domain.PieceID
}

func NewGenerator(rnd ports.RandomSource, firstID domain.PieceID) *Generator {
	if rnd == nil {
		rnd = ports.NewSystemRandom(0)
	}

	return &Generator{rnd: rnd, next: firstID}
}

func (g *Generator) Next() domain.Piece {
	p := domain.Piece{
		Kind: domain.Kinds[g.rnd.IntN(len(domain.Kinds))],
		ID:   g.next,
	}
	g.next++
	return p
}

// Peek returns the id the next generated piece will carry.
func (g *Generator) Peek() domain.PieceID {
	return g.next
}
