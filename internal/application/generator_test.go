package application

import (
	"testing"

	"github.com/bnema/tetris-stack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGeneratorAssignsSequentialIDs(t *testing.T) {
	gen := NewGenerator(&scriptedRandom{values: []int{2, 0, 3}}, 7)

	assert.Equal(t, domain.PieceID(7), gen.Peek())
	assert.Equal(t, domain.Piece{Kind: domain.KindT, ID: 7}, gen.Next())
	assert.Equal(t, domain.Piece{Kind: domain.KindI, ID: 8}, gen.Next())
	assert.Equal(t, domain.Piece{Kind: domain.KindL, ID: 9}, gen.Next())
	assert.Equal(t, domain.PieceID(10), gen.Peek())
}

func TestGeneratorDefaultsToSystemRandom(t *testing.T) {
	gen := NewGenerator(nil, 0)

	for i := 0; i < 32; i++ {
		p := gen.Next()
		assert.True(t, p.Kind.Valid())
		assert.Equal(t, domain.PieceID(i), p.ID)
	}
}
