package ports

import (
	"math/rand/v2"
	"time"
)

// RandomSource picks an integer uniformly from [0, n).
type RandomSource interface {
	IntN(n int) int
}

type SystemRandom struct {
	rng *rand.Rand
}

var _ RandomSource = SystemRandom{}

// NewSystemRandom returns a PCG-backed source. A zero seed draws one from
// the wall clock.
func NewSystemRandom(seed uint64) SystemRandom {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return SystemRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r SystemRandom) IntN(n int) int {
	return r.rng.IntN(n)
}
