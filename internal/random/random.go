package random

import "math/rand/v2"

type Source interface {
	// UniformInt returns an integer in [min, max], both inclusive.
	UniformInt(min, max int) int
}

type PCG struct {
	r *rand.Rand
}

// New seeds from the runtime's entropy source. The generator is created once,
// unlike reseeding a fresh engine for every draw.
func New() *PCG {
	return &PCG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func NewSeeded(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *PCG) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.r.IntN(max-min+1)
}

// Fixed replays Values in order and wraps around. Values outside [min, max]
// are clamped so callers always see an in-range result.
type Fixed struct {
	Values []int
	next   int
}

func (f *Fixed) UniformInt(min, max int) int {
	if len(f.Values) == 0 {
		return min
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
