package vmath

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntnExcept returns a value in [0, n) different from skip when n > 1
// Draws from n-1 candidates and shifts past skip so the result stays uniform
func (r *FastRand) IntnExcept(n, skip int) int {
	if n <= 1 {
		return 0
	}
	if skip < 0 || skip >= n {
		return r.Intn(n)
	}
	v := r.Intn(n - 1)
	if v >= skip {
		v++
	}
	return v
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
