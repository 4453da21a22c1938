package builtins

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"unidad/internal/value"
)

// rng is lazily initialized on first use, matching the reference
// builtin's static GRand* created on first call rather than at process
// start.
var (
	rngOnce sync.Once
	rng     *rand.Rand
)

func ensureRNG() {
	rngOnce.Do(func() {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
}

// Random returns a dimensionless float64 in [0, 1), matching
// unidad_builtin_random.
func Random() *value.Number {
	ensureRNG()
	return value.NewFloat(rng.Float64())
}

// Floor returns an integer: n unchanged if already int-backed, else
// math.Floor cast to int64, matching floor()'s "identity for integers,
// floor then cast for doubles" contract. The unit is preserved either
// way.
func Floor(n *value.Number) *value.Number {
	if n.NumKind == value.NumInt64 {
		return value.NewIntUnit(n.I, n.Unit)
	}
	return value.NewIntUnit(int64(math.Floor(n.F)), n.Unit)
}
