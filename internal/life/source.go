package life

// Source supplies uniform pseudo-random floats in [0, 1).
// *math/rand/v2.Rand satisfies it; tests can pass a fixed sequence.
type Source interface {
	Float64() float64
}
