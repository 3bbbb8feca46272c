package rng

// Generator provides the random draws the engine needs
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Float64 will return a random number in the half-open interval [0.0, 1.0)
	Float64() float64
}
