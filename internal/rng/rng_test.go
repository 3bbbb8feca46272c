package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	c := Crypto{}
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n := c.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
		seen[n] = true
	}

	// with 1,000 draws every value should have appeared
	assert.Equal(t, 10, len(seen))
}

func TestCrypto_Float64(t *testing.T) {
	c := Crypto{}
	for i := 0; i < 1000; i++ {
		f := c.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(52), b.Intn(52))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
