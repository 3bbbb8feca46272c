package util

import (
	"regexp"
	"testing"

	"fourseatpoker/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	rx := regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
	g := rng.NewSeeded(1)
	for i := 0; i < 25; i++ {
		assert.Regexp(t, rx, GetRandomName(g))
	}
}
