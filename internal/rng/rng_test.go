package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded(t *testing.T) {
	a := assert.New(t)

	g1 := Seeded(42)
	g2 := Seeded(42)
	for i := 0; i < 100; i++ {
		a.Equal(g1.Intn(52), g2.Intn(52))
	}
}

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	g := Crypto{}
	for i := 0; i < 100; i++ {
		n := g.Intn(10)
		a.GreaterOrEqual(n, 0)
		a.Less(n, 10)
	}
}
