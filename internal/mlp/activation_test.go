package mlp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigmoid(t *testing.T) {
	a := Sigmoid()

	assert.InDelta(t, 0.5, a.F(0), 1e-12)
	assert.InDelta(t, 1.0/(1.0+math.Exp(-2)), a.F(2), 1e-12)

	// σ(-x) = 1 - σ(x)
	assert.InDelta(t, 1.0-a.F(3), a.F(-3), 1e-12)

	// σ'(x) = σ(x)(1-σ(x)), maximal at 0
	assert.InDelta(t, 0.25, a.Prime(0), 1e-12)
	s := a.F(1.5)
	assert.InDelta(t, s*(1-s), a.Prime(1.5), 1e-12)
}

func TestReLU(t *testing.T) {
	a := ReLU()

	assert.Equal(t, 0.0, a.F(-1))
	assert.Equal(t, 0.0, a.F(0))
	assert.Equal(t, 2.5, a.F(2.5))

	assert.Equal(t, 0.0, a.Prime(-1))
	assert.Equal(t, 0.0, a.Prime(0))
	assert.Equal(t, 1.0, a.Prime(0.001))
}

func TestIdentity(t *testing.T) {
	a := Identity()

	assert.Equal(t, -3.25, a.F(-3.25))
	assert.Equal(t, 1.0, a.Prime(-3.25))
}
