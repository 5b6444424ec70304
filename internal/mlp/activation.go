package mlp

import "math"

// Activation pairs an element-wise activation function with its
// derivative. Both are pure functions of a pre-activation value; the
// derivative is always evaluated at the pre-activation, not at the
// activated output.
type Activation struct {
	F     func(float64) float64
	Prime func(float64) float64
}

// Sigmoid returns the logistic activation pair:
//
//	σ(x)  = 1 / (1 + exp(-x))
//	σ'(x) = σ(x) * (1 - σ(x))
//
// This is the default for both layers of a new network.
func Sigmoid() Activation {
	sigma := func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	return Activation{
		F: sigma,
		Prime: func(x float64) float64 {
			s := sigma(x)
			return s * (1.0 - s)
		},
	}
}

// ReLU returns the rectified-linear activation pair:
//
//	f(x)  = max(0, x)
//	f'(x) = 1 if x > 0, else 0
func ReLU() Activation {
	return Activation{
		F: func(x float64) float64 {
			return math.Max(0, x)
		},
		Prime: func(x float64) float64 {
			if x > 0 {
				return 1
			}
			return 0
		},
	}
}

// Identity returns the linear pass-through pair, f(x) = x with
// derivative 1.
func Identity() Activation {
	return Activation{
		F:     func(x float64) float64 { return x },
		Prime: func(float64) float64 { return 1 },
	}
}
