package mlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/feedforward/internal/mat"
)

// Boolean classification fixtures shared across the tests: index 0
// larger means true, encode(true) = [1, 0].

func decodeBool(output mat.Vector) bool {
	return output[0] > output[1]
}

func encodeBool(label bool) mat.Vector {
	if label {
		return mat.New(1, 0)
	}
	return mat.New(0, 1)
}

func newBoolNet(t *testing.T, cfg Config) *Network[bool] {
	t.Helper()
	net, err := New(cfg, decodeBool)
	require.NoError(t, err)
	return net
}

func assertParamsEqual(t *testing.T, expected, actual Parameters) {
	t.Helper()
	assert.True(t, expected.InputWeights.Equal(actual.InputWeights), "input weights differ")
	assert.True(t, expected.HiddenBiases.Equal(actual.HiddenBiases), "hidden biases differ")
	assert.True(t, expected.HiddenWeights.Equal(actual.HiddenWeights), "hidden weights differ")
	assert.True(t, expected.OutputBiases.Equal(actual.OutputBiases), "output biases differ")
}

func TestNewShapes(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 5, HiddenSize: 3, OutputSize: 2, Seed: 1})

	p := net.Parameters()
	assert.Equal(t, 3, p.InputWeights.Rows())
	assert.Equal(t, 5, p.InputWeights.Cols())
	assert.Equal(t, 3, p.HiddenBiases.Len())
	assert.Equal(t, 2, p.HiddenWeights.Rows())
	assert.Equal(t, 3, p.HiddenWeights.Cols())
	assert.Equal(t, 2, p.OutputBiases.Len())
}

func TestNewInitializationRange(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 10, HiddenSize: 10, OutputSize: 2, Seed: 7})

	p := net.Parameters()
	inRange := func(x float64) {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}
	for r := 0; r < p.InputWeights.Rows(); r++ {
		for c := 0; c < p.InputWeights.Cols(); c++ {
			inRange(p.InputWeights.At(r, c))
		}
	}
	for _, x := range p.HiddenBiases {
		inRange(x)
	}

	// Independent draws, not one shared scalar.
	assert.NotEqual(t, p.InputWeights.At(0, 0), p.InputWeights.At(0, 1))
}

func TestNewInvalidSize(t *testing.T) {
	for _, cfg := range []Config{
		{InputSize: 0, HiddenSize: 3, OutputSize: 2},
		{InputSize: 3, HiddenSize: -1, OutputSize: 2},
		{InputSize: 3, HiddenSize: 3, OutputSize: 0},
	} {
		_, err := New(cfg, decodeBool)
		require.ErrorIs(t, err, ErrInvalidSize, "config %+v", cfg)
	}
}

func TestNewNilDecode(t *testing.T) {
	_, err := New[bool](Config{InputSize: 2, HiddenSize: 2, OutputSize: 2}, nil)
	require.Error(t, err)
}

func TestInferIsPure(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 3, HiddenSize: 4, OutputSize: 2, Seed: 42})
	input := mat.New(0.5, -0.25, 0.75)

	before := net.Parameters()

	first, err := net.forward(input)
	require.NoError(t, err)
	second, err := net.forward(input)
	require.NoError(t, err)

	assert.True(t, first.output.Equal(second.output), "repeated forward passes must be bit-identical")
	assertParamsEqual(t, before, net.Parameters())
}

func TestInferDimensionMismatch(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 3, HiddenSize: 4, OutputSize: 2, Seed: 1})

	_, err := net.Infer(mat.New(1, 2))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTrainEmptyBatch(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 3, HiddenSize: 4, OutputSize: 2, Seed: 1})

	err := net.Train(nil, encodeBool)
	require.ErrorIs(t, err, ErrEmptyBatch)
}

func TestTrainBadInputLeavesParametersUntouched(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 3, HiddenSize: 4, OutputSize: 2, Seed: 1})
	before := net.Parameters()

	batch := []Example[bool]{
		{Input: mat.New(1, 0, 1), Label: true},
		{Input: mat.New(1, 0), Label: false}, // wrong length
	}
	err := net.Train(batch, encodeBool)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assertParamsEqual(t, before, net.Parameters())
}

func TestTrainBadLabelLeavesParametersUntouched(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 3, HiddenSize: 4, OutputSize: 2, Seed: 1})
	before := net.Parameters()

	badEncode := func(label bool) mat.Vector {
		return mat.New(1, 0, 0) // length 3, network expects 2
	}
	err := net.Train([]Example[bool]{{Input: mat.New(1, 0, 1), Label: true}}, badEncode)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assertParamsEqual(t, before, net.Parameters())
}

func TestTrainUpdatesParameters(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 3, HiddenSize: 4, OutputSize: 2, Seed: 1})
	before := net.Parameters()

	err := net.Train([]Example[bool]{{Input: mat.New(1, 0, 1), Label: true}}, encodeBool)
	require.NoError(t, err)

	after := net.Parameters()
	assert.False(t, before.InputWeights.Equal(after.InputWeights))
	assert.False(t, before.OutputBiases.Equal(after.OutputBiases))

	// Shape invariants hold across updates.
	assert.Equal(t, 4, after.InputWeights.Rows())
	assert.Equal(t, 3, after.InputWeights.Cols())
	assert.Equal(t, 2, after.HiddenWeights.Rows())
	assert.Equal(t, 4, after.HiddenWeights.Cols())
}

func TestTrainSingleExampleReducesError(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 3, HiddenSize: 4, OutputSize: 2, Seed: 3})
	input := mat.New(0.5, -0.25, 0.75)
	desired := encodeBool(true)

	squaredError := func() float64 {
		p, err := net.forward(input)
		require.NoError(t, err)
		sum := 0.0
		for i := range desired {
			d := desired[i] - p.output[i]
			sum += d * d
		}
		return sum
	}

	before := squaredError()
	require.NoError(t, net.Train([]Example[bool]{{Input: input, Label: true}}, encodeBool))
	after := squaredError()

	assert.LessOrEqual(t, after, before, "one update on the example's own gradient must not increase its squared error")
}

func TestDeterminism(t *testing.T) {
	cfg := Config{InputSize: 3, HiddenSize: 4, OutputSize: 2, Seed: 99}
	a := newBoolNet(t, cfg)
	b := newBoolNet(t, cfg)

	assertParamsEqual(t, a.Parameters(), b.Parameters())

	batch := []Example[bool]{
		{Input: mat.New(1, 0, 1), Label: false},
		{Input: mat.New(0, 1, 0), Label: true},
	}
	require.NoError(t, a.Train(batch, encodeBool))
	require.NoError(t, b.Train(batch, encodeBool))

	assertParamsEqual(t, a.Parameters(), b.Parameters())

	input := mat.New(0.25, 0.5, 0.75)
	outA, err := a.Infer(input)
	require.NoError(t, err)
	outB, err := b.Infer(input)
	require.NoError(t, err)
	assert.Equal(t, outA, outB)
}

func TestParametersSnapshotIsDetached(t *testing.T) {
	net := newBoolNet(t, Config{InputSize: 2, HiddenSize: 2, OutputSize: 2, Seed: 5})

	p := net.Parameters()
	p.InputWeights.Set(0, 0, 1234)
	p.HiddenBiases[0] = 1234

	fresh := net.Parameters()
	assert.NotEqual(t, 1234.0, fresh.InputWeights.At(0, 0))
	assert.NotEqual(t, 1234.0, fresh.HiddenBiases[0])
}

func TestActivationSwap(t *testing.T) {
	cfg := Config{InputSize: 2, HiddenSize: 3, OutputSize: 2, Seed: 11}
	sigmoidNet := newBoolNet(t, cfg)
	reluNet := newBoolNet(t, cfg)
	reluNet.SetHiddenActivation(ReLU())
	reluNet.SetOutputActivation(Identity())

	input := mat.New(0.5, -1.5)
	ps, err := sigmoidNet.forward(input)
	require.NoError(t, err)
	pr, err := reluNet.forward(input)
	require.NoError(t, err)

	// Same parameters, different activations: sigmoid output lives in
	// (0, 1), the identity output equals its pre-activation.
	assert.False(t, ps.output.Equal(pr.output))
	assert.True(t, pr.output.Equal(pr.outputPre))
}
