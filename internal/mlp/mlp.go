// Package mlp implements a feedforward neural network with exactly one
// hidden layer, trained online by full-batch gradient descent with
// backpropagation.
//
// The network is parameterized over the caller's label type T through
// two opaque functions: decode (output vector → T), supplied once at
// construction, and encode (T → desired output vector), supplied per
// training call. The network never inspects T itself.
//
// A Network is not safe for concurrent use: Train mutates the
// parameters in place, so callers must serialize Train against any
// other call on the same instance.
package mlp

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/born-ml/feedforward/internal/mat"
)

// Config holds the construction parameters for a Network.
type Config struct {
	InputSize  int   // number of input units (must be > 0)
	HiddenSize int   // number of hidden units (must be > 0)
	OutputSize int   // number of output units (must be > 0)
	Seed       int64 // seed for parameter initialization; 0 derives one from the clock
}

// Example is one labeled training input.
type Example[T any] struct {
	Input mat.Vector
	Label T
}

// Parameters is a read-only snapshot of the trainable state, for
// inspection and printing. The fields are deep copies; mutating them
// has no effect on the network.
type Parameters struct {
	InputWeights  *mat.Matrix // HiddenSize × InputSize
	HiddenBiases  mat.Vector  // length HiddenSize
	HiddenWeights *mat.Matrix // OutputSize × HiddenSize
	OutputBiases  mat.Vector  // length OutputSize
}

// Network is a single-hidden-layer feedforward network producing labels
// of type T.
//
// Layer computation, where σ_h and σ_o are the hidden and output
// activation pairs (logistic sigmoid by default):
//
//	hidden = σ_h(InputWeights · input + HiddenBiases)
//	output = σ_o(HiddenWeights · hidden + OutputBiases)
//	label  = decode(output)
type Network[T any] struct {
	inputSize  int
	hiddenSize int
	outputSize int

	inputWeights  *mat.Matrix // HiddenSize × InputSize
	hiddenBiases  mat.Vector  // length HiddenSize
	hiddenWeights *mat.Matrix // OutputSize × HiddenSize
	outputBiases  mat.Vector  // length OutputSize

	hiddenAct Activation
	outputAct Activation

	decode func(mat.Vector) T
}

// New constructs a Network with the given layer sizes and decode
// function.
//
// All four parameter blocks are filled with independent uniform draws
// from [0, 1), produced by a single generator seeded from cfg.Seed and
// threaded through construction. Both activation pairs default to the
// logistic sigmoid; use SetHiddenActivation and SetOutputActivation to
// swap them.
//
// Returns ErrInvalidSize if any layer size is not positive.
func New[T any](cfg Config, decode func(mat.Vector) T) (*Network[T], error) {
	if cfg.InputSize <= 0 || cfg.HiddenSize <= 0 || cfg.OutputSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "layer sizes %d/%d/%d", cfg.InputSize, cfg.HiddenSize, cfg.OutputSize)
	}
	if decode == nil {
		return nil, errors.New("decode function is nil")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // math/rand is fine for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(seed))
	uniform := func(int, int) float64 { return rng.Float64() }

	inputWeights, err := mat.GenerateMatrix(cfg.HiddenSize, cfg.InputSize, uniform)
	if err != nil {
		return nil, err
	}
	hiddenWeights, err := mat.GenerateMatrix(cfg.OutputSize, cfg.HiddenSize, uniform)
	if err != nil {
		return nil, err
	}

	return &Network[T]{
		inputSize:     cfg.InputSize,
		hiddenSize:    cfg.HiddenSize,
		outputSize:    cfg.OutputSize,
		inputWeights:  inputWeights,
		hiddenBiases:  mat.Generate(cfg.HiddenSize, func(int) float64 { return rng.Float64() }),
		hiddenWeights: hiddenWeights,
		outputBiases:  mat.Generate(cfg.OutputSize, func(int) float64 { return rng.Float64() }),
		hiddenAct:     Sigmoid(),
		outputAct:     Sigmoid(),
		decode:        decode,
	}, nil
}

// InputSize returns the number of input units.
func (n *Network[T]) InputSize() int { return n.inputSize }

// HiddenSize returns the number of hidden units.
func (n *Network[T]) HiddenSize() int { return n.hiddenSize }

// OutputSize returns the number of output units.
func (n *Network[T]) OutputSize() int { return n.outputSize }

// SetHiddenActivation replaces the hidden-layer activation pair. It
// applies to all subsequent Infer and Train calls.
func (n *Network[T]) SetHiddenActivation(a Activation) { n.hiddenAct = a }

// SetOutputActivation replaces the output-layer activation pair.
func (n *Network[T]) SetOutputActivation(a Activation) { n.outputAct = a }

// Parameters returns a deep-copy snapshot of the current trainable
// state.
func (n *Network[T]) Parameters() Parameters {
	return Parameters{
		InputWeights:  n.inputWeights.Clone(),
		HiddenBiases:  n.hiddenBiases.Clone(),
		HiddenWeights: n.hiddenWeights.Clone(),
		OutputBiases:  n.outputBiases.Clone(),
	}
}

// pass holds the intermediate vectors of one forward pass. Training
// needs the pre-activations to evaluate the activation derivatives.
type pass struct {
	hiddenPre mat.Vector
	hidden    mat.Vector
	outputPre mat.Vector
	output    mat.Vector
}

func (n *Network[T]) forward(input mat.Vector) (*pass, error) {
	if len(input) != n.inputSize {
		return nil, errors.Wrapf(ErrDimensionMismatch, "input length %d, network expects %d", len(input), n.inputSize)
	}

	weighted, err := n.inputWeights.MulVec(input)
	if err != nil {
		return nil, err
	}
	hiddenPre, err := weighted.Add(n.hiddenBiases)
	if err != nil {
		return nil, err
	}
	hidden := hiddenPre.Apply(n.hiddenAct.F)

	weighted, err = n.hiddenWeights.MulVec(hidden)
	if err != nil {
		return nil, err
	}
	outputPre, err := weighted.Add(n.outputBiases)
	if err != nil {
		return nil, err
	}
	output := outputPre.Apply(n.outputAct.F)

	return &pass{
		hiddenPre: hiddenPre,
		hidden:    hidden,
		outputPre: outputPre,
		output:    output,
	}, nil
}

// Infer runs the forward pass on input and decodes the output vector
// into a label.
//
// Infer is a pure function of the current parameters and input: it
// never mutates the network, and repeated calls with the same input
// yield identical results until the next Train call.
//
// Returns ErrDimensionMismatch if the input length differs from
// InputSize.
func (n *Network[T]) Infer(input mat.Vector) (T, error) {
	p, err := n.forward(input)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "infer")
	}
	return n.decode(p.output), nil
}

// Train processes the whole batch and applies exactly one
// gradient-descent update to the parameters.
//
// For each example the forward pass is recomputed and the delta-rule
// error signals are formed:
//
//	outputErr[i] = σ_o'(outputPre[i]) * (desired[i] - output[i])
//	hiddenErr[j] = σ_h'(hiddenPre[j]) * (outputErr · HiddenWeights column j)
//
// The per-example deltas are accumulated, averaged over the batch, and
// added to the parameters. There is no learning-rate factor: the mean
// delta is applied with step 1.
//
// encode maps a label to its desired output vector; it must produce
// vectors of length OutputSize.
//
// Returns ErrEmptyBatch for an empty batch and ErrDimensionMismatch for
// any input or encoded label of the wrong length. On error the
// parameters are left untouched; the update is applied only after every
// example has been processed.
func (n *Network[T]) Train(batch []Example[T], encode func(T) mat.Vector) error {
	if len(batch) == 0 {
		return errors.Wrap(ErrEmptyBatch, "train")
	}
	if encode == nil {
		return errors.New("train: encode function is nil")
	}

	var (
		accInputWeights  = mustMatrix(mat.NewMatrix(n.hiddenSize, n.inputSize))
		accHiddenBiases  = mat.Zeros(n.hiddenSize)
		accHiddenWeights = mustMatrix(mat.NewMatrix(n.outputSize, n.hiddenSize))
		accOutputBiases  = mat.Zeros(n.outputSize)
	)

	for i, ex := range batch {
		p, err := n.forward(ex.Input)
		if err != nil {
			return errors.Wrapf(err, "train: example %d", i)
		}

		desired := encode(ex.Label)
		if len(desired) != n.outputSize {
			return errors.Wrapf(ErrDimensionMismatch, "train: example %d: encoded label length %d, network expects %d", i, len(desired), n.outputSize)
		}

		outputErr := mat.Generate(n.outputSize, func(j int) float64 {
			return n.outputAct.Prime(p.outputPre[j]) * (desired[j] - p.output[j])
		})
		accOutputBiases = mustVector(accOutputBiases.Add(outputErr))
		accHiddenWeights = mustMatrix(accHiddenWeights.Add(mat.Outer(outputErr, p.hidden)))

		hiddenErr := mat.Generate(n.hiddenSize, func(j int) float64 {
			back := mustFloat(outputErr.Dot(n.hiddenWeights.Col(j)))
			return n.hiddenAct.Prime(p.hiddenPre[j]) * back
		})
		accHiddenBiases = mustVector(accHiddenBiases.Add(hiddenErr))
		accInputWeights = mustMatrix(accInputWeights.Add(mat.Outer(hiddenErr, ex.Input)))
	}

	// Mean over the batch, added in place. Shapes are fixed by
	// construction, so these adds cannot fail.
	scale := 1.0 / float64(len(batch))
	n.outputBiases = mustVector(n.outputBiases.Add(accOutputBiases.Scale(scale)))
	n.hiddenBiases = mustVector(n.hiddenBiases.Add(accHiddenBiases.Scale(scale)))
	n.hiddenWeights = mustMatrix(n.hiddenWeights.Add(accHiddenWeights.Scale(scale)))
	n.inputWeights = mustMatrix(n.inputWeights.Add(accInputWeights.Scale(scale)))
	return nil
}

// must helpers for operations whose shapes are guaranteed by
// construction; a failure here is a bug in this package.

func mustMatrix(m *mat.Matrix, err error) *mat.Matrix {
	if err != nil {
		panic(err)
	}
	return m
}

func mustVector(v mat.Vector, err error) mat.Vector {
	if err != nil {
		panic(err)
	}
	return v
}

func mustFloat(f float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return f
}
