package feedforward

import "bytes"
import "math"
import "math/rand"
import "path/filepath"
import "testing"

import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/emotion/layer/full"
import "github.com/neurlang/emotion/layer/relu"
import "github.com/neurlang/emotion/loss"

func smallNet(seed int64) *FeedforwardNetwork {
	rng := rand.New(rand.NewSource(seed))
	var net FeedforwardNetwork
	net.NewLayer(full.MustNew(5, 6, rng))
	net.NewLayer(relu.New(6))
	net.NewLayer(full.MustNew(6, 3, rng))
	return &net
}

func batch(seed int64, n int) (inputs [][]float64, targets []int) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		in := make([]float64, 5)
		for j := range in {
			in[j] = rng.NormFloat64()
		}
		inputs = append(inputs, in)
		targets = append(targets, rng.Intn(3))
	}
	return
}

func TestNewLayerMismatchPanics(t *testing.T) {
	var net FeedforwardNetwork
	net.NewLayer(full.MustNew(4, 3, nil))
	assert.Panics(t, func() { net.NewLayer(relu.New(4)) })
	assert.Equal(t, 1, net.LenLayers())
}

func TestSizesAndLen(t *testing.T) {
	net := smallNet(1)
	in, out := net.Sizes()
	assert.Equal(t, 5, in)
	assert.Equal(t, 3, out)
	assert.Equal(t, 5*6+6+6*3+3, net.Len())
	assert.Len(t, net.Params(), 4)
}

func TestBackpropMatchesNumericGradient(t *testing.T) {
	net := smallNet(2)
	inputs, targets := batch(3, 7)
	ce := loss.CrossEntropy{}

	b := net.Backprop(inputs, targets, ce, 3)
	mean := func() float64 {
		return net.Evaluate(inputs, targets, ce, 1).Loss / float64(len(inputs))
	}
	const eps = 1e-6
	for p, param := range net.Params() {
		for i := range param.Data {
			orig := param.Data[i]
			param.Data[i] = orig + eps
			plus := mean()
			param.Data[i] = orig - eps
			minus := mean()
			param.Data[i] = orig
			require.InDelta(t, (plus-minus)/(2*eps), b.Grads[p][i], 1e-5, "%s[%d]", param.Name, i)
		}
	}
}

func TestBackpropIndependentOfThreads(t *testing.T) {
	net := smallNet(4)
	inputs, targets := batch(5, 11)
	one := net.Backprop(inputs, targets, loss.CrossEntropy{}, 1)
	many := net.Backprop(inputs, targets, loss.CrossEntropy{}, 4)

	assert.InDelta(t, one.Loss, many.Loss, 1e-9)
	assert.Equal(t, one.Correct, many.Correct)
	assert.Equal(t, one.Predicted, many.Predicted)
	for i := range one.Grads {
		assert.InDeltaSlice(t, one.Grads[i], many.Grads[i], 1e-12)
	}
}

func TestEvaluateCountsCorrect(t *testing.T) {
	net := smallNet(6)
	inputs, _ := batch(7, 9)
	targets := make([]int, len(inputs))
	for i, in := range inputs {
		targets[i] = net.Predict(in)
	}
	b := net.Evaluate(inputs, targets, loss.CrossEntropy{}, 2)
	assert.Equal(t, len(inputs), b.Correct)
	assert.Equal(t, targets, b.Predicted)
	assert.Nil(t, b.Grads)
	assert.True(t, b.Loss > 0)
}

func TestWeightsRoundTrip(t *testing.T) {
	net := smallNet(8)
	var buf bytes.Buffer
	require.NoError(t, net.WriteCompressedWeights(&buf))

	other := smallNet(9)
	require.NoError(t, other.ReadCompressedWeights(&buf))
	for i, p := range net.Params() {
		q := other.Params()[i]
		for j := range p.Data {
			// half precision keeps about three decimal digits
			assert.InDelta(t, p.Data[j], q.Data[j], 1e-3*math.Max(1, math.Abs(p.Data[j])))
		}
	}
}

func TestWeightsFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "model.json.lzw")
	net := smallNet(10)
	require.NoError(t, net.WriteCompressedWeightsToFile(name))
	require.NoError(t, smallNet(11).ReadCompressedWeightsFromFile(name))

	err := smallNet(11).ReadCompressedWeightsFromFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWeightsMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, smallNet(12).WriteCompressedWeights(&buf))

	var other FeedforwardNetwork
	other.NewLayer(full.MustNew(5, 3, nil))
	err := other.ReadCompressedWeights(&buf)
	assert.True(t, errors.Is(err, ErrWeightsMismatch))
	for _, v := range other.Params()[0].Data {
		assert.Equal(t, 0.0, v)
	}
}

func TestNewVanillaCNN(t *testing.T) {
	net, err := NewVanillaCNN(40, 31, 8, 1)
	require.NoError(t, err)
	in, out := net.Sizes()
	assert.Equal(t, 40*31, in)
	assert.Equal(t, 8, out)
	assert.Equal(t, 9, net.LenLayers())

	logits := net.Infer(make([]float64, in))
	assert.Len(t, logits, 8)

	_, err = NewVanillaCNN(3, 31, 8, 1)
	assert.Error(t, err)
	_, err = NewVanillaCNN(40, 31, 1, 1)
	assert.Error(t, err)
}
