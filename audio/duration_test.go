package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTargetLength(t *testing.T) {
	assert.Equal(t, 48000, TargetLength(3, 16000))
	assert.Equal(t, 2, TargetLength(0.5, 5)) // 2.5 rounds to even
	assert.Equal(t, 4, TargetLength(0.5, 7)) // 3.5 rounds to even
	assert.Equal(t, 0, TargetLength(0, 16000))
}

func TestNormalizeDurationTruncates(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sr := rapid.IntRange(1, 1000).Draw(rt, "sr")
		seconds := rapid.Float64Range(0, 2).Draw(rt, "seconds")
		target := TargetLength(seconds, sr)
		extra := rapid.IntRange(1, 500).Draw(rt, "extra")
		in := make([]float64, target+extra)
		for i := range in {
			in[i] = float64(i + 1)
		}

		out := NormalizeDuration(in, sr, seconds)

		if len(out) != target {
			rt.Fatalf("length %d, want %d", len(out), target)
		}
		for i := range out {
			if out[i] != in[i] {
				rt.Fatalf("sample %d changed", i)
			}
		}
	})
}

func TestNormalizeDurationPads(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sr := rapid.IntRange(1, 1000).Draw(rt, "sr")
		seconds := rapid.Float64Range(0.01, 2).Draw(rt, "seconds")
		target := TargetLength(seconds, sr)
		if target == 0 {
			rt.Skip("zero target")
		}
		n := rapid.IntRange(0, target-1).Draw(rt, "n")
		in := make([]float64, n)
		for i := range in {
			in[i] = rapid.Float64Range(-1, 1).Draw(rt, "sample")
		}

		out := NormalizeDuration(in, sr, seconds)

		if len(out) != target {
			rt.Fatalf("length %d, want %d", len(out), target)
		}
		for i := 0; i < n; i++ {
			if out[i] != in[i] {
				rt.Fatalf("prefix sample %d changed", i)
			}
		}
		for i := n; i < target; i++ {
			if out[i] != 0 {
				rt.Fatalf("padding sample %d is %v", i, out[i])
			}
		}
	})
}

func TestNormalizeDurationPassesThrough(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sr := rapid.IntRange(1, 1000).Draw(rt, "sr")
		seconds := rapid.Float64Range(0, 2).Draw(rt, "seconds")
		in := make([]float64, TargetLength(seconds, sr))
		for i := range in {
			in[i] = rapid.Float64Range(-1, 1).Draw(rt, "sample")
		}

		out := NormalizeDuration(in, sr, seconds)

		if len(out) != len(in) {
			rt.Fatalf("length %d, want %d", len(out), len(in))
		}
		for i := range in {
			if out[i] != in[i] {
				rt.Fatalf("sample %d changed", i)
			}
		}
	})
}

func TestNormalizeDurationDoesNotAlias(t *testing.T) {
	in := []float64{1, 2, 3}
	out := NormalizeDuration(in, 2, 1)
	require.Len(t, out, 2)
	out = append(out, 9)
	assert.Equal(t, []float64{1, 2, 3}, in)
}
