package datasets

import (
	"fmt"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("03-01-%02d-01-01-01-%02d.wav", i%8+1, i)
	}
	return out
}

func emotion(name string) (string, error) {
	return name[6:8], nil
}

func checkPartition(t interface{ Fatalf(string, ...any) }, files []string, s Split) {
	seen := make(map[string]string)
	for kind, list := range map[string][]string{"train": s.Train, "valid": s.Valid, "test": s.Test} {
		for _, f := range list {
			if other, ok := seen[f]; ok {
				t.Fatalf("%s in both %s and %s", f, other, kind)
			}
			seen[f] = kind
		}
	}
	if len(seen) != len(files) {
		t.Fatalf("split covers %d of %d files", len(seen), len(files))
	}
	for _, f := range files {
		if _, ok := seen[f]; !ok {
			t.Fatalf("%s missing from split", f)
		}
	}
}

func TestUnweightedSplitSizes(t *testing.T) {
	s, err := UnweightedSplit(names(10), 0.2, 42)
	require.NoError(t, err)
	assert.Len(t, s.Train, 8)
	assert.Len(t, s.Valid, 1)
	assert.Len(t, s.Test, 1)

	// 15 * 0.2 = 3 held out, the first round(1.5) = 2 become validation
	s, err = UnweightedSplit(names(15), 0.2, 42)
	require.NoError(t, err)
	assert.Len(t, s.Train, 12)
	assert.Len(t, s.Valid, 2)
	assert.Len(t, s.Test, 1)

	// 5 held out, round(2.5) = 2 become validation
	s, err = UnweightedSplit(names(25), 0.2, 42)
	require.NoError(t, err)
	assert.Len(t, s.Valid, 2)
	assert.Len(t, s.Test, 3)
}

func TestUnweightedSplitPartitions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 300).Draw(rt, "n")
		testSize := rapid.Float64Range(0.01, 0.49).Draw(rt, "testSize")
		seed := rapid.Int64().Draw(rt, "seed")
		files := names(n)

		s, err := UnweightedSplit(files, testSize, seed)
		if err != nil {
			rt.Fatalf("split: %v", err)
		}
		checkPartition(rt, files, s)
	})
}

func TestWeightedSplitPartitions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(8, 300).Draw(rt, "n")
		testSize := rapid.Float64Range(0.01, 0.4).Draw(rt, "testSize")
		seed := rapid.Int64().Draw(rt, "seed")
		files := names(n)

		s, err := WeightedSplit(files, emotion, testSize, seed)
		if err != nil {
			rt.Fatalf("split: %v", err)
		}
		checkPartition(rt, files, s)
	})
}

func TestWeightedSplitKeepsProportions(t *testing.T) {
	s, err := WeightedSplit(names(800), emotion, 0.2, 7)
	require.NoError(t, err)

	count := func(list []string) map[string]int {
		c := make(map[string]int)
		for _, f := range list {
			l, _ := emotion(f)
			c[l]++
		}
		return c
	}
	train, held := count(s.Train), count(append(append([]string{}, s.Valid...), s.Test...))
	require.Len(t, train, 8)
	for l := range train {
		assert.Equal(t, 80, train[l], l)
		assert.Equal(t, 20, held[l], l)
	}
}

func TestWeightedSplitLabelError(t *testing.T) {
	boom := errors.New("boom")
	_, err := WeightedSplit(names(10), func(string) (string, error) { return "", boom }, 0.2, 1)
	assert.True(t, errors.Is(err, boom))
}

func TestSplitDeterministic(t *testing.T) {
	a, err := UnweightedSplit(names(50), 0.2, 42)
	require.NoError(t, err)
	b, err := UnweightedSplit(names(50), 0.2, 42)
	require.NoError(t, err)
	c, err := UnweightedSplit(names(50), 0.2, 43)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Train, c.Train)
}

func TestSplitInvalidTestSize(t *testing.T) {
	for _, size := range []float64{0, 1, -0.5, 1.5} {
		_, err := UnweightedSplit(names(10), size, 42)
		assert.True(t, errors.Is(err, ErrInvalidTestSize), "%v", size)
		_, err = WeightedSplit(names(10), emotion, size, 42)
		assert.True(t, errors.Is(err, ErrInvalidTestSize), "%v", size)
	}
}

func TestSplitTooFewFiles(t *testing.T) {
	_, err := UnweightedSplit(names(1), 0.2, 42)
	assert.Error(t, err)
	_, err = UnweightedSplit(nil, 0.2, 42)
	assert.Error(t, err)
}

func TestUnweightedSplitDir(t *testing.T) {
	root := t.TempDir()
	for _, n := range names(20) {
		touch(t, root+"/Actor_01/"+n)
	}
	s, err := UnweightedSplitDir(root, "wav", 0.2, 42)
	require.NoError(t, err)
	assert.Equal(t, 20, s.Len())
	all := append(append(append([]string{}, s.Train...), s.Valid...), s.Test...)
	sort.Strings(all)
	files, err := FilePaths(root, "wav")
	require.NoError(t, err)
	assert.Equal(t, files, all)
}
