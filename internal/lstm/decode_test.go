package lstm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seabreak/seabreak/model"
)

// buildWeights constructs a Weights with matrices filled by fill, useful
// for property tests that don't care about realistic trained values.
func buildWeights(numIndex, e, h int, fill func(i int) float32) Weights {
	total := model.ExpectedMatrixLen(numIndex, e, h)
	mat := make([]float32, total)
	for i := range mat {
		mat[i] = fill(i)
	}
	m := &model.Model{
		NumIndex: numIndex, EmbeddingSize: e, HUnits: h,
		Mapping:  func(rune) int { return 0 },
		Matrices: mat,
	}
	return Bind(m)
}

func TestBreakWord_LengthCap(t *testing.T) {
	w := buildWeights(2, 2, 2, func(int) float32 { return 0 })

	longText := make([]rune, MaxRangeLength+1)
	for i := range longText {
		longText[i] = 'a'
	}
	var got []int
	err := BreakWord(w, longText, 0, len(longText), func(rune) int { return 0 }, func(pos int) {
		got = append(got, pos)
	})
	assert.ErrorIs(t, err, ErrRangeTooLong)
	assert.Empty(t, got)

	okText := longText[:MaxRangeLength]
	err = BreakWord(w, okText, 0, len(okText), func(rune) int { return 0 }, func(pos int) {})
	assert.NoError(t, err)
}

func TestBreakWord_NoLeadingBreak(t *testing.T) {
	// All-zero output weights/bias make every logit 0, so the argmax always
	// picks index 0 (Begin) via the lowest-index tie rule — every position
	// except 0 should fire.
	w := buildWeights(1, 2, 2, func(int) float32 { return 0 })
	text := []rune(strings.Repeat("a", 5))

	var got []int
	err := BreakWord(w, text, 0, len(text), func(rune) int { return 0 }, func(pos int) {
		got = append(got, pos)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.NotContains(t, got, 0)
}

func TestBreakWord_MonotonicCallbacks(t *testing.T) {
	w := buildWeights(1, 3, 4, func(i int) float32 { return float32(i%5) - 2 })
	text := []rune(strings.Repeat("a", 16))

	var got []int
	err := BreakWord(w, text, 3, 13, func(rune) int { return 0 }, func(pos int) {
		got = append(got, pos)
	})
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
	for _, pos := range got {
		assert.GreaterOrEqual(t, pos, 3+1)
		assert.LessOrEqual(t, pos, 13-1)
	}
}

func TestBreakWord_Deterministic(t *testing.T) {
	w := buildWeights(2, 3, 4, func(i int) float32 { return float32(i%11)*0.1 - 0.5 })
	text := []rune(strings.Repeat("xy", 20))
	mapping := func(r rune) int {
		if r == 'x' {
			return 0
		}
		return 1
	}

	run := func() []int {
		var got []int
		err := BreakWord(w, text, 0, len(text), mapping, func(pos int) { got = append(got, pos) })
		require.NoError(t, err)
		return got
	}

	first := run()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, run())
	}
}

func TestBreakWord_EmptyRange(t *testing.T) {
	w := buildWeights(1, 2, 2, func(int) float32 { return 1 })
	text := []rune("abc")
	called := false
	err := BreakWord(w, text, 1, 1, func(rune) int { return 0 }, func(pos int) { called = true })
	require.NoError(t, err)
	assert.False(t, called)
}

func TestBind_ProducesShapesFromSpecTable(t *testing.T) {
	const n, e, h = 5, 3, 4
	w := buildWeights(n, e, h, func(i int) float32 { return float32(i) })

	assert.Equal(t, n+1, w.Embedding.Rows())
	assert.Equal(t, e, w.Embedding.Cols())
	assert.Equal(t, e, w.ForwardW.Rows())
	assert.Equal(t, 4*h, w.ForwardW.Cols())
	assert.Equal(t, h, w.ForwardU.Rows())
	assert.Equal(t, 4*h, w.ForwardU.Cols())
	assert.Equal(t, 4*h, w.ForwardB.Len())
	assert.Equal(t, e, w.BackwardW.Rows())
	assert.Equal(t, h, w.BackwardU.Rows())
	assert.Equal(t, 4*h, w.BackwardB.Len())
	assert.Equal(t, 2*h, w.OutputW.Rows())
	assert.Equal(t, 4, w.OutputW.Cols())
	assert.Equal(t, 4, w.OutputB.Len())
}
