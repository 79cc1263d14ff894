package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seabreak/seabreak/internal/script"
	"github.com/seabreak/seabreak/model"
)

func syntheticModel(t *testing.T, sc script.Script) *model.Model {
	t.Helper()
	const numIndex, e, h = 3, 2, 2
	mat := make([]float32, model.ExpectedMatrixLen(numIndex, e, h))
	for i := range mat {
		mat[i] = float32(i%5) * 0.1
	}
	return &model.Model{
		Script:        sc,
		NumIndex:      numIndex,
		EmbeddingSize: e,
		HUnits:        h,
		Mapping:       func(rune) int { return 0 },
		Matrices:      mat,
	}
}

func TestCache_EngineIsASingleton(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Register(syntheticModel(t, script.Thai)))

	first, err := c.Engine(script.Thai)
	require.NoError(t, err)
	second, err := c.Engine(script.Thai)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCache_UnregisteredScript(t *testing.T) {
	c := NewCache()
	_, err := c.Engine(script.Lao)
	assert.ErrorIs(t, err, ErrUnregistered)
}

func TestCache_UnkIsNotAValidKey(t *testing.T) {
	c := NewCache()
	_, err := c.Engine(script.UNK)
	assert.ErrorIs(t, err, ErrUnregistered)
}

func TestCache_ConcurrentFirstUseConstructsOnce(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Register(syntheticModel(t, script.Khmer)))

	const workers = 32
	engines := make([]*Engine, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			e, err := c.Engine(script.Khmer)
			assert.NoError(t, err)
			engines[i] = e
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, engines[0], engines[i])
	}
}

func TestEngine_BreakWord_PropagatesRangeTooLong(t *testing.T) {
	e, err := New(syntheticModel(t, script.Burmese))
	require.NoError(t, err)

	text := make([]rune, MaxRangeLength+1)
	err = e.BreakWord(text, 0, len(text), func(int) {})
	assert.ErrorIs(t, err, ErrRangeTooLong)
}
