package engine

import (
	"fmt"

	"github.com/seabreak/seabreak/internal/lstm"
	"github.com/seabreak/seabreak/model"
)

// MaxRangeLength is the largest same-script chunk a single BreakWord call
// accepts.
const MaxRangeLength = lstm.MaxRangeLength

// ErrRangeTooLong is returned when a chunk handed to BreakWord exceeds
// MaxRangeLength code points.
var ErrRangeTooLong = lstm.ErrRangeTooLong

// Engine runs the bidirectional LSTM classifier for a single script. It
// holds only the carved weight views and the model's mapping function; it
// has no mutable state after construction.
type Engine struct {
	weights lstm.Weights
	mapping model.Mapping
}

// New binds m into an Engine, validating m first. The bound weight views
// share storage with m.Matrices and never copy it.
func New(m *model.Model) (*Engine, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Engine{
		weights: lstm.Bind(m),
		mapping: m.Mapping,
	}, nil
}

// BreakWord finds word boundaries in text[start:end], invoking found at
// every absolute position where a boundary was decoded, skipping the
// first position of the range. It returns ErrRangeTooLong without invoking
// found if end-start exceeds MaxRangeLength.
func (e *Engine) BreakWord(text []rune, start, end int, found func(pos int)) error {
	return lstm.BreakWord(e.weights, text, start, end, e.mapping, found)
}
