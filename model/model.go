package model

import "github.com/seabreak/seabreak/internal/script"

// Mapping maps a code point to an in-vocabulary class index in
// [0, NumIndex]. NumIndex itself is the reserved out-of-vocabulary index.
// It must be total: every rune, including ones the training data never
// saw, must map to some valid index.
type Mapping func(codepoint rune) int

// Model is the trained-weight blob for one script's LSTM classifier: the
// four scalar hyperparameters, the vocabulary mapping, and the nine
// matrices/vectors flattened into a single contiguous slice in the fixed
// order:
//
//	Embedding, ForwardW, ForwardU, ForwardB,
//	BackwardW, BackwardU, BackwardB, OutputW, OutputB
//
// A Model is treated as read-only for the life of the process; nothing in
// this module ever writes to Matrices.
type Model struct {
	Script        script.Script
	NumIndex      int
	EmbeddingSize int
	HUnits        int
	Mapping       Mapping
	Matrices      []float32
}

// ExpectedMatrixLen returns the number of float32 elements Matrices must
// contain for the given dimensions, per the shape table in spec §3:
//
//	(N+1)·E + 2·(E·4H + H·4H + 4H) + 8H + 4
func ExpectedMatrixLen(numIndex, embeddingSize, hunits int) int {
	n, e, h := numIndex, embeddingSize, hunits
	perDirection := e*4*h + h*4*h + 4*h
	return (n+1)*e + 2*perDirection + 8*h + 4
}

// Validate checks that m's declared dimensions are positive, that Matrices
// has exactly the element count those dimensions require, and that Mapping
// is set. It does not and cannot check that Mapping is total or that the
// weight values themselves are well-formed — a malformed blob is undefined
// behavior per spec §7, the caller is responsible for supplying a
// well-formed model.
func (m *Model) Validate() error {
	if m.NumIndex <= 0 || m.EmbeddingSize <= 0 || m.HUnits <= 0 {
		return ErrInvalidDimensions
	}
	if m.Mapping == nil {
		return ErrNilMapping
	}
	want := ExpectedMatrixLen(m.NumIndex, m.EmbeddingSize, m.HUnits)
	if len(m.Matrices) != want {
		return ErrMatricesSizeMismatch
	}
	return nil
}
