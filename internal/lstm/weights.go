package lstm

import (
	"github.com/seabreak/seabreak/internal/matrix"
	"github.com/seabreak/seabreak/model"
)

// Weights holds the nine matrices/vectors carved out of a model blob's flat
// Matrices slice, in the fixed order spec.md's shape table declares. Binding
// is pure offset arithmetic: it never copies weight data.
type Weights struct {
	Embedding matrix.View2D // (N+1)×E

	ForwardW matrix.View2D // E×4H
	ForwardU matrix.View2D // H×4H
	ForwardB matrix.View1D // 4H

	BackwardW matrix.View2D // E×4H
	BackwardU matrix.View2D // H×4H
	BackwardB matrix.View1D // 4H

	OutputW matrix.View2D // 2H×4
	OutputB matrix.View1D // 4

	HUnits int
}

// Bind carves the nine views out of m.Matrices. The caller must have
// already validated m (see Model.Validate); Bind itself only re-derives the
// slice boundaries from m's declared dimensions.
func Bind(m *model.Model) Weights {
	n, e, h := m.NumIndex, m.EmbeddingSize, m.HUnits
	mat := m.Matrices

	take2D := func(rows, cols int) matrix.View2D {
		size := rows * cols
		v := matrix.NewView2D(mat[:size], rows, cols)
		mat = mat[size:]
		return v
	}
	take1D := func(n int) matrix.View1D {
		v := matrix.NewView1D(mat[:n])
		mat = mat[n:]
		return v
	}

	embedding := take2D(n+1, e)
	forwardW := take2D(e, 4*h)
	forwardU := take2D(h, 4*h)
	forwardB := take1D(4 * h)
	backwardW := take2D(e, 4*h)
	backwardU := take2D(h, 4*h)
	backwardB := take1D(4 * h)
	outputW := take2D(2*h, 4)
	outputB := take1D(4)

	return Weights{
		Embedding: embedding,
		ForwardW:  forwardW,
		ForwardU:  forwardU,
		ForwardB:  forwardB,
		BackwardW: backwardW,
		BackwardU: backwardU,
		BackwardB: backwardB,
		OutputW:   outputW,
		OutputB:   outputB,
		HUnits:    h,
	}
}
