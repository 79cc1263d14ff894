package lstm

import "github.com/seabreak/seabreak/internal/matrix"

// Label is the four-way per-character BIES tag the dense output layer
// decodes at each position.
type Label int

// BIES labels, in the order the output layer's four logits are laid out.
const (
	Begin Label = iota
	Inside
	End
	Single
)

// BreakFunc receives an absolute position at which a word boundary was
// found. Positions are reported strictly in increasing order.
type BreakFunc func(pos int)

// BreakWord runs the bidirectional LSTM over text[start:end] and reports a
// break at every absolute position whose decoded label is Begin or Single,
// except position start itself (a chunk never reports a break at its own
// first position). w must have been produced by Bind from a validated
// model; mapping converts each code point in range to its class index.
//
// The backward pass runs first and stores every hidden state, since
// position i's forward decision needs backward state i. The forward pass
// is then streamed fused with the dense output layer, since it only ever
// needs h[i-1]: this is why the two halves of this function look
// asymmetric.
func BreakWord(w Weights, text []rune, start, end int, mapping func(rune) int, found BreakFunc) error {
	length := end - start
	if length > MaxRangeLength {
		return ErrRangeTooLong
	}
	if length <= 0 {
		return nil
	}

	indices := make([]int, length)
	for i := 0; i < length; i++ {
		indices[i] = mapping(text[start+i])
	}

	hunits := w.HUnits
	ifco := matrix.NewBuffer1D(4 * hunits)
	c := matrix.NewBuffer1D(hunits)

	// Backward pass: hBackward[i] ends up holding the backward hidden state
	// aligned with position i.
	hBackward := matrix.NewBuffer2D(length, hunits)
	for i := length - 1; i >= 0; i-- {
		row := hBackward.Row(i)
		if i < length-1 {
			row.Assign(hBackward.Row(i + 1))
		}
		Step(w.BackwardW, w.BackwardU, w.BackwardB, w.Embedding.Row(indices[i]), row, c, ifco)
	}

	// Forward pass fused with the dense output layer. c is reused for the
	// forward direction; it is a fresh, independently-zeroed buffer here
	// rather than the same storage explicitly re-cleared, which is
	// behaviorally identical and avoids aliasing the backward pass's final
	// cell state across the direction boundary.
	c = matrix.NewBuffer1D(hunits)
	fbRow := matrix.NewBuffer1D(2 * hunits)
	forwardRow := fbRow.Slice(0, hunits)
	backwardRow := fbRow.Slice(hunits, hunits)
	logp := matrix.NewBuffer1D(4)

	for i := 0; i < length; i++ {
		Step(w.ForwardW, w.ForwardU, w.ForwardB, w.Embedding.Row(indices[i]), forwardRow, c, ifco)
		backwardRow.Assign(hBackward.Row(i))

		logp.Assign(w.OutputB)
		logp.AddDot(fbRow, w.OutputW)

		label := Label(logp.ArgMax())
		if (label == Begin || label == Single) && i != 0 {
			found(start + i)
		}
	}
	return nil
}
