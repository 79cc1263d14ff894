package lstm

import "github.com/seabreak/seabreak/internal/matrix"

// Step computes one timestep of a forget-gated LSTM, as at
// https://en.wikipedia.org/wiki/Long_short-term_memory#LSTM_with_a_forget_gate:
//
//  1. ifco := b; ifco += x·W; ifco += h·U
//  2. split ifco into four H-sized lanes I, F, C̃, O
//  3. I := σ(I); F := σ(F); C̃ := tanh(C̃); O := σ(O)
//  4. c := c⊙F + I⊙C̃
//  5. h := tanh(c)⊙O
//
// h and c are updated in place; c must be updated before h reads it, since
// h's tanh is taken over the just-updated cell state. ifco is scratch space
// owned by the caller so repeated Step calls in a loop don't reallocate it.
func Step(w, u matrix.View2D, b matrix.View1D, x matrix.Vector, h, c, ifco matrix.Buffer1D) {
	hunits := c.Len()

	ifco.Assign(b)
	ifco.AddDot(x, w)
	ifco.AddDot(h, u)

	i := ifco.Slice(0*hunits, hunits)
	f := ifco.Slice(1*hunits, hunits)
	cTilde := ifco.Slice(2*hunits, hunits)
	o := ifco.Slice(3*hunits, hunits)

	i.Sigmoid()
	f.Sigmoid()
	cTilde.Tanh()
	o.Sigmoid()

	c.Hadamard(f)
	c.AddHadamard(i, cTilde)

	h.TanhFrom(c)
	h.Hadamard(o)
}
