// Package lstm implements a single forget-gated LSTM cell step and the
// fused bidirectional pass (backward hidden states followed by a streamed
// forward pass fused with the dense BIES output layer) that the word
// boundary detector runs over a same-script chunk of text.
//
// Nothing in this package does I/O or knows about scripts; it operates on
// already-bound weight views (see Bind), a slice of code points, and a
// caller-supplied mapping function that turns each code point into its
// class index.
package lstm
