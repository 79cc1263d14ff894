// Package matrix provides the array views and numeric primitives the LSTM
// inference engine is built on: read-only views into externally owned
// float32 memory, and owned buffers that support the small set of
// vector/matrix operations a forget-gated LSTM step needs (dot product,
// Hadamard product, tanh, sigmoid, argmax, slicing).
//
// Views never copy or alias-write their backing storage. Buffers own their
// storage and release it to the garbage collector when they go out of
// scope. Both expose the same read interface so a caller does not need to
// know which one it was handed.
package matrix
