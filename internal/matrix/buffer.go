package matrix

import (
	"fmt"
	"math"
)

// Buffer1D is a heap-allocated, zero-initialised, owned one-dimensional
// float32 array. Unlike View1D it supports the mutating operations the LSTM
// cell step needs.
type Buffer1D struct {
	data []float32
}

// NewBuffer1D allocates a zero-initialised buffer of length n.
func NewBuffer1D(n int) Buffer1D {
	return Buffer1D{data: make([]float32, n)}
}

// Len returns the number of elements in the buffer.
func (b Buffer1D) Len() int { return len(b.data) }

// At returns the element at index i.
func (b Buffer1D) At(i int) float32 { return b.data[i] }

func (b Buffer1D) requireSameLen(name string, other Vector) {
	if other.Len() != b.Len() {
		panic(fmt.Sprintf("matrix: Buffer1D.%s: length mismatch: %d vs %d", name, b.Len(), other.Len()))
	}
}

// Assign copies a into b: b[i] = a[i].
func (b Buffer1D) Assign(a Vector) Buffer1D {
	b.requireSameLen("Assign", a)
	for i := range b.data {
		b.data[i] = a.At(i)
	}
	return b
}

// Add accumulates a into b: b[i] += a[i].
func (b Buffer1D) Add(a Vector) Buffer1D {
	b.requireSameLen("Add", a)
	for i := range b.data {
		b.data[i] += a.At(i)
	}
	return b
}

// Hadamard multiplies b by a elementwise in place: b[i] *= a[i].
func (b Buffer1D) Hadamard(a Vector) Buffer1D {
	b.requireSameLen("Hadamard", a)
	for i := range b.data {
		b.data[i] *= a.At(i)
	}
	return b
}

// AddHadamard accumulates the elementwise product of a and bb into b:
// b[i] += a[i]*bb[i].
func (b Buffer1D) AddHadamard(a, bb Vector) Buffer1D {
	b.requireSameLen("AddHadamard", a)
	b.requireSameLen("AddHadamard", bb)
	for i := range b.data {
		b.data[i] += a.At(i) * bb.At(i)
	}
	return b
}

// AddDot accumulates the product of row vector x (length k) and matrix m
// (shape k×n, n == b.Len()) into b: b[i] += Σ_j x[j]·m[j][i].
func (b Buffer1D) AddDot(x Vector, m Matrix) Buffer1D {
	if x.Len() != m.Rows() {
		panic(fmt.Sprintf("matrix: Buffer1D.AddDot: x has length %d, m has %d rows", x.Len(), m.Rows()))
	}
	if m.Cols() != b.Len() {
		panic(fmt.Sprintf("matrix: Buffer1D.AddDot: m has %d cols, buffer has length %d", m.Cols(), b.Len()))
	}
	for j := 0; j < x.Len(); j++ {
		xj := x.At(j)
		for i := range b.data {
			b.data[i] += xj * m.At(j, i)
		}
	}
	return b
}

// Tanh applies tanh to every element of b in place.
func (b Buffer1D) Tanh() Buffer1D {
	return b.TanhFrom(b)
}

// TanhFrom sets b[i] = tanh(a[i]).
func (b Buffer1D) TanhFrom(a Vector) Buffer1D {
	b.requireSameLen("TanhFrom", a)
	for i := range b.data {
		b.data[i] = float32(math.Tanh(float64(a.At(i))))
	}
	return b
}

// Sigmoid applies the logistic function to every element of b in place.
func (b Buffer1D) Sigmoid() Buffer1D {
	for i, v := range b.data {
		b.data[i] = float32(1 / (1 + math.Exp(-float64(v))))
	}
	return b
}

// Clear zeroes every element of b.
func (b Buffer1D) Clear() Buffer1D {
	for i := range b.data {
		b.data[i] = 0
	}
	return b
}

// ArgMax returns the index of the maximum element. On a tie the lowest
// index wins, since only a strictly greater value replaces the running
// maximum.
func (b Buffer1D) ArgMax() int {
	if len(b.data) == 0 {
		panic("matrix: Buffer1D.ArgMax: empty buffer")
	}
	best := 0
	max := b.data[0]
	for i := 1; i < len(b.data); i++ {
		if b.data[i] > max {
			max = b.data[i]
			best = i
		}
	}
	return best
}

// Slice returns a sub-view of size elements starting at from, sharing
// storage with b: writes through the slice are visible in b.
func (b Buffer1D) Slice(from, size int) Buffer1D {
	if from < 0 || from > b.Len() || from+size > b.Len() {
		panic(fmt.Sprintf("matrix: Buffer1D.Slice: range [%d,%d) out of bounds for length %d", from, from+size, b.Len()))
	}
	return Buffer1D{data: b.data[from : from+size]}
}

// Buffer2D is a heap-allocated, zero-initialised, owned row-major
// two-dimensional float32 array.
type Buffer2D struct {
	data []float32
	rows int
	cols int
}

// NewBuffer2D allocates a zero-initialised rows×cols buffer.
func NewBuffer2D(rows, cols int) Buffer2D {
	return Buffer2D{data: make([]float32, rows*cols), rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (b Buffer2D) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Buffer2D) Cols() int { return b.cols }

// At returns the element at (i, j).
func (b Buffer2D) At(i, j int) float32 { return b.data[i*b.cols+j] }

// Row returns row i as a Buffer1D sharing storage with b: writing through
// the returned row mutates b.
func (b Buffer2D) Row(i int) Buffer1D {
	if i < 0 || i >= b.rows {
		panic(fmt.Sprintf("matrix: Buffer2D.Row: index %d out of range [0,%d)", i, b.rows))
	}
	return Buffer1D{data: b.data[i*b.cols : (i+1)*b.cols]}
}

// Clear zeroes every element of b.
func (b Buffer2D) Clear() Buffer2D {
	for i := range b.data {
		b.data[i] = 0
	}
	return b
}
