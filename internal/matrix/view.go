package matrix

import "fmt"

// Vector is the common read interface shared by owned buffers and borrowed
// views over a one-dimensional float32 array.
type Vector interface {
	Len() int
	At(i int) float32
}

// Matrix is the common read interface shared by owned buffers and borrowed
// views over a two-dimensional, row-major float32 array.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) float32
}

// View1D is a read-only window over a float32 slice it does not own, such as
// the raw matrices carved out of a model blob. It never writes through to
// the backing storage.
type View1D struct {
	data []float32
}

// NewView1D wraps data as a read-only vector of length len(data). data is
// not copied; the caller must not mutate it for the lifetime of the view.
func NewView1D(data []float32) View1D {
	return View1D{data: data}
}

// Len returns the number of elements in the view.
func (v View1D) Len() int { return len(v.data) }

// At returns the element at index i.
func (v View1D) At(i int) float32 {
	return v.data[i]
}

// View2D is a read-only, row-major window over a float32 slice it does not
// own.
type View2D struct {
	data []float32
	rows int
	cols int
}

// NewView2D wraps data as a read-only rows×cols matrix. data must contain
// exactly rows*cols elements, row-major.
func NewView2D(data []float32, rows, cols int) View2D {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("matrix: NewView2D: data has %d elements, want %d (%d×%d)", len(data), rows*cols, rows, cols))
	}
	return View2D{data: data, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (v View2D) Rows() int { return v.rows }

// Cols returns the number of columns.
func (v View2D) Cols() int { return v.cols }

// At returns the element at (i, j).
func (v View2D) At(i, j int) float32 {
	return v.data[i*v.cols+j]
}

// Row returns row i as a View1D sharing storage with v.
func (v View2D) Row(i int) View1D {
	if i < 0 || i >= v.rows {
		panic(fmt.Sprintf("matrix: View2D.Row: index %d out of range [0,%d)", i, v.rows))
	}
	return View1D{data: v.data[i*v.cols : (i+1)*v.cols]}
}
