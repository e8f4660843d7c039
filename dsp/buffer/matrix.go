package buffer

// Matrix is a dense row-major float64 matrix backed by a single
// allocation. DSP functions accept raw []float64 slices; Row bridges to
// them without copying.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a zero-filled matrix of the given dimensions.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromSlice wraps an existing row-major slice without copying.
// Mutations to the slice are visible through the Matrix and vice versa.
// len(data) must be rows*cols.
func FromSlice(rows, cols int, data []float64) *Matrix {
	if len(data) != rows*cols {
		return nil
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Row returns row r as a view into the backing store.
func (m *Matrix) Row(r int) []float64 {
	return m.data[r*m.cols : (r+1)*m.cols]
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[r*m.cols+c] = v
}

// Data returns the backing slice in row-major order.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Zero sets all elements to 0.
func (m *Matrix) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Copy returns a deep copy of the matrix.
func (m *Matrix) Copy() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}
