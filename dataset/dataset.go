package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset is an immutable-by-convention numeric table: rows × named columns.
// The zero value is not usable; construct via New (validated) or Wrap
// (unvalidated, for data known to be clean).
type Dataset struct {
	cols []string
	rows [][]float64
}

// New builds a Dataset from column names and row data, validating shape and
// finiteness up front.
//
// Contracts:
//   - len(columns) ≥ 1 and len(rows) ≥ 1;
//   - every row has len(columns) values;
//   - every value is finite.
//
// Errors: ErrEmptyDataset, ErrColumnMismatch, ErrRaggedRows, ErrNonFinite.
//
// Complexity: O(n·d) validation; the row slices are NOT copied — callers
// hand over ownership (use Clone first if the backing data must survive).
func New(columns []string, rows [][]float64) (*Dataset, error) {
	d := &Dataset{cols: columns, rows: rows}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Wrap builds a Dataset without validation. Intended for internal pipelines
// whose outputs are finite by construction (scaling, embedding).
func Wrap(columns []string, rows [][]float64) *Dataset {
	return &Dataset{cols: columns, rows: rows}
}

// Validate re-checks all Dataset invariants (see package doc).
//
// Complexity: O(n·d) time, O(1) space.
func (d *Dataset) Validate() error {
	if d == nil || len(d.rows) == 0 || len(d.cols) == 0 {
		return ErrEmptyDataset
	}
	width := len(d.cols)
	for _, row := range d.rows {
		if len(row) != width {
			return ErrRaggedRows
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFinite
			}
		}
	}

	return nil
}

// Rows returns the number of rows.
func (d *Dataset) Rows() int { return len(d.rows) }

// Cols returns the number of columns.
func (d *Dataset) Cols() int { return len(d.cols) }

// Columns returns a copy of the column names, in order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.cols))
	copy(out, d.cols)

	return out
}

// At returns the value at row i, column j.
// Errors: ErrOutOfRange for invalid indices.
func (d *Dataset) At(i, j int) (float64, error) {
	if i < 0 || i >= len(d.rows) || j < 0 || j >= len(d.cols) {
		return 0, ErrOutOfRange
	}

	return d.rows[i][j], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange for an invalid index.
func (d *Dataset) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(d.rows) {
		return nil, ErrOutOfRange
	}
	out := make([]float64, len(d.rows[i]))
	copy(out, d.rows[i])

	return out, nil
}

// Column returns a copy of the named column's values, in row order.
// Errors: ErrColumnMismatch when no column carries the name.
func (d *Dataset) Column(name string) ([]float64, error) {
	j := -1
	for idx, c := range d.cols {
		if c == name {
			j = idx
			break
		}
	}
	if j < 0 {
		return nil, ErrColumnMismatch
	}

	out := make([]float64, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[j]
	}

	return out, nil
}

// ColumnAt returns a copy of column j's values, in row order.
// Errors: ErrOutOfRange for an invalid index.
func (d *Dataset) ColumnAt(j int) ([]float64, error) {
	if j < 0 || j >= len(d.cols) {
		return nil, ErrOutOfRange
	}
	out := make([]float64, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[j]
	}

	return out, nil
}

// Raw exposes the backing row slices without copying.
// Callers MUST treat the result as read-only; it exists so hot loops
// (k-means assignment, pairwise distances) can avoid per-row allocations.
func (d *Dataset) Raw() [][]float64 { return d.rows }

// Clone returns a deep copy sharing no memory with the receiver.
//
// Complexity: O(n·d) time and space.
func (d *Dataset) Clone() *Dataset {
	cols := make([]string, len(d.cols))
	copy(cols, d.cols)
	rows := make([][]float64, len(d.rows))
	for i, row := range d.rows {
		rows[i] = make([]float64, len(row))
		copy(rows[i], row)
	}

	return &Dataset{cols: cols, rows: rows}
}

// Matrix converts the table into a dense gonum matrix (rows × cols),
// copying the data.
func (d *Dataset) Matrix() *mat.Dense {
	n, p := len(d.rows), len(d.cols)
	flat := make([]float64, 0, n*p)
	for _, row := range d.rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(n, p, flat)
}

// FromMatrix builds a Dataset from a gonum matrix and column names.
// Errors: ErrColumnMismatch when len(columns) != matrix column count;
// ErrEmptyDataset / ErrNonFinite via validation.
func FromMatrix(columns []string, m mat.Matrix) (*Dataset, error) {
	n, p := m.Dims()
	if len(columns) != p {
		return nil, ErrColumnMismatch
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			rows[i][j] = m.At(i, j)
		}
	}

	return New(columns, rows)
}
