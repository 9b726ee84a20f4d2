package embed

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/klust/dataset"
)

// gramEps is the tolerance below which an eigenvalue of the centered Gram
// matrix counts as non-positive.
const gramEps = 1e-10

// MDS is classical (Torgerson) multidimensional scaling into 2 dimensions.
// The zero value is ready to use; MDS is stateless and deterministic.
type MDS struct{}

// compile-time interface check.
var _ Reducer = MDS{}

// Reduce embeds ds into 2 dimensions preserving pairwise Euclidean
// distances as well as a rank-2 configuration can.
//
// Algorithm:
//  1. D²[i][j] = squared Euclidean distance between rows i and j.
//  2. B = −½ · J·D²·J with J = I − 11ᵀ/n (double centering).
//  3. Eigendecompose B (symmetric); keep the two largest eigenpairs.
//  4. coords[i] = (v1[i]·√λ1, v2[i]·√λ2).
//
// Contracts:
//   - ds must pass dataset.Validate and have ≥ 3 rows;
//   - both leading eigenvalues must be positive (ErrDegenerateGram
//     otherwise — coincident or perfectly collinear points).
//
// Errors: dataset validation errors, ErrTooFewRows, ErrEigenFailed,
// ErrDegenerateGram.
//
// Complexity: O(n²·d) for distances + O(n³) for the eigensolve.
func (MDS) Reduce(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	n := ds.Rows()
	if n < 3 {
		return nil, ErrTooFewRows
	}

	rows := ds.Raw()

	// Stage 1 — squared distance matrix (symmetric, zero diagonal).
	d2 := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := floats.Distance(rows[i], rows[j], 2)
			d2.SetSym(i, j, dist*dist)
		}
	}

	// Stage 2 — double centering: b[i][j] = −½ (d²[i][j] − rm[i] − rm[j] + gm).
	var (
		rowMean = make([]float64, n)
		grand   float64
	)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += d2.At(i, j)
		}
		rowMean[i] = s / float64(n)
		grand += s
	}
	grand /= float64(n * n)

	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b.SetSym(i, j, -0.5*(d2.At(i, j)-rowMean[i]-rowMean[j]+grand))
		}
	}

	// Stage 3 — symmetric eigendecomposition.
	var eig mat.EigenSym
	if ok := eig.Factorize(b, true); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// gonum returns eigenvalues in ascending order; the two leading
	// coordinates live in the last two columns.
	l1, l2 := vals[n-1], vals[n-2]
	if l1 <= gramEps || l2 <= gramEps {
		return nil, ErrDegenerateGram
	}

	// Stage 4 — scale eigenvectors into coordinates.
	s1, s2 := math.Sqrt(l1), math.Sqrt(l2)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = []float64{vecs.At(i, n-1) * s1, vecs.At(i, n-2) * s2}
	}

	return dataset.Wrap([]string{Dim1, Dim2}, out), nil
}
