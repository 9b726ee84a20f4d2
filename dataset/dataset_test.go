package dataset_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/klust/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Valid verifies a clean table constructs and reports its shape.
func TestNew_Valid(t *testing.T) {
	ds, err := dataset.New(
		[]string{"a", "b"},
		[][]float64{{1, 2}, {3, 4}, {5, 6}},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Rows())
	assert.Equal(t, 2, ds.Cols())
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
}

// TestNew_Empty verifies empty inputs return ErrEmptyDataset.
func TestNew_Empty(t *testing.T) {
	_, err := dataset.New([]string{"a"}, nil)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset, "no rows must error")

	_, err = dataset.New(nil, [][]float64{{1}})
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset, "no columns must error")
}

// TestNew_Ragged verifies rows of uneven width return ErrRaggedRows.
func TestNew_Ragged(t *testing.T) {
	_, err := dataset.New([]string{"a", "b"}, [][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, dataset.ErrRaggedRows)
}

// TestNew_NonFinite verifies NaN and ±Inf cells are rejected.
func TestNew_NonFinite(t *testing.T) {
	_, err := dataset.New([]string{"a"}, [][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, dataset.ErrNonFinite, "NaN must be rejected")

	_, err = dataset.New([]string{"a"}, [][]float64{{math.Inf(1)}})
	assert.ErrorIs(t, err, dataset.ErrNonFinite, "+Inf must be rejected")
}

// TestAccessors verifies At/Row/Column/ColumnAt round-trip values and
// guard their bounds.
func TestAccessors(t *testing.T) {
	ds, err := dataset.New([]string{"x", "y"}, [][]float64{{1, 10}, {2, 20}})
	require.NoError(t, err)

	v, err := ds.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)

	_, err = ds.At(2, 0)
	assert.ErrorIs(t, err, dataset.ErrOutOfRange)

	row, err := ds.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10}, row)

	col, err := ds.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, col)

	_, err = ds.Column("missing")
	assert.ErrorIs(t, err, dataset.ErrColumnMismatch)

	col, err = ds.ColumnAt(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, col)
}

// TestClone_Independent verifies Clone shares no backing memory.
func TestClone_Independent(t *testing.T) {
	ds, err := dataset.New([]string{"a"}, [][]float64{{1}, {2}})
	require.NoError(t, err)

	cp := ds.Clone()
	cp.Raw()[0][0] = 99

	v, err := ds.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the clone must not affect the source")
}

// TestMatrix_RoundTrip verifies Matrix/FromMatrix preserve shape and values.
func TestMatrix_RoundTrip(t *testing.T) {
	ds, err := dataset.New([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	m := ds.Matrix()
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)

	back, err := dataset.FromMatrix([]string{"a", "b"}, m)
	require.NoError(t, err)
	assert.Equal(t, ds.Raw(), back.Raw())

	_, err = dataset.FromMatrix([]string{"a"}, m)
	assert.ErrorIs(t, err, dataset.ErrColumnMismatch)
}

// TestVehicles_ShapeAndDeterminism verifies the built-in table's documented
// shape and that repeated calls produce identical data.
func TestVehicles_ShapeAndDeterminism(t *testing.T) {
	ds := dataset.Vehicles()
	require.NoError(t, ds.Validate())
	assert.Equal(t, 234, ds.Rows(), "documented row count")
	assert.Equal(t, 4, ds.Cols())
	assert.Equal(t,
		[]string{
			dataset.VehicleDisplacement,
			dataset.VehicleCylinders,
			dataset.VehicleCityMPG,
			dataset.VehicleHighwayMPG,
		},
		ds.Columns())

	again := dataset.Vehicles()
	assert.Equal(t, ds.Raw(), again.Raw(), "generation must be deterministic")
}

// TestVehicles_Plausible sanity-checks value ranges per column.
func TestVehicles_Plausible(t *testing.T) {
	ds := dataset.Vehicles()

	displ, err := ds.Column(dataset.VehicleDisplacement)
	require.NoError(t, err)
	for _, v := range displ {
		assert.GreaterOrEqual(t, v, 1.4)
		assert.LessOrEqual(t, v, 6.2)
	}

	cyl, err := ds.Column(dataset.VehicleCylinders)
	require.NoError(t, err)
	for _, v := range cyl {
		assert.Contains(t, []float64{4, 8}, v)
	}
}
