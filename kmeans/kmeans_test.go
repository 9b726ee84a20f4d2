package kmeans_test

import (
	"testing"

	"github.com/katalvlaran/klust/dataset"
	"github.com/katalvlaran/klust/kmeans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoBlobs builds a tiny dataset with two obvious groups around (0,0)
// and (10,10).
func twoBlobs(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]string{"x", "y"}, [][]float64{
		{0.0, 0.1}, {0.2, 0.0}, {-0.1, 0.2}, {0.1, -0.2},
		{10.0, 10.1}, {10.2, 9.9}, {9.8, 10.0}, {10.1, 10.2},
	})
	require.NoError(t, err)

	return ds
}

// TestPartition_KOne verifies k=1 assigns every row the same label 1.
func TestPartition_KOne(t *testing.T) {
	ds := twoBlobs(t)

	res, err := kmeans.Partition(ds, 1, nil)
	require.NoError(t, err)
	require.Len(t, res.Labels, ds.Rows())
	for i, l := range res.Labels {
		assert.Equal(t, 1, l, "row %d", i)
	}
	assert.Len(t, res.Centroids, 1)
}

// TestPartition_LabelsInRange verifies label count and range invariants.
func TestPartition_LabelsInRange(t *testing.T) {
	ds := twoBlobs(t)
	k := 3

	res, err := kmeans.Partition(ds, k, nil)
	require.NoError(t, err)
	assert.Len(t, res.Labels, ds.Rows(), "one label per row")
	for i, l := range res.Labels {
		assert.GreaterOrEqual(t, l, 1, "row %d", i)
		assert.LessOrEqual(t, l, k, "row %d", i)
	}
}

// TestPartition_TwoBlobs verifies the obvious 2-group structure is found
// and the two blobs land in different clusters.
func TestPartition_TwoBlobs(t *testing.T) {
	ds := twoBlobs(t)

	res, err := kmeans.Partition(ds, 2, nil)
	require.NoError(t, err)

	// All of the first four rows share one label, all of the last four the
	// other, and the labels differ.
	first := res.Labels[0]
	for i := 1; i < 4; i++ {
		assert.Equal(t, first, res.Labels[i], "first blob must be one cluster")
	}
	second := res.Labels[4]
	for i := 5; i < 8; i++ {
		assert.Equal(t, second, res.Labels[i], "second blob must be one cluster")
	}
	assert.NotEqual(t, first, second)
	assert.Less(t, res.Inertia, 1.0, "tight blobs give tiny inertia")
}

// TestPartition_DeterministicUnderSeed verifies same seed ⇒ same result.
func TestPartition_DeterministicUnderSeed(t *testing.T) {
	ds := dataset.Vehicles()
	opts := kmeans.DefaultOptions()
	opts.Seed = 1234

	a, err := kmeans.Partition(ds, 4, &opts)
	require.NoError(t, err)
	b, err := kmeans.Partition(ds, 4, &opts)
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Centroids, b.Centroids)
	assert.Equal(t, a.Inertia, b.Inertia)
}

// TestPartition_KEqualsRows verifies the degenerate k==n case: every row
// gets a cluster and inertia collapses to ~0.
func TestPartition_KEqualsRows(t *testing.T) {
	ds, err := dataset.New([]string{"x"}, [][]float64{{1}, {5}, {9}})
	require.NoError(t, err)

	res, err := kmeans.Partition(ds, 3, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Inertia, 1e-12)

	seen := map[int]bool{}
	for _, l := range res.Labels {
		seen[l] = true
	}
	assert.Len(t, seen, 3, "each point owns a cluster")
}

// TestPartition_BadK verifies out-of-range k values error.
func TestPartition_BadK(t *testing.T) {
	ds := twoBlobs(t)

	_, err := kmeans.Partition(ds, 0, nil)
	assert.ErrorIs(t, err, kmeans.ErrBadK)

	_, err = kmeans.Partition(ds, ds.Rows()+1, nil)
	assert.ErrorIs(t, err, kmeans.ErrBadK)
}

// TestPartition_BadOptions verifies nonsensical options error.
func TestPartition_BadOptions(t *testing.T) {
	ds := twoBlobs(t)
	opts := kmeans.DefaultOptions()
	opts.Restarts = 0

	_, err := kmeans.Partition(ds, 2, &opts)
	assert.ErrorIs(t, err, kmeans.ErrBadOptions)

	opts = kmeans.DefaultOptions()
	opts.MaxIterations = 0
	_, err = kmeans.Partition(ds, 2, &opts)
	assert.ErrorIs(t, err, kmeans.ErrBadOptions)
}

// TestPartition_PropagatesValidation verifies dataset invariants surface.
func TestPartition_PropagatesValidation(t *testing.T) {
	_, err := kmeans.Partition(dataset.Wrap([]string{"x"}, nil), 1, nil)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
}
