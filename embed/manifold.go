package embed

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/klust/dataset"
)

// Manifold defaults; each zero field falls back to these.
const (
	// DefaultNeighbors is the neighborhood size of the kNN graph.
	// The embedding is sensitive to it: small values favor fine local
	// structure, large values a more global layout.
	DefaultNeighbors = 15

	// DefaultEpochs is the number of gradient passes over the edge set.
	DefaultEpochs = 300

	// DefaultLearningRate is the initial step size; it decays linearly
	// to zero over the epochs.
	DefaultLearningRate = 0.2

	// negativeSamples is the number of random repulsion targets per point
	// per epoch.
	negativeSamples = 5

	// manifoldDefaultSeed backs the seed==0 policy.
	manifoldDefaultSeed int64 = 1
)

// Manifold is a stochastic neighbor-graph embedding into 2 dimensions:
// k-nearest-neighbor edges attract, sampled non-edges repel, positions
// settle by seeded gradient descent.
//
// The zero value is usable (library defaults, fixed default seed).
// Unlike MDS it does not preserve global distances — only neighborhoods —
// and different seeds give different layouts by design.
type Manifold struct {
	// Neighbors is the kNN graph degree (default DefaultNeighbors,
	// clamped to n−1).
	Neighbors int

	// Epochs is the number of optimization passes (default DefaultEpochs).
	Epochs int

	// LearningRate is the initial step size (default DefaultLearningRate).
	LearningRate float64

	// Seed drives layout initialization and negative sampling.
	// Seed==0 maps to a fixed default; never the wall clock.
	Seed int64
}

var _ Reducer = Manifold{}

// Reduce embeds ds into 2 dimensions preserving local neighborhoods.
//
// Errors: dataset validation errors, ErrTooFewRows, ErrBadNeighbors.
//
// Complexity: O(n²·d) for the kNN graph + O(epochs · n · (k + samples)).
func (m Manifold) Reduce(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	n := ds.Rows()
	if n < 3 {
		return nil, ErrTooFewRows
	}
	if m.Neighbors < 0 {
		return nil, ErrBadNeighbors
	}

	k := m.Neighbors
	if k == 0 {
		k = DefaultNeighbors
	}
	if k > n-1 {
		k = n - 1
	}
	epochs := m.Epochs
	if epochs == 0 {
		epochs = DefaultEpochs
	}
	lr0 := m.LearningRate
	if lr0 == 0 {
		lr0 = DefaultLearningRate
	}
	seed := m.Seed
	if seed == 0 {
		seed = manifoldDefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	neighbors := knnGraph(ds.Raw(), k)

	// Random initial layout in a small disc; the optimizer does the rest.
	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = []float64{rng.NormFloat64() * 0.1, rng.NormFloat64() * 0.1}
	}

	var (
		epoch int
		i     int
		s     int
	)
	for epoch = 0; epoch < epochs; epoch++ {
		lr := lr0 * (1 - float64(epoch)/float64(epochs))
		for i = 0; i < n; i++ {
			// Attraction along kNN edges.
			for _, j := range neighbors[i] {
				attract(coords[i], coords[j], lr)
			}
			// Repulsion from sampled non-neighbors.
			for s = 0; s < negativeSamples; s++ {
				l := rng.Intn(n)
				if l == i {
					continue
				}
				repel(coords[i], coords[l], lr)
			}
		}
	}

	out := make([][]float64, n)
	for i = 0; i < n; i++ {
		out[i] = []float64{coords[i][0], coords[i][1]}
	}

	return dataset.Wrap([]string{Dim1, Dim2}, out), nil
}

// knnGraph returns, per row, the indices of its k nearest rows (Euclidean).
// Brute force; fine for the in-memory table sizes this package targets.
//
// Complexity: O(n² · d) time, O(n²) space for the candidate sort.
func knnGraph(rows [][]float64, k int) [][]int {
	n := len(rows)
	out := make([][]int, n)
	type cand struct {
		idx  int
		dist float64
	}

	cands := make([]cand, 0, n-1)
	for i := 0; i < n; i++ {
		cands = cands[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cands = append(cands, cand{idx: j, dist: floats.Distance(rows[i], rows[j], 2)})
		}
		sort.Slice(cands, func(a, b int) bool {
			if cands[a].dist != cands[b].dist {
				return cands[a].dist < cands[b].dist
			}

			return cands[a].idx < cands[b].idx // stable tie-break for determinism
		})

		out[i] = make([]int, k)
		for c := 0; c < k; c++ {
			out[i][c] = cands[c].idx
		}
	}

	return out
}

// attract moves p toward q with a force that saturates for far neighbors,
// so a single remote edge cannot fling the layout apart.
func attract(p, q []float64, lr float64) {
	dx, dy := q[0]-p[0], q[1]-p[1]
	d2 := dx*dx + dy*dy
	w := d2 / (1 + d2) // ~d² near zero, →1 far away
	p[0] += lr * w * dx
	p[1] += lr * w * dy
}

// repel pushes p away from q with a force that decays with distance.
func repel(p, q []float64, lr float64) {
	dx, dy := p[0]-q[0], p[1]-q[1]
	d2 := dx*dx + dy*dy
	w := 1 / (1 + 4*d2)
	p[0] += lr * w * dx
	p[1] += lr * w * dy
}
