package explore

import (
	"math"

	"github.com/katalvlaran/klust/dataset"
	"github.com/katalvlaran/klust/embed"
	"github.com/katalvlaran/klust/scale"
	"github.com/katalvlaran/klust/silhouette"
)

// Default scan range: the usual exploratory band of candidate counts.
const (
	DefaultKMin = 2
	DefaultKMax = 9
)

// Option mutates workflow policy. Constructors panic only on nonsensical
// values (programmer error); data-dependent problems surface as errors
// from Run.
type Option func(*options)

type options struct {
	kmin, kmax   int
	seed         int64
	threshold    float64
	reducer      embed.Reducer
	alwaysReduce bool
	scaleOpts    []scale.Option
}

// WithKRange sets the candidate cluster-count scan range.
// Panics when kmin < 2 or kmax < kmin; whether kmax fits the dataset is
// checked against the data by Run.
func WithKRange(kmin, kmax int) Option {
	if kmin < 2 || kmax < kmin {
		panic("explore: WithKRange: need 2 <= kmin <= kmax")
	}

	return func(o *options) { o.kmin, o.kmax = kmin, kmax }
}

// WithSeed fixes all randomness in the workflow (k-means restarts and any
// stochastic reducer). Seed==0 keeps the deterministic default.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithThreshold overrides the adequacy bar deciding when the 2-D fallback
// runs. Panics on NaN.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) {
		panic("explore: WithThreshold: threshold must not be NaN")
	}

	return func(o *options) { o.threshold = t }
}

// WithReducer swaps the fallback embedding strategy (default embed.MDS).
// Panics on nil.
func WithReducer(r embed.Reducer) Option {
	if r == nil {
		panic("explore: WithReducer: reducer must not be nil")
	}

	return func(o *options) { o.reducer = r }
}

// WithAlwaysReduce forces the embedded pass even when the primary score is
// adequate — useful for side-by-side comparison of both spaces.
func WithAlwaysReduce() Option {
	return func(o *options) { o.alwaysReduce = true }
}

// WithScaleOptions forwards options to the standardization stage
// (e.g. scale.WithKeepDegenerate()).
func WithScaleOptions(opts ...scale.Option) Option {
	return func(o *options) { o.scaleOpts = opts }
}

func gatherOptions(opts ...Option) options {
	o := options{
		kmin:      DefaultKMin,
		kmax:      DefaultKMax,
		threshold: silhouette.DefaultThreshold,
		reducer:   embed.MDS{},
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// Run executes the full workflow on ds and returns a Report.
//
// Stages:
//  1. Standardize every column (scale.Standardize).
//  2. Scan k = kmin..kmax with seeded k-means, score by mean silhouette,
//     select the first local maximum (silhouette.Select).
//  3. If the selection is not adequate (score ≤ threshold) — or
//     WithAlwaysReduce is set — embed the scaled data into 2-D and repeat
//     the scan there.
//
// The adequacy check is advisory by construction: an inadequate primary
// pass is still fully reported, alongside the reduced pass.
//
// Errors: forwarded from dataset validation, scale, silhouette/kmeans and
// the configured reducer.
//
// Complexity: dominated by the silhouette scans — O(span · n²·d) — plus
// the reducer's cost when the fallback runs.
func Run(ds *dataset.Dataset, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)

	scaled, scaler, err := scale.Standardize(ds, o.scaleOpts...)
	if err != nil {
		return Report{}, err
	}

	selOpts := silhouette.DefaultOptions()
	selOpts.KMeans.Seed = o.seed
	selOpts.Threshold = o.threshold

	primary, err := silhouette.Select(scaled, o.kmin, o.kmax, &selOpts)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Scaled:  scaled,
		Scaler:  scaler,
		Primary: primary,
	}
	if primary.Adequate && !o.alwaysReduce {
		return rep, nil
	}

	// Fallback pass: re-run the scan in a 2-D embedding of the same data.
	embedded, err := o.reducer.Reduce(scaled)
	if err != nil {
		return Report{}, err
	}
	reduced, err := silhouette.Select(embedded, o.kmin, o.kmax, &selOpts)
	if err != nil {
		return Report{}, err
	}

	rep.UsedReduction = true
	rep.Embedded = embedded
	rep.Reduced = &reduced

	return rep, nil
}
