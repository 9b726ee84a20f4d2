package explore

import (
	"github.com/katalvlaran/klust/dataset"
	"github.com/katalvlaran/klust/scale"
	"github.com/katalvlaran/klust/silhouette"
)

// Report is the outcome of a full exploration pass.
type Report struct {
	// Scaled is the standardized dataset all selection ran on.
	Scaled *dataset.Dataset

	// Scaler holds the fitted per-column statistics (for mapping new rows
	// into the same space, or centroids back out of it).
	Scaler *scale.Scaler

	// Primary is the selection in the scaled original space.
	Primary silhouette.Selection

	// UsedReduction reports whether the 2-D fallback pass ran (because the
	// primary score was not adequate, or it was forced).
	UsedReduction bool

	// Embedded is the 2-D embedding of the scaled data; nil unless
	// UsedReduction.
	Embedded *dataset.Dataset

	// Reduced is the selection in the embedded space; nil unless
	// UsedReduction.
	Reduced *silhouette.Selection
}

// Final returns the selection the workflow settles on: the reduced-space
// one when the fallback ran, the primary otherwise.
func (r *Report) Final() silhouette.Selection {
	if r.UsedReduction && r.Reduced != nil {
		return *r.Reduced
	}

	return r.Primary
}
