// Package explore runs the whole exploratory clustering workflow in one
// call:
//
//	scale → select k (silhouette scan) → partition
//	        └─ if the score is not adequate (≤ threshold), embed into 2-D
//	           and re-select + re-partition in the embedded space
//
// The dispatcher is a thin composition of scale, silhouette, kmeans and
// embed; every stage keeps its own contract and sentinel errors, which
// Run forwards untouched. The adequacy threshold (default 0.5) is the only
// policy explore adds: it decides when the 2-D fallback pass runs.
//
// See examples/vehicles_exploration.go for the full worked scenario.
package explore
