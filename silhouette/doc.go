// Package silhouette scores clusterings and selects a cluster count.
//
// 🚀 What is a silhouette?
//
//	For every point, compare the mean distance to its own cluster (a)
//	against the mean distance to the nearest other cluster (b):
//
//	    s = (b − a) / max(a, b)   ∈ [−1, 1]
//
//	High s means the point sits deep inside a well-separated cluster.
//	The mean of s over all points scores the whole partition.
//
// ✨ Key features:
//   - Widths / Score for any labeling, not just k-means output
//   - Select scans k = kmin..kmax with seeded k-means and picks the
//     FIRST local maximum of the silhouette curve — simpler groupings are
//     preferred over later, possibly higher peaks
//   - an advisory adequacy threshold (default 0.5): a selection at or
//     below it signals that a 2-D embedding should be tried before the
//     partition is accepted; it is reported, never an error
//
// Complexity: silhouette widths are O(n²·d); Select adds a k-means run per
// candidate k.
package silhouette
