// Package kmeans partitions a numeric dataset into k clusters by Lloyd's
// algorithm with k-means++ seeding.
//
// 🚀 What is k-means?
//
//	An iterative centroid-based partitioning: assign every row to its
//	nearest centroid (Euclidean), recompute each centroid as the mean of
//	its rows, repeat until assignments stabilize or an iteration cap hits.
//	It minimizes within-cluster variance but guarantees only a local
//	optimum — hence seeded multi-restart support.
//
// ✨ Key features:
//   - k-means++ initialization (spread-out starting centroids)
//   - multiple independent restarts, keeping the lowest-inertia run
//   - deterministic: explicit Seed; seed==0 maps to a fixed default
//   - 1-based cluster labels in [1, k], one per input row
//   - empty-cluster repair (re-seed on the farthest point)
//
// ⚙️ Usage:
//
//	opts := kmeans.DefaultOptions()
//	opts.Seed = 42
//	res, err := kmeans.Partition(ds, 3, &opts)
//	// res.Labels[i] ∈ [1,3], res.Inertia, res.Centroids
//
// Complexity: O(restarts · iter · n · k · d) time, O(n + k·d) extra space.
package kmeans
