// Package embed projects a numeric dataset into exactly two dimensions.
//
// Two interchangeable strategies implement the Reducer interface:
//
//   - MDS — classical (metric) multidimensional scaling: build the pairwise
//     Euclidean distance matrix, double-center the squared distances into a
//     Gram matrix, eigendecompose it, and keep the two leading positive
//     eigenpairs. Deterministic given the input, and the embedding's
//     pairwise distances approximate the originals (exactly, for data that
//     is genuinely 2-D).
//
//   - Manifold — a stochastic neighbor-graph embedding: k nearest
//     neighbors define attractive edges, random non-neighbors repel, and
//     seeded gradient steps settle the layout. It preserves local
//     neighborhoods, NOT global distances, and varies across seeds.
//
// Policy: prefer MDS; reach for Manifold only as a comparison fallback,
// since its output makes downstream cluster-count arguments harder to
// justify analytically.
package embed
