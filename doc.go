// Package klust is your in-memory toolkit for exploratory clustering —
// from column standardization to cluster-count selection and 2-D embedding.
//
// 🚀 What is klust?
//
//	A small, deterministic library that brings together the classic
//	three-step exploratory workflow:
//		• Standardize: z-score every numeric column (scale/)
//		• Select & partition: seeded k-means with silhouette-based
//		  cluster-count selection (kmeans/, silhouette/)
//		• Embed: classical MDS, with a stochastic manifold fallback,
//		  for 2-D views of the data (embed/)
//
// ✨ Why choose klust?
//
//   - Reproducible – every stochastic routine takes an explicit seed;
//     the zero seed maps to a fixed default, never to the wall clock
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest scoring – the first local maximum of the silhouette curve
//     is preferred over later, possibly higher peaks
//   - Plottable – scatter and mean-profile charts via gonum/plot (visual/)
//
// Everything is organized under flat subpackages:
//
//	dataset/    — rows-by-columns numeric tables, validation, built-in data
//	scale/      — per-column z-score standardization
//	kmeans/     — seeded k-means with k-means++ init and restarts
//	silhouette/ — silhouette widths, scores and cluster-count selection
//	embed/      — classical MDS and a manifold neighbor embedding
//	explore/    — the one-shot scale → select → partition → embed pipeline
//	visual/     — gonum/plot renderings of clusterings and embeddings
//
// The whole flow is a single forward pass:
//
//	scale → select k → partition → (if silhouette ≤ 0.5) embed → re-select → re-partition
//
// Dive into examples/ for a full walkthrough on the built-in vehicle table.
//
//	go get github.com/katalvlaran/klust
package klust
