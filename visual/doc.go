// Package visual renders clustering results with gonum/plot.
//
// Two charts cover the exploratory workflow's output:
//
//   - ScatterPlot — the 2-D embedding (or any 2-column dataset) as a
//     scatter, one color per cluster, with a legend;
//   - MeanProfilePlot — per-cluster, per-column mean points with 95%
//     confidence-interval error bars, for reading off what distinguishes
//     the clusters in the original columns.
//
// Rendering is presentation, not analysis: nothing here feeds back into
// selection or partitioning.
package visual
