// Package dataset defines the numeric table every klust algorithm consumes:
// an ordered sequence of rows over named, continuous columns.
//
// Invariants enforced by Validate (and by New):
//   - at least one row and one column;
//   - every row has exactly len(Columns()) values;
//   - every value is finite (no NaN, no ±Inf) — distance computations
//     downstream are undefined otherwise.
//
// The package also ships Vehicles(), a built-in 234-row automotive table
// (engine displacement, cylinder count, city mpg, highway mpg) used across
// the documentation and the end-to-end tests.
package dataset
