package dataset

import "errors"

var (
	// ErrEmptyDataset is returned when a dataset has no rows or no columns.
	ErrEmptyDataset = errors.New("dataset: empty dataset")

	// ErrRaggedRows is returned when at least one row length differs from
	// the declared column count.
	ErrRaggedRows = errors.New("dataset: ragged rows")

	// ErrColumnMismatch is returned when the number of column names does not
	// match the row width, or a referenced column does not exist.
	ErrColumnMismatch = errors.New("dataset: column mismatch")

	// ErrNonFinite is returned when a cell holds NaN or ±Inf.
	// All klust distance computations require finite inputs.
	ErrNonFinite = errors.New("dataset: non-finite value")

	// ErrOutOfRange is returned by indexed accessors for invalid indices.
	ErrOutOfRange = errors.New("dataset: index out of range")
)
