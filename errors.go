package budget

import "errors"

// Every failure in this package is recoverable: the caller keeps its prior
// state and surfaces the error as a notification. The sentinels below let
// callers classify a failure with errors.Is without parsing messages.
var (
	// ErrValidation reports user input that fails a required-field or
	// positivity check. The operation is aborted and nothing is mutated.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate reports an attempt to add a category that already exists
	// (case-insensitive).
	ErrDuplicate = errors.New("duplicate category")

	// ErrParse reports an import document that is not parseable at all.
	ErrParse = errors.New("unreadable document")

	// ErrMalformed reports an import document that parsed but is missing
	// the income or expenses arrays.
	ErrMalformed = errors.New("malformed document")

	// ErrStorage reports a failed persistence write. The in-memory state
	// has already changed and is kept; it diverges from the persisted copy
	// until the next successful write.
	ErrStorage = errors.New("storage failed")

	// ErrFetch reports a failed exchange rate refresh (network, status,
	// payload or a non-positive derived rate). The last known rate is
	// retained and no retry is scheduled.
	ErrFetch = errors.New("rate fetch failed")
)
