package core

import "errors"

// Error kinds shared across the renderer. Callers wrap these with
// fmt.Errorf("...: %w", ...) and match with errors.Is.
var (
	// ErrNotImplemented marks operations that are intentionally
	// unsupported, such as ill-posed topology reconstructions.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidArgument marks requests outside the accepted domain
	// of an operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange marks enum-like parameters with unrecognized values.
	ErrOutOfRange = errors.New("out of range")

	// ErrIO wraps file input/output failures during texture and image
	// load or save. The top-level driver aborts on these.
	ErrIO = errors.New("i/o error")
)
