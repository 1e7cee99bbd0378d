package pathguard

import "errors"

// Safety-invariant violations. These are always fatal to the operation
// that triggered them and are never silently downgraded.
var (
	// ErrUnsafePath marks input paths with traversal tokens, NUL bytes or
	// system-directory prefixes.
	ErrUnsafePath = errors.New("unsafe path")

	// ErrOutsideBase marks a resolved output path that escapes the
	// authorized destination directory.
	ErrOutsideBase = errors.New("output path outside destination directory")

	// ErrDangerousContent marks template content that matches a known
	// code-injection pattern.
	ErrDangerousContent = errors.New("dangerous template content")

	// ErrInvalidFileName marks a file name that does not survive
	// sanitization unchanged.
	ErrInvalidFileName = errors.New("invalid file name")
)
