package atlasc

import "fmt"

// Kind classifies the reason a build failed. The orchestrator stops at
// the first one encountered; no partial atlas is ever written.
type Kind int

const (
	// InputNotFound means an -i path does not resolve to a regular,
	// readable file.
	InputNotFound Kind = iota
	// InputDecodeFailed means a file was found but its contents could
	// not be decoded as an image.
	InputDecodeFailed
	// OutOfMemory means a decoded input image exceeds the size guard
	// this build enforces.
	OutOfMemory
	// PackFailed means every sprite could not be placed within
	// max-width x max-height.
	PackFailed
	// OutputWriteFailed means the manifest or sheet PNG could not be
	// written to disk.
	OutputWriteFailed
)

func (k Kind) String() string {
	switch k {
	case InputNotFound:
		return "input not found"
	case InputDecodeFailed:
		return "input decode failed"
	case OutOfMemory:
		return "out of memory"
	case PackFailed:
		return "pack failed"
	case OutputWriteFailed:
		return "output write failed"
	default:
		return "unknown error"
	}
}

// Error is the single error type atlasc returns. Path is empty when the
// failure is not attributable to one specific file.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s", e.Kind, e.Err)
		}
		return e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errNotFound(path string, err error) error {
	return &Error{Kind: InputNotFound, Path: path, Err: err}
}

func errDecodeFailed(path string, err error) error {
	return &Error{Kind: InputDecodeFailed, Path: path, Err: err}
}

func errOutOfMemory(path string, err error) error {
	return &Error{Kind: OutOfMemory, Path: path, Err: err}
}

func errPackFailed(err error) error {
	return &Error{Kind: PackFailed, Err: err}
}

func errWriteFailed(path string, err error) error {
	return &Error{Kind: OutputWriteFailed, Path: path, Err: err}
}
