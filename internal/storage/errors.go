package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrorKind classifies a storage failure. Every error returned by the
// file store carries exactly one kind; callers map kinds to their own
// error vocabulary instead of inspecting native errno values.
type ErrorKind int

const (
	// KindNotFound means the database file does not exist.
	KindNotFound ErrorKind = iota
	// KindAccessDenied means the database file could not be read due to permissions.
	KindAccessDenied
	// KindReadFailed covers any other read failure.
	KindReadFailed
	// KindBadJSON means the file content does not decode as JSON.
	KindBadJSON
	// KindNotArray means the file decodes to something other than a JSON array.
	KindNotArray
	// KindWriteDenied means the database file could not be written due to permissions.
	KindWriteDenied
	// KindNoSpace means the write failed because the device is out of space.
	KindNoSpace
	// KindWriteFailed covers any other write failure.
	KindWriteFailed
)

// String returns a short name for the kind, used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAccessDenied:
		return "access denied"
	case KindReadFailed:
		return "read failed"
	case KindBadJSON:
		return "invalid JSON"
	case KindNotArray:
		return "not an array"
	case KindWriteDenied:
		return "write permission denied"
	case KindNoSpace:
		return "no space left"
	case KindWriteFailed:
		return "write failed"
	}
	return "unknown"
}

// Error is a classified storage failure.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task database %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("task database %s: %s", e.Path, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classifyRead maps a native read error to a kind.
func classifyRead(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindAccessDenied
	default:
		return KindReadFailed
	}
}

// classifyWrite maps a native write error to a kind.
func classifyWrite(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return KindWriteDenied
	case errors.Is(err, syscall.ENOSPC):
		return KindNoSpace
	default:
		return KindWriteFailed
	}
}
