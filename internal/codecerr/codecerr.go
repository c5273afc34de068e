// Package codecerr defines the typed error taxonomy shared by every
// internal package and re-exported by the root bitgrain package (spec
// §7). It lives in internal/ so that internal/container and
// internal/entropy — which both need to produce these errors — don't
// have to import the root package and create an import cycle.
//
// Generalizes the teacher's fmt.Errorf("...: %w", err) wrapping idiom
// into a typed Kind taxonomy; causes are built with github.com/pkg/errors
// so they carry a stack trace, and *Error supports errors.Is/errors.As
// through its Is and Unwrap methods.
package codecerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why an encode or decode call failed (spec §7).
type Kind int

const (
	// InvalidArgument covers malformed call parameters not otherwise
	// classified below (e.g. channels outside {1,3,4}, a pixel buffer
	// shorter than width*height*channels, or an unsupported chroma
	// subsampling). Out-of-range quality is clamped, not rejected.
	InvalidArgument Kind = iota
	// DimensionsOutOfRange covers width/height of 0, > 65536, or
	// whose pixel buffer would exceed the size limit.
	DimensionsOutOfRange
	// BufferTooSmall means the caller-supplied output buffer's
	// capacity was exceeded.
	BufferTooSmall
	// MalformedHeader means the 11-byte header failed to parse.
	MalformedHeader
	// TruncatedPayload means the input ended before all declared
	// data was consumed.
	TruncatedPayload
	// MalformedPayload means the entropy-coded payload contains a
	// code or value the decoder cannot interpret.
	MalformedPayload
	// AllocationFailed means an internal buffer allocation could not
	// be satisfied (e.g. a caller-declared size too large to back
	// safely).
	AllocationFailed
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case DimensionsOutOfRange:
		return "DimensionsOutOfRange"
	case BufferTooSmall:
		return "BufferTooSmall"
	case MalformedHeader:
		return "MalformedHeader"
	case TruncatedPayload:
		return "TruncatedPayload"
	case MalformedPayload:
		return "MalformedPayload"
	case AllocationFailed:
		return "AllocationFailed"
	default:
		return "Unknown"
	}
}

// Error is a codec error carrying a Kind and a stack-traced cause.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		// e.err already carries msg (New wraps it for the stack trace;
		// Wrap prepends it to the cause), so print e.err alone rather
		// than msg and e.err both.
		return fmt.Sprintf("bitgrain: %s: %v", e.Kind, e.err)
	}
	return fmt.Sprintf("bitgrain: %s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same Kind, so
// callers can do errors.Is(err, codecerr.New(codecerr.MalformedHeader, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New builds an *Error of the given kind, wrapped with a stack trace.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, msg: msg, err: errors.New(msg)}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap attaches kind to an existing error, preserving it as the cause.
func Wrap(kind Kind, err error, msg string) error {
	return &Error{Kind: kind, msg: msg, err: errors.Wrap(err, msg)}
}

// KindOf extracts the Kind of err if it (or something it wraps) is an
// *Error, defaulting to InvalidArgument otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return InvalidArgument, false
}
