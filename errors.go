package bitgrain

import "github.com/IRodriguez13/bitgrain/internal/codecerr"

// Kind classifies why an Encode* or Decode* call failed (spec §7).
type Kind = codecerr.Kind

// Error kinds the core distinguishes. Concrete messages are not part
// of the contract; callers should match on Kind via errors.As.
const (
	InvalidArgument      = codecerr.InvalidArgument
	DimensionsOutOfRange = codecerr.DimensionsOutOfRange
	BufferTooSmall       = codecerr.BufferTooSmall
	MalformedHeader      = codecerr.MalformedHeader
	TruncatedPayload     = codecerr.TruncatedPayload
	MalformedPayload     = codecerr.MalformedPayload
	AllocationFailed     = codecerr.AllocationFailed
)

// Error is the concrete error type returned by every Encode*/Decode*
// entry point. Use errors.As to recover it and inspect Kind.
type Error = codecerr.Error

// KindOf reports the Kind of err, if err is (or wraps) a *bitgrain.Error.
func KindOf(err error) (Kind, bool) {
	return codecerr.KindOf(err)
}
