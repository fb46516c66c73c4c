// Copyright 2025 Certen Protocol
//
// Package bridgeerr defines the orchestrator's error taxonomy.
//
// Errors are classified by Kind rather than by Go type: a bridge error is
// an *Error carrying one of the Kind values below, and callers dispatch on
// that Kind (via KindOf, or errors.Is against Sentinel(kind)) rather than
// on concrete type switches.
package bridgeerr

import "errors"

// Kind identifies which recovery/propagation policy an error carries.
type Kind string

const (
	// KindTransport covers gRPC/JSON-RPC network failures. The home-chain
	// client returns them on the first failed call (no bounded-retry
	// wrapper is applied); the calling loop aborts its iteration and tries
	// again on its next tick.
	KindTransport Kind = "transport"

	// KindDecode covers a malformed EVM log. The offending event is
	// dropped with a warning; the oracle advances past it.
	KindDecode Kind = "decode"

	// KindBounds covers an integer or length field that overflows its
	// declared width. The containing log batch fails decoding and the
	// iteration aborts.
	KindBounds Kind = "bounds"

	// KindQuorum covers fewer than pass-threshold valid signatures on an
	// artifact. The artifact is skipped for this tick only.
	KindQuorum Kind = "quorum"

	// KindStaleArtifact covers a batch/logic-call past its timeout, or
	// whose nonce already advanced on the EVM side. Skipped permanently.
	KindStaleArtifact Kind = "stale_artifact"

	// KindInvalidBridgeState covers a signature recovering to the wrong
	// address, or a monitored-balance mismatch. Fatal.
	KindInvalidBridgeState Kind = "invalid_bridge_state"

	// KindInsufficientFees covers the home chain rejecting a submission
	// for an underfunded fee. Fatal — slashing risk.
	KindInsufficientFees Kind = "insufficient_fees"

	// KindGovernanceReset covers last_event_nonce going backward. Not
	// fatal — triggers an oracle resync.
	KindGovernanceReset Kind = "governance_reset"
)

// Error is a bridge error carrying a Kind plus a human-readable message.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// Fatal reports whether this Kind should terminate the process.
func (k Kind) Fatal() bool {
	switch k {
	case KindInvalidBridgeState, KindInsufficientFees:
		return true
	default:
		return false
	}
}

// Retryable reports whether this Kind's local-recovery policy is to retry.
func (k Kind) Retryable() bool {
	switch k {
	case KindTransport, KindGovernanceReset:
		return true
	default:
		return false
	}
}

// New constructs an Error of the given Kind wrapping cause (which may be nil).
func New(kind Kind, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, err: cause}
}

// Is allows errors.Is(err, bridgeerr.Sentinel(bridgeerr.KindX)) to work by
// comparing Kind against a sentinel produced by Sentinel(kind).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	if other.err == nil && other.msg == "" {
		return e.kind == other.kind
	}
	return e == other
}

// Sentinel returns a comparable marker Error for a Kind, for use with
// errors.Is(err, bridgeerr.Sentinel(bridgeerr.KindTransport)).
func Sentinel(kind Kind) error {
	return &Error{kind: kind}
}

// KindOf extracts the Kind of err if it (or something it wraps) is a
// *Error, and ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be.kind, true
	}
	return "", false
}
