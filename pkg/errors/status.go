// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

// Status is an operation status code. Codes below 300 represent success.
// Client errors use the 4xx range, domain-specific client errors the 46x
// range, and server errors the 5xx range.
type Status uint64

const (
	// OK means the operation succeeded.
	OK Status = 200

	// BadRequest means the operation was malformed.
	BadRequest Status = 400

	// Unauthorized means the principal is not authorized to perform the
	// operation, either because it is not the root authority or because it
	// does not hold the required capability.
	Unauthorized Status = 401

	// NotFound means a required record does not exist.
	NotFound Status = 404

	// Conflict means a record already exists where one was to be created.
	Conflict Status = 409

	// NotRegistered means the currency has no supply ledger.
	NotRegistered Status = 460

	// EmptyQueue means a burn or cancel was requested against a preburn
	// queue with no pending requests.
	EmptyQueue Status = 461

	// LimitExceeded means a mint exceeded the per-call ceiling.
	LimitExceeded Status = 462

	// Overflow means an arithmetic result would exceed the counter range.
	Overflow Status = 463

	// InsufficientFunds means a withdrawal exceeded the source amount.
	InsufficientFunds Status = 464

	// NonZeroDestruction means an attempt to discard a non-zero unit or a
	// non-empty queue.
	NonZeroDestruction Status = 465

	// UnknownError is an unclassified failure.
	UnknownError Status = 500

	// InternalError means the system state is inconsistent. It indicates a
	// bug or corruption, not a caller error.
	InternalError Status = 501

	// EncodingError means a record could not be marshalled or unmarshalled.
	EncodingError Status = 502
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not found"
	case Conflict:
		return "already exists"
	case NotRegistered:
		return "currency not registered"
	case EmptyQueue:
		return "preburn queue is empty"
	case LimitExceeded:
		return "mint limit exceeded"
	case Overflow:
		return "arithmetic overflow"
	case InsufficientFunds:
		return "insufficient funds"
	case NonZeroDestruction:
		return "cannot destroy non-zero value"
	case UnknownError:
		return "unknown error"
	case InternalError:
		return "internal error"
	case EncodingError:
		return "encoding error"
	default:
		return "unknown status"
	}
}

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsClientError returns true if the status is a client error.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true if the status is a server error.
func (s Status) IsServerError() bool { return s >= 500 }

// Error implements error.
func (s Status) Error() string { return s.String() }
