package webgl

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error is a GL validation outcome. The values are the GL error codes, so an
// Error can be handed to getError unchanged.
//
// Errors are comparable; use == or errors.Is.
type Error uint32

// Validation errors returned by Texture operations.
const (
	// ErrInvalidEnum reports an unrecognized symbolic constant.
	ErrInvalidEnum Error = 0x0500

	// ErrInvalidValue reports a numeric argument out of range, including NaN.
	ErrInvalidValue Error = 0x0501

	// ErrInvalidOperation reports an illegal state transition or an unmet
	// precondition.
	ErrInvalidOperation Error = 0x0502
)

// Error implements the error interface.
func (e Error) Error() string {
	switch e {
	case ErrInvalidEnum:
		return "webgl: INVALID_ENUM"
	case ErrInvalidValue:
		return "webgl: INVALID_VALUE"
	case ErrInvalidOperation:
		return "webgl: INVALID_OPERATION"
	default:
		return fmt.Sprintf("webgl: error 0x%04X", uint32(e))
	}
}

// Code returns the GL error code.
func (e Error) Code() uint32 {
	return uint32(e)
}

// ErrAllocationFailed marks a texture construction that yielded no object
// because the executor could not allocate an id.
var ErrAllocationFailed = errors.New("webgl: texture allocation failed")
