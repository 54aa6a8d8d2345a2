// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Status is the result code returned by every boundary entrypoint.
// The numeric values are part of the foreign ABI.
type Status uint8

const (
	// Success means the operation completed.
	Success Status = 0
	// Failure is unrecoverable for the call: invalid handle, terminated
	// loop, or construction failure.
	Failure Status = 1
	// TryLater is not an error. Nothing is ready yet; retry the call.
	TryLater Status = 2
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case TryLater:
		return "TryLater"
	}
	return "Status(invalid)"
}

// Err converts s into an error value for Go callers.
// TryLater maps to [iox.ErrWouldBlock] for ecosystem consistency.
func (s Status) Err() error {
	switch s {
	case Success:
		return nil
	case TryLater:
		return iox.ErrWouldBlock
	}
	return ErrFailure
}

var (
	// ErrFailure is the error form of the Failure status.
	ErrFailure = errors.New("bridge: failure")
	// ErrInvalidHandle reports a null, forged, stale or closed handle.
	ErrInvalidHandle = errors.New("bridge: invalid handle")
	// ErrClosed reports an operation on a pipe whose peer end is gone.
	ErrClosed = errors.New("bridge: pipe closed")
	// ErrDisconnected is the loop termination cause when the caller side
	// of either pipe went away.
	ErrDisconnected = errors.New("bridge: peer disconnected")
	// ErrUnknownKind reports a command or response discriminant outside
	// the protocol vocabulary.
	ErrUnknownKind = errors.New("bridge: unknown kind")
	// ErrRegistryFull reports that no handle slot is available.
	ErrRegistryFull = errors.New("bridge: handle registry exhausted")
	// ErrInvalidCapacity reports a pipe capacity below the queue minimum.
	ErrInvalidCapacity = errors.New("bridge: invalid capacity")
)

// statusOf maps an internal error onto the boundary status codes.
func statusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case iox.IsWouldBlock(err):
		return TryLater
	}
	return Failure
}
