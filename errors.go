package friendnet

import "errors"

var (
	// ErrUnsupportedType is returned by Open for message types no pipeline
	// handles.
	ErrUnsupportedType = errors.New("unsupported message type")

	// ErrWrongType is returned when a pipeline is given another pipeline's
	// message.
	ErrWrongType = errors.New("wrong message type")

	// ErrMessageIndex is returned for a mailbox index out of range.
	ErrMessageIndex = errors.New("message index out of range")

	// ErrNilNetwork is returned by New without a network.
	ErrNilNetwork = errors.New("network is nil")
)
