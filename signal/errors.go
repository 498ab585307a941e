package signal

import "errors"

var (
	// ErrUnknownChannel is returned when firing or reading a channel that was
	// never created on the source.
	ErrUnknownChannel = errors.New("unknown signal channel")

	// ErrMissingMember is returned when a name cannot be resolved to a
	// property, setter or signal source on an object.
	ErrMissingMember = errors.New("missing member")

	// ErrNotASignalSource is returned when binding is asked to work with a
	// value that cannot connect and disconnect callbacks.
	ErrNotASignalSource = errors.New("not a signal source")

	// ErrAlreadyBound is returned when binding a source to itself or to a
	// source it is already bound to.
	ErrAlreadyBound = errors.New("already bound")

	ErrRead   = errors.New("unreadable attribute")
	ErrWrite  = errors.New("can't set attribute")
	ErrDelete = errors.New("can't delete attribute")

	// ErrMissingFunction is returned when a setter is called before a function
	// was attached to it.
	ErrMissingFunction = errors.New("signaler has no function")

	// ErrBadArguments is returned when a typed setter receives arguments it
	// cannot convert.
	ErrBadArguments = errors.New("bad arguments")
)
