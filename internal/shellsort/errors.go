package shellsort

import "errors"

// ErrInvalidArgument is wrapped by every error a sort call returns.
// It is raised before the buffer or the tracker is touched.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown sort strategy")

// ErrUnknownSequence is returned by ParseSequence for unrecognized names.
var ErrUnknownSequence = errors.New("unknown gap sequence")
