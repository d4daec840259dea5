package domain

import "errors"

// ErrNotFound is returned by repo functions when the requested record does
// not exist in its collection, and by the router when a navigation key or a
// selected trip cannot be resolved to a view.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by view handlers when submitted input fails a
// business rule (password too short, duplicate email, end date before start
// date). Handlers display the message field-locally before returning it, so
// callers only need it for logging — never for control flow toward the user.
var ErrValidation = errors.New("validation error")

// ErrNoSession is returned by the session manager when no user is logged in.
// It is the router's signal to guard protected views.
var ErrNoSession = errors.New("no active session")

// ErrStorageParse reports that a persisted collection could not be decoded.
// It never escapes the storage package: readers convert it into an empty
// collection so corrupt data degrades to a blank state instead of a crash.
var ErrStorageParse = errors.New("storage parse error")
