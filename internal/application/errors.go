package application

import "errors"

// ErrStateNotSaved marks a transition that succeeded in memory but could
// not be mirrored into the state store. Callers treat it as a warning:
// the in-memory state stays authoritative.
var ErrStateNotSaved = errors.New("state not persisted")
