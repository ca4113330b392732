package guest

import "errors"

// ErrNotFound means the guest access row does not exist. Callers treat a
// session pointing at a missing row as an invalid session.
var ErrNotFound = errors.New("guest access not found")
