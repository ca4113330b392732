package celebrant

import "errors"

// ErrNotFound is internal to the auth flow. The service maps it to the
// credential failure appropriate for the operation, so the wire never
// distinguishes "no such account" from "wrong password".
var ErrNotFound = errors.New("celebrant not found")
