package cmdbuf

import "errors"

// ErrUnresolvedPending indicates an operation referenced a PendingEntity
// whose CreateEntity op has not yet been recorded ahead of it in the same
// buffer — a programmer ordering error, since CreateEntity must be
// recorded before any op that targets its PendingEntity.
var ErrUnresolvedPending = errors.New("cmdbuf: pending entity referenced before its CreateEntity op")
