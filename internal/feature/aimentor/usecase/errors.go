// Package usecase implements the AI mentor conversation and its free-chat lock.
package usecase

import "errors"

// ErrExternalService wraps failures from the completion provider. It is logged and
// shown in the transcript, never returned to the HTTP layer.
var ErrExternalService = errors.New("completion provider failed")
