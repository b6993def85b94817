package sampler

import "errors"

// ErrUnknownKind indicates a function family name that ParseKind does not know.
var ErrUnknownKind = errors.New("sampler: unknown function kind")
