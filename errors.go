package gcm

import "golang.org/x/xerrors"

// ErrBadArguments is wrapped by every error Build returns because of an
// invalid combination of element count, error rate, or table size. Use
// errors.Is(err, gcm.ErrBadArguments) to distinguish it from a future error
// kind without depending on the exact message.
var ErrBadArguments = xerrors.New("gcm: bad arguments")

// wrapBadArgs wraps ErrBadArguments with a human-readable reason.
func wrapBadArgs(reason string) error {
	return xerrors.Errorf("%s: %w", reason, ErrBadArguments)
}
