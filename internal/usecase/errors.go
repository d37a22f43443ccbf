package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrStoreAccess           = errors.New("store access failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// storeErr keeps the driver error for logs and marks it so the transport can
// answer with a generic failure.
func storeErr(err error, op string) error {
	return errors.Mark(errors.Wrap(err, op), ErrStoreAccess)
}

func wrapInvalid(msg string) error {
	return errors.Wrap(ErrInvalidInput, msg)
}

func wrapNotFound(kind string, id int64) error {
	return errors.Wrapf(ErrNotFound, "%s=%d", kind, id)
}
