package usecase

import (
	"errors"

	"sekor-bkc/pkg/apperror"
)

// wrapRepoError passes typed errors through and wraps anything else as an
// internal failure with a client-safe message.
func wrapRepoError(message string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal(message, err)
}
