package service

import "github.com/yndnr/memohalo-go/internal/core/domain"

// storageErr passes domain errors through and wraps anything else as a
// storage error.
func storageErr(err error) error {
	if err == nil || domain.IsDomainError(err, "") {
		return err
	}
	return domain.ErrStorageError.WithCause(err)
}
