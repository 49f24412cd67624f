package repositories

import "fmt"

// StorageError is the single domain error surfaced for storage-engine
// failures. Callers never see engine-specific error types; the underlying
// cause is available through errors.Unwrap. Absence of rows is not an
// error and is reported as an empty result instead.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("metrics storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
