package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorNoDataReturned is raised when an insert succeeds but the store
// returns no row back.
var ErrorNoDataReturned = errors.New("no data returned")

// IntegrityError marks a keyed update/delete that affected zero rows when
// exactly one was expected. Never retried.
type IntegrityError struct {
	Op    string
	Table string
	Id    int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s on %s affected no rows (id=%d)", e.Op, e.Table, e.Id)
}

// RetryExhaustedError wraps the final failure after a bounded retry sequence.
// Intermediate failures are not carried; only the last attempt's error matters.
type RetryExhaustedError struct {
	Attempts int
	Cause    error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("operation failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Cause
}

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
