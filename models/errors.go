package models

// Error taxonomy used across handler and service boundaries. The helper
// maps these to HTTP status codes by concrete type.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorStore struct {
	Message string
}

func (e ErrorStore) Error() string {
	return e.Message
}

// ErrorPartialFailure reports an operation where the primary write succeeded
// but a dependent follow-up did not, e.g. a stored comment whose article
// view update failed. Callers treat the primary write as durable.
type ErrorPartialFailure struct {
	Message string
}

func (e ErrorPartialFailure) Error() string {
	return e.Message
}
