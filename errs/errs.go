package errs

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInternalServerError  = "INTERNAL_SERVER_ERROR"
	CodeUnprocessableContent = "UNPROCESSABLE_CONTENT"
	CodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	CodeTimeout              = "TIMEOUT"
)

var (
	ErrUnexpectedUpstreamStatusCode  = errors.New("unexpected status code received from upstream")
	ErrUnexpectedRecipientStatusCode = errors.New("unexpected status code received from recipient")
)

type ResourceNotFoundError struct {
	err error
}

func NewResourceNotFoundError(err error) ResourceNotFoundError {
	return ResourceNotFoundError{err: err}
}

func (e ResourceNotFoundError) Error() string {
	return e.err.Error()
}

func (e ResourceNotFoundError) Unwrap() error {
	return e.err
}

type UnprocessableContentError struct {
	err error
}

func NewUnprocessableContentError(err error) UnprocessableContentError {
	return UnprocessableContentError{err: err}
}

func (e UnprocessableContentError) Error() string {
	return e.err.Error()
}

func (e UnprocessableContentError) Unwrap() error {
	return e.err
}

type ResourceAlreadyExistsError struct {
	err error
}

func NewResourceAlreadyExistsError(err error) ResourceAlreadyExistsError {
	return ResourceAlreadyExistsError{err: err}
}

func (e ResourceAlreadyExistsError) Error() string {
	return e.err.Error()
}

func (e ResourceAlreadyExistsError) Unwrap() error {
	return e.err
}

// CorruptStateError means persisted state exists but cannot be decoded.
type CorruptStateError struct {
	err error
}

func NewCorruptStateError(err error) CorruptStateError {
	return CorruptStateError{err: err}
}

func (e CorruptStateError) Error() string {
	return fmt.Sprintf("persisted state is corrupt: %s", e.err.Error())
}

func (e CorruptStateError) Unwrap() error {
	return e.err
}

// FetchError is returned when the upstream source is unreachable or answers with a non-2xx status.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func NewFetchError(source string, statusCode int, err error) FetchError {
	return FetchError{Source: source, StatusCode: statusCode, Err: err}
}

func (e FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch from %s, status code %d", e.Source, e.StatusCode)
	}

	return fmt.Sprintf("failed to fetch from %s: %s", e.Source, e.Err)
}

func (e FetchError) Unwrap() error {
	return e.Err
}

// DeliveryError is returned when a recipient is unreachable or rejects a notification.
type DeliveryError struct {
	URL        string
	StatusCode int
	Err        error
}

func NewDeliveryError(url string, statusCode int, err error) DeliveryError {
	return DeliveryError{URL: url, StatusCode: statusCode, Err: err}
}

func (e DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to notify recipient, status code %d", e.StatusCode)
	}

	return fmt.Sprintf("failed to notify recipient: %s", e.Err)
}

func (e DeliveryError) Unwrap() error {
	return e.Err
}
