package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the sync core. Handlers map them to HTTP statuses;
// services use them to decide whether a failure is retryable or terminal.
const (
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeUnknownUUID         = "unknown_uuid"
	CodeUpstreamMissing     = "upstream_missing"
	CodeMalformedIdentifier = "malformed_identifier"
	CodeUnknownEnumValue    = "unknown_enum_value"
	CodeStorageContention   = "storage_contention"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		if e.Code != "" {
			return e.Code + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func UpstreamUnavailable(err error) *Error {
	return New(http.StatusBadGateway, CodeUpstreamUnavailable, err)
}

func UnknownUUID(uuid string) *Error {
	return New(http.StatusNotFound, CodeUnknownUUID, fmt.Errorf("uuid %q not found", uuid))
}

func UpstreamMissing(uuid string) *Error {
	return New(http.StatusNotFound, CodeUpstreamMissing, fmt.Errorf("no upstream data for uuid %q", uuid))
}

func MalformedIdentifier(id string) *Error {
	return New(0, CodeMalformedIdentifier, fmt.Errorf("malformed compound identifier %q", id))
}

func UnknownEnumValue(kind, value string) *Error {
	return New(0, CodeUnknownEnumValue, fmt.Errorf("unknown %s value %q", kind, value))
}

func StorageContention(err error) *Error {
	return New(0, CodeStorageContention, err)
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code string) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// CodeOf returns the error code for err, or "" when it has none.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
