package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure for the user and for metrics.
type Kind string

const (
	KindInput  Kind = "input"
	KindData   Kind = "data"
	KindSource Kind = "source"
)

// InputError reports a missing or empty search target.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s", e.Message)
}

// DataError reports that there is nothing to search.
type DataError struct {
	Message string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data error: %s", e.Message)
}

// SourceError reports a failed fetch from the brand source.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error (%s): %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func NewInputError(format string, args ...any) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

func NewDataError(format string, args ...any) error {
	return &DataError{Message: fmt.Sprintf(format, args...)}
}

func NewSourceError(source string, err error) error {
	return &SourceError{Source: source, Err: err}
}

func IsInput(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

func IsData(err error) bool {
	var target *DataError
	return errors.As(err, &target)
}

func IsSource(err error) bool {
	var target *SourceError
	return errors.As(err, &target)
}

// KindOf returns the classification of err, or "" if it is not one of ours.
func KindOf(err error) Kind {
	switch {
	case IsInput(err):
		return KindInput
	case IsData(err):
		return KindData
	case IsSource(err):
		return KindSource
	default:
		return ""
	}
}

// Title is the heading shown to the user for an error dialog.
func Title(err error) string {
	switch KindOf(err) {
	case KindInput:
		return "Input Error"
	case KindData:
		return "Data Error"
	case KindSource:
		return "Database Error"
	default:
		return "Error"
	}
}
