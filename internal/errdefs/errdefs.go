package errdefs

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrTypeGeneric ErrorType = iota
	ErrTypeMissingKeys
	ErrTypeMissingFirmware
	ErrTypeBootFailed
	ErrTypeInstallFailed
	ErrTypeScanFailed
	ErrTypePersistence
	ErrTypePickerCancelled
	ErrTypeBusy
)

// String returns the dialog title used when an error of this type is shown.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeMissingKeys, ErrTypeMissingFirmware:
		return "Missing Files"
	case ErrTypeBootFailed:
		return "Boot Error"
	case ErrTypeInstallFailed:
		return "Install Error"
	case ErrTypeScanFailed:
		return "Scan Error"
	case ErrTypePersistence:
		return "Settings Error"
	case ErrTypePickerCancelled:
		return "Cancelled"
	case ErrTypeBusy:
		return "Busy"
	default:
		return "Error"
	}
}

type CustomError struct {
	Type    ErrorType
	Message string
	Code    int // Core result code for boot failures, 0 otherwise
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// Wrap attaches a type and message to an underlying error.
func Wrap(errType ErrorType, message string, err error) error {
	return &CustomError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// NewBootError reports a non-success result code returned by the core.
func NewBootError(code int) error {
	return &CustomError{
		Type:    ErrTypeBootFailed,
		Message: fmt.Sprintf("Boot Failed Error Code: %d", code),
		Code:    code,
	}
}

// TypeOf returns the ErrorType of the first CustomError in err's chain, or
// ErrTypeGeneric.
func TypeOf(err error) ErrorType {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type
	}
	return ErrTypeGeneric
}

// IsType reports whether err's chain contains a CustomError of type t.
func IsType(err error, t ErrorType) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Type == t
}

var (
	ErrPickerCancelled = NewCustomError(ErrTypePickerCancelled, "no folder selected")
	ErrInstallBusy     = NewCustomError(ErrTypeBusy, "an install is already running")
)
