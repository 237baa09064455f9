package compiler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRoot reports a root value that is not an object of type form.
	ErrInvalidRoot = errors.New("invalid root")

	// ErrUnsupportedArrayShape reports an array control declaring a list of
	// item schemas.
	ErrUnsupportedArrayShape = errors.New("unsupported array shape")

	// ErrMissingArrayItem reports an array control without items.
	ErrMissingArrayItem = errors.New("missing array item")

	// ErrUnsupportedCheckboxValueType reports a checkbox trueValue that is not
	// a string, number or boolean.
	ErrUnsupportedCheckboxValueType = errors.New("unsupported checkbox value type")

	// ErrUnhandledFieldType reports a control whose type tag has no rule.
	ErrUnhandledFieldType = errors.New("unhandled field type")

	// ErrInvalidNode reports a control, child entry or item that is not an
	// object.
	ErrInvalidNode = errors.New("invalid node")

	// ErrMissingFieldName reports a data control inside an object that has no
	// name to key its property by.
	ErrMissingFieldName = errors.New("missing field name")

	// ErrInvalidContainerBody reports a container whose body is absent or is
	// not a single control.
	ErrInvalidContainerBody = errors.New("invalid container body")
)

// Error is returned for every conversion failure. It unwraps to one of the
// package sentinels so callers can branch with errors.Is.
type Error struct {
	// Path is the dotted property path of the failing control, with "[]"
	// marking array elements ("contacts[].email"). Empty for the root.
	Path string
	// Pointer is the JSON pointer of the failing fragment inside the output
	// schema ("/properties/contacts/items/properties/email").
	Pointer string
	// Type is the type tag of the failing control, when known.
	Type   string
	Err    error
	Detail string
}

func (e *Error) Error() string {
	msg := strings.TrimSpace(e.Detail)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "conversion failed"
	}
	if strings.TrimSpace(e.Path) == "" {
		return "amis compiler: " + msg
	}
	return fmt.Sprintf("amis compiler: %s (field %s)", msg, e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, path fieldPath, tag, format string, args ...any) *Error {
	return &Error{
		Path:    path.String(),
		Pointer: path.Pointer(),
		Type:    tag,
		Err:     kind,
		Detail:  fmt.Sprintf(format, args...),
	}
}
