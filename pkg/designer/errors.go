package designer

import "errors"

var (
	ErrIndexOutOfRange       = errors.New("component index out of range")
	ErrUnknownField          = errors.New("field not declared by the component schema")
	ErrRequiredFieldsMissing = errors.New("required fields are empty")
	ErrNotEditing            = errors.New("no component is open for editing")
)
