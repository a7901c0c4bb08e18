package tools

import "errors"

var (
	// ErrToolNameEmpty is returned when registering a tool without a name.
	ErrToolNameEmpty = errors.New("tool name is empty")

	// ErrToolExecuteNil is returned when registering a tool without an
	// execute function.
	ErrToolExecuteNil = errors.New("tool execute function is nil")

	// ErrToolAlreadyRegistered is returned on duplicate registration.
	ErrToolAlreadyRegistered = errors.New("tool already registered")

	// ErrToolNotFound is returned when invoking an unknown tool.
	ErrToolNotFound = errors.New("tool not found")
)
