package domain

import "errors"

var (
	ErrComponentNotFound = errors.New("component not found")
	ErrPageNotFound      = errors.New("page not found")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrUnknownSection    = errors.New("unknown section")
	ErrUnknownLayout     = errors.New("unknown layout")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrModalState        = errors.New("section picker is not at this step")
	ErrNotEditing        = errors.New("page title is not being edited")
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrInvalidDevice     = errors.New("invalid device")
)
