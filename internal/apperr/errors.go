// Package apperr holds the sentinel errors shared across zoodesk packages.
package apperr

import "errors"

var (
	ErrResourceUnreadable = errors.New("resource unreadable")
	ErrConfigMissing      = errors.New("configuration missing")
	ErrMalformedWarning   = errors.New("malformed warning line")
	ErrUnknownCategory    = errors.New("unknown category")
)
