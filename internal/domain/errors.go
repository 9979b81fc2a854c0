package domain

import "errors"

var (
	ErrInvalidCapacity = errors.New("load capacity must be positive")
	ErrInvalidLoad     = errors.New("current load must not be negative")
	ErrEmptyRoute      = errors.New("route has no destinations")
	ErrUnknownLocation = errors.New("unknown location")
	ErrNotFound        = errors.New("not found")
)
