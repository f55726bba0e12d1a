package core

import (
	"errors"
)

var (
	ErrInvalidHandle = errors.New("invalid or stale handle")
	ErrRegistryFull  = errors.New("registry is full")
	ErrInvalidMesh   = errors.New("invalid mesh")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknown       = errors.New("unknown")
)
