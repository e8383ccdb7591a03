package service

import "errors"

var (
	ErrLoadUsers             = errors.New("error loading users")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
