package controller

import "errors"

var ErrAlreadyStarted = errors.New("controller already started")
