package render

import "errors"

var (
	errNilScreen = errors.New("render: screen must not be nil")
	errNilScene  = errors.New("render: scene must not be nil")
	errNilCamera = errors.New("render: camera must not be nil")
)
