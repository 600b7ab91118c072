package server

import "errors"

var (
	errNoAddressConfigured = errors.New("no listen address configured")
)
