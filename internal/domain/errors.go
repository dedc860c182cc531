package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrStateNotFound   = errors.New("account state not found")
	ErrMissingToken    = errors.New("credential cookie is missing the XSRF-TOKEN marker")
)
