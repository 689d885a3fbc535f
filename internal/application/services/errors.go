package services

import "errors"

var (
	ErrEmptyComment    = errors.New("comment text is empty")
	ErrNoActiveUser    = errors.New("no active user")
	ErrUnknownAccount  = errors.New("unknown account")
	ErrPostNotFound    = errors.New("post not found")
	ErrProductNotFound = errors.New("product not found")
)
