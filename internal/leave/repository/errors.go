package repository

import "errors"

var (
	ErrTransport = errors.New("chat transport error")
	ErrWrite     = errors.New("store write error")
	ErrQuery     = errors.New("store query error")
	ErrArchive   = errors.New("store archive error")
	ErrEmptyFind = errors.New("find needs at least one filter")
)
