package middleware

import (
	"leave-calendar-sync/pkg/log"
)

const (
	// HeaderRequestID carries the request id in and out.
	HeaderRequestID = "X-Request-ID"
	// HeaderInternalKey carries the shared key checked by Auth.
	HeaderInternalKey = "X-Internal-Key"
)

type Middleware struct {
	l           log.Logger
	internalKey string
}

func New(l log.Logger, internalKey string) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
	}
}
