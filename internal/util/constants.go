package util

const (
	RequestIDKey     = "request_id"
	RequestIDHeader  = "X-Request-ID"
	UserClaimsKey    = "user"
	DefaultPage      = 1
	DefaultPageLimit = 10
)
