package util

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// ErrorKind 返回给客户端的稳定错误类型
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindConflict     ErrorKind = "conflict"
	KindRateLimited  ErrorKind = "rate_limited"
	KindInternal     ErrorKind = "internal"
)

var (
	ErrEmailRegistered    = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidPagination  = errors.New("page and limit must be positive integers")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrMissingFields      = errors.New("Missing fields")
	ErrPermissionDenied   = errors.New("Forbidden")
	ErrPasswordTooLong    = errors.New("Password must be at most 72 bytes")
)

// ValidationError 包装请求绑定错误，原始信息只写日志
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type errorMapping struct {
	target error
	status int
	kind   ErrorKind
}

// 顺序即优先级
var errorMappings = []errorMapping{
	{ErrEmailRegistered, http.StatusConflict, KindConflict},
	{ErrInvalidCredentials, http.StatusUnauthorized, KindUnauthorized},
	{ErrPermissionDenied, http.StatusForbidden, KindForbidden},
	{ErrInvalidPagination, http.StatusBadRequest, KindValidation},
	{ErrInvalidUserID, http.StatusBadRequest, KindValidation},
	{ErrMissingFields, http.StatusBadRequest, KindValidation},
	{ErrPasswordTooLong, http.StatusBadRequest, KindValidation},
	{gorm.ErrForeignKeyViolated, http.StatusBadRequest, KindValidation},
	{gorm.ErrDuplicatedKey, http.StatusConflict, KindConflict},
}

// Classify 将错误映射为 HTTP 状态码、错误类型和可以安全返回给客户端的信息
func Classify(err error) (int, ErrorKind, string) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, KindValidation, ErrMissingFields.Error()
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			switch m.target {
			case gorm.ErrForeignKeyViolated:
				return m.status, m.kind, "Referenced resource does not exist"
			case gorm.ErrDuplicatedKey:
				return m.status, m.kind, "Resource already exists"
			}
			return m.status, m.kind, m.target.Error()
		}
	}

	return http.StatusInternalServerError, KindInternal, "Internal server error"
}
