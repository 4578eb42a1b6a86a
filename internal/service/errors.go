package service

import "errors"

// 错误分类。handler 只需要 errors.Is 到这几个父错误就能决定 HTTP 状态码
var (
	ErrValidation = errors.New("validation failed")
	ErrUpstream   = errors.New("upstream failure")
	ErrInternal   = errors.New("internal server error")
)

// 具体错误。Error() 即返回给客户端的文案
var (
	ErrMissingCredentials = kindError(ErrValidation, "Email and password are required")
	ErrMissingPrompt      = kindError(ErrValidation, "Missing prompt")
	ErrInvalidPost        = kindError(ErrValidation, "Title is required")
	ErrUnknownAuthor      = kindError(ErrValidation, "Unknown userId")
	ErrInvalidUserID      = kindError(ErrValidation, "Invalid user id")

	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrForbidden          = errors.New("Forbidden")
	ErrUserNotFound       = errors.New("User not found")
)

type classified struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &classified{kind: kind, msg: msg}
}

func (e *classified) Error() string { return e.msg }
func (e *classified) Unwrap() error { return e.kind }

// upstreamError 保留上游原始 message，同时可以 errors.Is(err, ErrUpstream)
type upstreamError struct {
	cause error
}

func (e *upstreamError) Error() string   { return e.cause.Error() }
func (e *upstreamError) Unwrap() []error { return []error{ErrUpstream, e.cause} }

// internalError 对外只暴露 ErrInternal，cause 留给日志
type internalError struct {
	op    string
	cause error
}

func (e *internalError) Error() string   { return e.op + ": " + e.cause.Error() }
func (e *internalError) Unwrap() []error { return []error{ErrInternal, e.cause} }

func internal(op string, err error) error {
	return &internalError{op: op, cause: err}
}
