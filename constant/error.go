package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrEmailExists
	ErrInvalidCredentials
	ErrProfileIncomplete
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrEmailExists:        "user with this email already exists",
	ErrInvalidCredentials: "invalid email or password",
	ErrProfileIncomplete:  "profile incomplete",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrEmailExists:        http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrProfileIncomplete:  http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrEmailExists:        "0005",
	ErrInvalidCredentials: "0006",
	ErrProfileIncomplete:  "0007",
}
