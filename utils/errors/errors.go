package errors

import "github.com/gotrabandhus/gotrabandhus/constant"

// CustomError maps a business failure to its message, code and HTTP status.
// Redirect optionally carries a client-side route hint (used by the profile
// completion gate so the client can send the user back to onboarding).
type CustomError struct {
	errType  constant.ErrorType
	redirect string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Redirect() string {
	return c.redirect
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithRedirect(errorType constant.ErrorType, redirect string) CustomError {
	return CustomError{
		errType:  errorType,
		redirect: redirect,
	}
}
