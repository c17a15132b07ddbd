package app

import "errors"

// InvalidRequestError is returned when request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var ire interface{ IsInvalidRequest() bool }
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when the queried organization or user doesn't exist.
type NotFoundError string

// Error implements error interface.
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by a missing org or user.
func IsNotFoundError(err error) bool {
	var nfe interface{ IsNotFound() bool }
	if errors.As(err, &nfe) {
		return nfe.IsNotFound()
	}

	return false
}

// AuthError is returned when the API rejects the configured credential.
type AuthError string

// Error implements error interface.
func (e AuthError) Error() string {
	return string(e)
}

// IsAuth tells that this error is an authorization failure.
// Returns always true.
func (AuthError) IsAuth() bool {
	return true
}

// IsAuthError checks if given error is caused by a rejected credential.
func IsAuthError(err error) bool {
	var ae interface{ IsAuth() bool }
	if errors.As(err, &ae) {
		return ae.IsAuth()
	}

	return false
}

// RateLimitError is returned when the API signals request throttling.
type RateLimitError string

// Error implements error interface.
func (e RateLimitError) Error() string {
	return string(e)
}

// IsRateLimit tells that this error is caused by throttling.
// Returns always true.
func (RateLimitError) IsRateLimit() bool {
	return true
}

// IsRateLimitError checks if given error is caused by API throttling.
func IsRateLimitError(err error) bool {
	var rle interface{ IsRateLimit() bool }
	if errors.As(err, &rle) {
		return rle.IsRateLimit()
	}

	return false
}

// NetworkError is returned on transport-level failures.
type NetworkError string

// Error implements error interface.
func (e NetworkError) Error() string {
	return string(e)
}

// IsNetwork tells that this error is a transport failure.
// Returns always true.
func (NetworkError) IsNetwork() bool {
	return true
}

// IsNetworkError checks if given error is caused by a transport failure.
func IsNetworkError(err error) bool {
	var ne interface{ IsNetwork() bool }
	if errors.As(err, &ne) {
		return ne.IsNetwork()
	}

	return false
}
