package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values outside the permitted domain (e.g. an
	// unknown transaction type). Client-correctable.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single, deliberately unified failure for
	// login: it covers both "no such email" and "wrong password" so error
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid is the normalised rejection for any token
	// validation failure: bad signature, wrong issuer, expiry. Low-level
	// JWT errors stay in the logs.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrVersionIsNotSpecified is returned at startup when the application
	// version is absent from configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
