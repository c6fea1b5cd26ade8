package common

import "errors"

var (
	// storage
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrStoreUnavailable = errors.New("store unavailable")

	// session
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrValidation          = errors.New("validation error")
	ErrInternal            = errors.New("internal error")

	// token verification
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrWrongTokenType   = errors.New("wrong token type")
)

// IsTaxonomy reports whether err already belongs to the error set that
// services expose to transports.
func IsTaxonomy(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrDuplicateEmail, ErrStoreUnavailable,
		ErrInvalidRefreshToken, ErrInvalidCredentials, ErrUnauthorized,
		ErrValidation, ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
