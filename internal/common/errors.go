package common

import "errors"

// Session errors.
var (
	ErrNoIdentity   = errors.New("not logged in")
	ErrTokenMissing = errors.New("token missing in login response")
	ErrTokenExpired = errors.New("session expired, please log in again")
)
