package repository

import "errors"

// Business-rule rejections surfaced by the stores. Handlers translate these
// into structured response bodies; anything else is a storage fault.
var (
	ErrNicknameTaken   = errors.New("nickname already registered")
	ErrNotAuthorized   = errors.New("authorization failed")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrProfileExists   = errors.New("profile already exists")
	ErrTooManyPhotos   = errors.New("too many photos")
	ErrUnknownUser     = errors.New("unknown user")
	ErrUnknownSubject  = errors.New("unknown subject")
)
