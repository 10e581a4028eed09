package domain

import "errors"

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrPageviewLimitExceeded = errors.New("maximum pageview limit reached")
	ErrArticleNotFound       = errors.New("article not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExists            = errors.New("user already exists")
)
