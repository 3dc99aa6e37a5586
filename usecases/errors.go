package usecases

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrUsernameRequired    = errors.New("username is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidDuration     = errors.New("duration must start with an integer")
	ErrInvalidDate         = errors.New("invalid date")
)
