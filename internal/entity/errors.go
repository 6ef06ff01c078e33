package entity

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrValidation    = errors.New("validation failed")
	ErrAlreadyExists = errors.New("already exists")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginInProgress    = errors.New("login already in progress")
	ErrLoginUnavailable   = errors.New("login temporarily unavailable")
	ErrAlreadyLoggedIn    = errors.New("session already authenticated")
	ErrSessionExpired     = errors.New("session expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

var (
	ErrNotPending          = errors.New("request is not pending")
	ErrStageExpired        = errors.New("staged decision expired")
	ErrAttachmentsDisabled = errors.New("attachments storage is not configured")
)

var (
	ErrEmailInvalidLen    = errors.New("email length exceeds 255 characters")
	ErrEmailInvalidFormat = errors.New("incorrect email format")
	ErrPasswordEmpty      = errors.New("password is required")
)

var (
	ErrUnknownMailType = errors.New("unknown mail type")
	ErrMailQueueFull   = errors.New("mail queue is full")
)
