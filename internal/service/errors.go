package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("invalid parameter")
	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrAdNotFound       = errors.New("advertisement not found")
	ErrEmoteSlotInvalid = errors.New("emote slot must be between 1 and 5")
	ErrClicksInvalid    = errors.New("clicks must not be negative")
	ErrDurationInvalid  = errors.New("duration must not be negative")
	ErrUserFollowExist  = errors.New("already following this poster")
	ErrUserFollowSelf   = errors.New("cannot follow yourself")
	ErrNotPoster        = errors.New("user is not a poster")
	UnauthorizedError   = errors.New("unauthorized")
	UnExpectedError     = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrUserNotFound:     NotFound,
	ErrPostNotFound:     NotFound,
	ErrAdNotFound:       NotFound,
	ErrEmoteSlotInvalid: BadRequest,
	ErrClicksInvalid:    BadRequest,
	ErrDurationInvalid:  BadRequest,
	ErrUserFollowExist:  BadRequest,
	ErrUserFollowSelf:   BadRequest,
	ErrNotPoster:        BadRequest,
	UnauthorizedError:   Unauthorized,
	UnExpectedError:     InternalServerError,
}
