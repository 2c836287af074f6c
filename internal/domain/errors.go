package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrItemHidden         = errors.New("item is hidden")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrKaratNotFound      = errors.New("karat not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrNotRoomMember      = errors.New("not a room member")
	ErrNoCoverImage       = errors.New("no cover image")
	ErrNotOwner           = errors.New("caller does not own the item")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNotFound      = errors.New("refresh token not found")
	ErrPhoneNumberTaken   = errors.New("phone number already registered")
	ErrSelfPurchase       = errors.New("cannot buy own item")
)
