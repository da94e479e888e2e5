package services

import "errors"

var (
	// ErrValidation covers bad or missing input on create/update.
	ErrValidation = errors.New("invalid input")

	// ErrTravelNotFound is returned when the referenced travel does not exist.
	ErrTravelNotFound = errors.New("travel not found")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotOwner is returned when someone other than the owner mutates a travel.
	ErrNotOwner = errors.New("only the travel owner can do this")

	// ErrSelfJoin is returned when a user requests a seat on their own travel.
	ErrSelfJoin = errors.New("you cannot join your own travel")

	// ErrTravelFull is returned when every seat is already taken.
	ErrTravelFull = errors.New("travel is already full")

	// ErrDuplicateRequest is returned on a repeat request for the same travel.
	ErrDuplicateRequest = errors.New("ride request already filed for this travel")

	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)
