package services

import "errors"

var (
	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden means the requester is not the resource owner.
	ErrForbidden = errors.New("not authorized for this resource")
	// ErrUsernameTaken means registration hit an existing username.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrInvalidCredentials covers both unknown-username and
	// wrong-password login failures; callers cannot tell which.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthenticated means the bearer token is missing, malformed,
	// expired, or names an unknown subject.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrAlreadyLiked means the user already likes the post.
	ErrAlreadyLiked = errors.New("post already liked")
	// ErrNotLiked means the user never liked the post.
	ErrNotLiked = errors.New("post not liked")
)
