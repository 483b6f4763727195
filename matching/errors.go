package matching

import "errors"

var (
	ErrInvalidStatus   = errors.New("status must be MATCHED or REJECTED")
	ErrSelfAction      = errors.New("cannot act on your own profile")
	ErrUserNotFound    = errors.New("user not found")
	ErrQuotaExceeded   = errors.New("daily like limit reached")
	ErrLikeNotFound    = errors.New("like not found")
	ErrAlreadyResolved = errors.New("like has already been responded to")
)
