package blog

import "errors"

// Sentinel errors for store and auth operations. Ordinary "no such
// record" conditions are signalled with these, never panics.
var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrArticleExists     = errors.New("article id already exists")
	ErrInvalidStatus     = errors.New("invalid article status")
	ErrEmptyTitle        = errors.New("article title cannot be empty")
	ErrIncorrectPassword = errors.New("incorrect username or password")
	ErrForbidden         = errors.New("you do not have permission to perform this action")
)
