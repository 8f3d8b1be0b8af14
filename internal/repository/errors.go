package repository

import "errors"

// ErrDuplicateEmail is returned by UserRepository.Create when the unique
// index on email rejects the row, which is how a lost race between two
// concurrent registrations for the same address surfaces.
var ErrDuplicateEmail = errors.New("email already taken")
