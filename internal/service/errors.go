package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("user already exists")
	// ErrInvalidOTP covers both a wrong code and an expired one; the store
	// removes expired codes on its own so the two are indistinguishable here.
	ErrInvalidOTP         = errors.New("invalid otp or otp has expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("please verify your email before logging in")
	// ErrInvalidResetToken covers both a wrong reset token and an expired one.
	ErrInvalidResetToken = errors.New("invalid or expired token")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters long")
	ErrUserNotFound      = errors.New("user not found")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrEmailSendFailed   = errors.New("email could not be sent")
)
