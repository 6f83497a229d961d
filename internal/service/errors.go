package service

import "errors"

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("please verify your email before login")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	ErrJobNotFound     = errors.New("job not found")
	ErrJobAlreadySaved = errors.New("job already saved")
)
