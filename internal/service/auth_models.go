package service

import "jobhunt/internal/entity"

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
}

type GoogleLoginInput struct {
	Name      string
	Email     string
	IPAddress *string
}

type ResetPasswordInput struct {
	Email           string
	OTP             string
	NewPassword     string
	ConfirmPassword string
}

type SessionResult struct {
	Token     string
	ExpiresIn int64
	User      *entity.User
}
