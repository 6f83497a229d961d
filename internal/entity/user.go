package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:text;not null"`

	IsAdmin    bool `gorm:"default:false"`
	IsVerified bool `gorm:"default:false"`

	// Verification state, present only while an email verification is
	// outstanding. The stored value is the sha256 of the token that was
	// mailed out, never the token itself.
	VerificationToken        *string `gorm:"type:text;index"`
	VerificationTokenExpires *time.Time

	// Recovery state, present only during an active password-reset flow.
	OTPCode    *string `gorm:"type:varchar(6)"`
	OTPExpires *time.Time

	SavedJobs []Job `gorm:"many2many:saved_jobs"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClearVerification unsets the verification pair once the token is consumed.
func (u *User) ClearVerification() {
	u.VerificationToken = nil
	u.VerificationTokenExpires = nil
}

// ClearOTP unsets the recovery pair once the code is consumed.
func (u *User) ClearOTP() {
	u.OTPCode = nil
	u.OTPExpires = nil
}
