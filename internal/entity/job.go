package entity

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Company     string    `gorm:"type:varchar(255);not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	ApplyLink   string    `gorm:"type:text;not null"`
	Salary      string    `gorm:"type:varchar(100);not null"`

	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
