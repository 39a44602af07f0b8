package model

import "time"

type Account struct {
	ID         string
	Email      string
	Name       string
	Slug       string `gorm:"uniqueIndex"`
	Plan       string
	WebhookURL string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
