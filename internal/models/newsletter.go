package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterSubscriber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Email  string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Name   string `gorm:"type:varchar(120)" json:"name"`
	Source string `gorm:"type:varchar(60)" json:"source"` // footer, quiz, booking
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
