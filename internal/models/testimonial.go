package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientName  string `gorm:"type:varchar(120);not null" json:"client_name"`
	ClientRole  string `gorm:"type:varchar(120)" json:"client_role"`
	ClientPhoto string `gorm:"type:text" json:"client_photo"`

	Rating      int    `gorm:"not null" json:"rating"` // 1-5
	ReviewText  string `gorm:"type:text" json:"review_text"`
	ServiceType string `gorm:"type:varchar(60)" json:"service_type"`

	Featured     bool `gorm:"default:false;index" json:"featured"`
	DisplayOrder int  `gorm:"default:0" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
