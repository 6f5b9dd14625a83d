package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Photo struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"type:text;not null" json:"image_url"`
	Category    string `gorm:"type:varchar(60);index" json:"category"`

	Tags datatypes.JSON `json:"tags"` // ["wedding", "outdoor", ...]

	// Counters only move through the atomic engagement update.
	Likes     int64 `gorm:"default:0" json:"likes"`
	Downloads int64 `gorm:"default:0" json:"downloads"`
	Shares    int64 `gorm:"default:0" json:"shares"`

	Featured  bool `gorm:"default:false;index" json:"featured"`
	SortOrder int  `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
