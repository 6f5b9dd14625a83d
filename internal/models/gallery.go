package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientGallery is a private photo delivery for one client, reachable by an
// opaque share token instead of a login.
type ClientGallery struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"` // admin who created it

	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	ClientName  string `gorm:"type:varchar(120)" json:"client_name"`
	ClientEmail string `gorm:"type:varchar(150)" json:"client_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Photos []GalleryPhoto `gorm:"foreignKey:GalleryID" json:"photos,omitempty"`
}

func (g *ClientGallery) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}

type GalleryPhoto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GalleryID uuid.UUID `gorm:"type:uuid;index;not null" json:"gallery_id"`

	ImageURL  string `gorm:"type:text;not null" json:"image_url"`
	Caption   string `gorm:"type:varchar(300)" json:"caption"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *GalleryPhoto) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
