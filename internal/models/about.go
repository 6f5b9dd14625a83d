package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HeroStat struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Icon      string `gorm:"type:varchar(40);not null" json:"icon"`
	Value     string `gorm:"type:varchar(40);not null" json:"value"` // e.g. "250+"
	Label     string `gorm:"type:varchar(120);not null" json:"label"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *HeroStat) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return
}

type Achievement struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Icon      string `gorm:"type:varchar(40);not null" json:"icon"`
	Value     string `gorm:"type:varchar(40);not null" json:"value"`
	Label     string `gorm:"type:varchar(120);not null" json:"label"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

type Skill struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name       string `gorm:"type:varchar(120);not null" json:"name"`
	Percentage int    `gorm:"not null" json:"percentage"` // 0-100
	SortOrder  int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

type AboutService struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string         `gorm:"type:varchar(150);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Specialties datatypes.JSON `json:"specialties"` // ["prewedding", "engagement", ...]
	SortOrder   int            `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AboutService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Content holds per-section copy, keyed uniquely by section (hero, cta, ...).
type Content struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	SectionKey  string `gorm:"type:varchar(60);uniqueIndex;not null" json:"section_key"`
	Title       string `gorm:"type:varchar(200)" json:"title"`
	Subtitle    string `gorm:"type:varchar(300)" json:"subtitle"`
	Description string `gorm:"type:text" json:"description"`
	ButtonText  string `gorm:"type:varchar(60)" json:"button_text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
