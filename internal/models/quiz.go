package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizResult is the audit record of one recommendation run: the raw answers
// as submitted plus the package the scorer picked.
type QuizResult struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Answers            datatypes.JSON `json:"answers"` // {"q1": "wedding", ...}
	RecommendedPackage string         `gorm:"type:varchar(60);not null" json:"recommended_package"`

	ContactName  string `gorm:"type:varchar(120)" json:"contact_name"`
	ContactEmail string `gorm:"type:varchar(150)" json:"contact_email"`

	CreatedAt time.Time `json:"created_at"`
}

func (q *QuizResult) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return
}

type PriceCalculatorLog struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Selections     datatypes.JSON `json:"selections"` // {"service": "...", "addons": [...]}
	EstimatedTotal int64          `json:"estimated_total"`

	ContactName  string `gorm:"type:varchar(120)" json:"contact_name"`
	ContactEmail string `gorm:"type:varchar(150)" json:"contact_email"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *PriceCalculatorLog) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
