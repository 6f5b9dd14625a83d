package models

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

func ValidInvoiceStatus(s string) bool {
	switch InvoiceStatus(s) {
	case InvoiceUnpaid, InvoicePartial, InvoicePaid:
		return true
	}
	return false
}

type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`

	Number        string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"` // INV-XXXXXXXX
	TotalAmount   int64         `json:"total_amount"`
	DepositAmount int64         `json:"deposit_amount"`
	Status        InvoiceStatus `gorm:"type:varchar(20);default:'unpaid'" json:"status"`
	DueDate       *time.Time    `json:"due_date"`
	Notes         string        `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

// GenerateInvoiceNumber generates a random alphanumeric invoice number.
func GenerateInvoiceNumber() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 8)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return "INV-" + string(b)
}
