package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerName  string `gorm:"type:varchar(120);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(150);not null;index" json:"customer_email"`
	CustomerPhone string `gorm:"type:varchar(30)" json:"customer_phone"`

	ServiceType string     `gorm:"type:varchar(60)" json:"service_type"`
	Package     string     `gorm:"type:varchar(60)" json:"package"`
	EventDate   *time.Time `json:"event_date"`
	Location    string     `gorm:"type:varchar(200)" json:"location"`
	BudgetRange string     `gorm:"type:varchar(40)" json:"budget_range"`
	Message     string     `gorm:"type:text" json:"message"`

	Status        BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	TotalAmount   int64         `json:"total_amount"`
	DepositAmount int64         `json:"deposit_amount"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'unpaid'" json:"payment_status"`
	AdminNotes    string        `gorm:"type:text" json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
