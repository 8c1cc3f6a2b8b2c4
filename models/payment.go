package models

import "time"

// PaymentStatus represents the lifecycle states of a payment intent
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type PaymentMethod struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// Payment is one attempt to collect funds for an order. Its lifecycle
// is independent of the order's: several rows may reference the same
// order and the current one is the newest by created_at.
type Payment struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	OrderID         *uint          `json:"order_id" gorm:"index"`
	Amount          float64        `json:"amount" gorm:"not null"`
	PaymentMethodID uint           `json:"payment_method_id" gorm:"not null"`
	Method          *PaymentMethod `json:"method,omitempty" gorm:"foreignKey:PaymentMethodID"`
	Status          PaymentStatus  `json:"status" gorm:"not null;default:'pending'"`
	TransactionID   *string        `json:"transaction_id"`
	CreatedAt       time.Time      `json:"created_at"`
}
