package models

import "time"

// OrderStatus represents the lifecycle states of a POS order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	CustomerID    *uint       `json:"customer_id"`
	Customer      *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	TableID       *uint       `json:"table_id"`
	TotalAmount   float64     `json:"total_amount" gorm:"not null"`
	TaxAmount     float64     `json:"tax_amount"`
	Status        OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	PaymentMethod *string     `json:"payment_method"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	OrderID   uint     `json:"order_id" gorm:"not null;index"`
	ProductID uint     `json:"product_id" gorm:"not null"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity" gorm:"not null;check:quantity > 0"`
	Price     float64  `json:"price" gorm:"not null"` // snapshot of the product price at order time
}
