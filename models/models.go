package models

import (
	"time"
)

// Method represents a payment method that customers can pay with
type Method struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// Customer represents a paying customer
type Customer struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// Payment represents a single payment transaction. It references the
// customer who paid and the method they paid with.
type Payment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CustomerID  uint      `json:"customer_id" gorm:"not null"`
	Customer    Customer  `json:"-" gorm:"foreignKey:CustomerID"`
	MethodID    uint      `json:"method_id" gorm:"not null"`
	Method      Method    `json:"-" gorm:"foreignKey:MethodID"`
	Amount      float64   `json:"amount" gorm:"not null"`
	PaymentDate time.Time `json:"payment_date"`
}

// PaymentDateFormat is the wire format for payment dates
const PaymentDateFormat = "2006-01-02 15:04:05"

// PrimaryID returns the method's database ID
func (m *Method) PrimaryID() uint {
	return m.ID
}

// SetActive toggles the method's active flag
func (m *Method) SetActive(active bool) {
	m.IsActive = active
}

// Serialize exposes every field of the method as a field name -> value map
func (m *Method) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":        m.ID,
		"name":      m.Name,
		"is_active": m.IsActive,
	}
}

// PrimaryID returns the customer's database ID
func (c *Customer) PrimaryID() uint {
	return c.ID
}

// SetActive toggles the customer's active flag
func (c *Customer) SetActive(active bool) {
	c.IsActive = active
}

// Serialize exposes every field of the customer as a field name -> value map
func (c *Customer) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":        c.ID,
		"name":      c.Name,
		"address":   c.Address,
		"is_active": c.IsActive,
	}
}

// PrimaryID returns the payment's database ID
func (p *Payment) PrimaryID() uint {
	return p.ID
}

// Serialize exposes every field of the payment as a field name -> value map
func (p *Payment) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":           p.ID,
		"customer_id":  p.CustomerID,
		"method_id":    p.MethodID,
		"amount":       p.Amount,
		"payment_date": p.PaymentDate.Format(PaymentDateFormat),
	}
}
