package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is created exactly once, at checkout, from a non-empty cart.
// Total is immutable after creation; only Status and DeliveryCrewID may
// change, and only under the role-gated transition rules.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status OrderStatus     `gorm:"not null;default:PLACED;index" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(6,2)" json:"total"`
	Date   time.Time       `gorm:"index" json:"date"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
