package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem copies a cart line at checkout: quantity and the line price
// as they were at that moment. Immutable; removed only when its order is.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:idx_order_item" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
