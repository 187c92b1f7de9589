package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one pending line of a user's cart. At most one line per
// (user, menu item) pair; adding the same item again replaces the line.
// Lines are hard-deleted: a soft-deleted row would keep blocking the
// uniqueness index after checkout or removal.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `json:"quantity"`

	// UnitPrice is snapshotted from the menu item when the line is added;
	// later catalog price changes do not touch it. Price = UnitPrice * Quantity.
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
