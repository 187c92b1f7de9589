package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem rows hard-delete, like Category, so titles stay reusable.
type MenuItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title    string          `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
	Featured bool            `gorm:"index" json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`
}
