package entity

import (
	"time"
)

// Category rows hard-delete so a removed title can be created again.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title string `gorm:"size:255;uniqueIndex;not null" json:"title"`

	// deletion is blocked while any item references the category
	MenuItems []MenuItem `json:"-"`
}
