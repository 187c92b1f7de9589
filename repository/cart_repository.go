package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Every query here is scoped by user_id; a caller can never reach another
// user's lines through this repository.

func (r *CartRepository) ListForUser(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := tx.Where("user_id = ?", userID).Order("id").Find(&lines).Error
	return lines, err
}

func (r *CartRepository) GetLine(userID, lineID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Where("id = ? AND user_id = ?", lineID, userID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Upsert replaces the existing line for (user, menu item) or creates one.
// The uniqueness index makes a duplicate row impossible either way.
func (r *CartRepository) Upsert(tx *gorm.DB, line *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", line.UserID, line.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity = line.Quantity
		exist.UnitPrice = line.UnitPrice
		exist.Price = line.Price
		if err := tx.Save(&exist).Error; err != nil {
			return err
		}
		*line = exist
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(line).Error
}

func (r *CartRepository) Save(line *entity.CartItem) error {
	return r.DB.Save(line).Error
}

// RemoveLine deletes one line; reports how many rows matched so the caller
// can distinguish "removed" from "was never yours".
func (r *CartRepository) RemoveLine(userID, lineID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", lineID, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// Drain deletes every line the user owns. Checkout runs this inside the
// same transaction that creates the order.
func (r *CartRepository) Drain(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
