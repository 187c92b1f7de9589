package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// List returns one page of menu items, optionally filtered by category title.
func (r *MenuRepository) List(category string, page, limit int) ([]entity.MenuItem, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 12
	}
	db := r.DB.Model(&entity.MenuItem{})
	if category != "" {
		db = db.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.title = ?", category)
	}
	var items []entity.MenuItem
	err := db.Order("menu_items.category_id, menu_items.id").
		Limit(limit).Offset((page - 1) * limit).
		Find(&items).Error
	return items, err
}

// Count mirrors List's filter without the paging.
func (r *MenuRepository) Count(category string) (int64, error) {
	db := r.DB.Model(&entity.MenuItem{})
	if category != "" {
		db = db.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.title = ?", category)
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
