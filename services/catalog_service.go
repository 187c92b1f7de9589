package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PageSize is the fixed page size of menu item listings.
const PageSize = 12

type CatalogService struct {
	Categories *repository.CategoryRepository
	Menu       *repository.MenuRepository
}

func NewCatalogService(cr *repository.CategoryRepository, mr *repository.MenuRepository) *CatalogService {
	return &CatalogService{Categories: cr, Menu: mr}
}

// ----- Categories -----

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Categories.List()
}

func (s *CatalogService) GetCategory(id uint) (*entity.Category, error) {
	c, err := s.Categories.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.ErrNotFound, "category not found")
	}
	return c, err
}

func (s *CatalogService) CreateCategory(title string) (*entity.Category, error) {
	if title == "" {
		return nil, apperr.Wrap(apperr.ErrValidation, "title is required")
	}
	c := &entity.Category{Title: title}
	if err := s.Categories.Create(c); err != nil {
		return nil, wrapDuplicate(err, "category title already exists")
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(id uint, title string) (*entity.Category, error) {
	if title == "" {
		return nil, apperr.Wrap(apperr.ErrValidation, "title is required")
	}
	c, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	c.Title = title
	if err := s.Categories.Update(c); err != nil {
		return nil, wrapDuplicate(err, "category title already exists")
	}
	return c, nil
}

// DeleteCategory refuses while any menu item still references the category.
func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	count, err := s.Categories.CountItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Wrap(apperr.ErrConflict, "category is referenced by menu items")
	}
	return s.Categories.Delete(id)
}

// ----- Menu items -----

type MenuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

func (s *CatalogService) ListMenuItems(category string, page int) ([]entity.MenuItem, error) {
	return s.Menu.List(category, page, PageSize)
}

func (s *CatalogService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.Menu.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.ErrNotFound, "menu item not found")
	}
	return m, err
}

func (s *CatalogService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validateItem(in); err != nil {
		return nil, err
	}
	m := &entity.MenuItem{
		Title:      in.Title,
		Price:      normalizePrice(in.Price),
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.Menu.Create(m); err != nil {
		return nil, wrapDuplicate(err, "menu item title already exists")
	}
	return m, nil
}

// UpdateMenuItem replaces the item's fields. Existing cart lines and orders
// keep their snapshotted prices.
func (s *CatalogService) UpdateMenuItem(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validateItem(in); err != nil {
		return nil, err
	}
	m, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	m.Title = in.Title
	m.Price = normalizePrice(in.Price)
	m.Featured = in.Featured
	m.CategoryID = in.CategoryID
	if err := s.Menu.Update(m); err != nil {
		return nil, wrapDuplicate(err, "menu item title already exists")
	}
	return m, nil
}

func (s *CatalogService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	return s.Menu.Delete(id)
}

// Counts returns the item count for an optional category filter and the
// page count at the fixed page size.
func (s *CatalogService) Counts(category string) (counts int64, totalPages int64, err error) {
	counts, err = s.Menu.Count(category)
	if err != nil {
		return 0, 0, err
	}
	totalPages = (counts + PageSize - 1) / PageSize
	return counts, totalPages, nil
}

func (s *CatalogService) validateItem(in *MenuItemIn) error {
	if in.Title == "" {
		return apperr.Wrap(apperr.ErrValidation, "title is required")
	}
	if in.Price.IsNegative() {
		return apperr.Wrap(apperr.ErrValidation, "price must not be negative")
	}
	if _, err := s.Categories.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Wrap(apperr.ErrNotFound, "category not found")
		}
		return err
	}
	return nil
}

// normalizePrice pins the exponent to two fractional digits so prices
// round-trip as e.g. "5.00", whatever shape the client sent.
func normalizePrice(d decimal.Decimal) decimal.Decimal {
	return decimal.RequireFromString(d.StringFixed(2))
}

// wrapDuplicate turns a unique-constraint violation into a conflict the
// boundary can report; anything else passes through untouched.
func wrapDuplicate(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Wrap(apperr.ErrConflict, "%s", msg)
	}
	return err
}
