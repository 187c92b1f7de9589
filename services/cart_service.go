package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

func (s *CartService) List(userID uint) ([]entity.CartItem, error) {
	return s.CartRepo.ListForUser(s.DB, userID)
}

// Add upserts a line for (user, menu item): the unit price is snapshotted
// from the catalog now, and an existing line for the same item is replaced
// rather than duplicated.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Quantity < 1 {
		return nil, apperr.Wrap(apperr.ErrValidation, "quantity must be at least 1")
	}

	m, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "menu item not found")
		}
		return nil, err
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		UnitPrice:  m.Price,
		Price:      m.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Upsert(tx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *CartService) GetLine(userID, lineID uint) (*entity.CartItem, error) {
	line, err := s.CartRepo.GetLine(userID, lineID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.ErrNotFound, "cart line not found")
	}
	return line, err
}

// UpdateQuantity recomputes the line price from the stored unit price, not
// from the current catalog price.
func (s *CartService) UpdateQuantity(userID, lineID uint, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.Wrap(apperr.ErrValidation, "quantity must be at least 1")
	}
	line, err := s.GetLine(userID, lineID)
	if err != nil {
		return nil, err
	}
	line.Quantity = quantity
	line.Price = line.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if err := s.CartRepo.Save(line); err != nil {
		return nil, err
	}
	return line, nil
}

func (s *CartService) RemoveLine(userID, lineID uint) error {
	affected, err := s.CartRepo.RemoveLine(userID, lineID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.Wrap(apperr.ErrNotFound, "cart line not found")
	}
	return nil
}

func (s *CartService) Clear(userID uint) error {
	return s.CartRepo.Drain(s.DB, userID)
}
