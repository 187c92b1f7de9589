package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// Checkout converts the caller's cart into an order. Reading the cart,
// creating the order and its items, and draining the cart all happen inside
// one transaction: a concurrent second checkout or cart mutation sees either
// the full result or none of it.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListForUser(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.Wrap(apperr.ErrEmptyCart, "cart is empty")
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Price)
		}

		order := &entity.Order{
			UserID: userID,
			Status: entity.StatusPlaced,
			Total:  total,
			Date:   time.Now().Truncate(24 * time.Hour),
		}
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				Price:      l.Price,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}

		if err := s.CartRepo.Drain(tx, userID); err != nil {
			return err
		}

		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List partitions orders by the caller's role: customers see orders they
// placed, delivery crew see orders assigned to them, managers and admins
// see everything. The crew branch is checked before the managerial
// catch-all, so a crew member never falls through to the full list.
func (s *OrderService) List(userID uint, role entity.Role) ([]entity.Order, error) {
	switch {
	case role == entity.RoleDeliveryCrew:
		return s.Repo.ListForCrew(userID)
	case role.IsManagerial():
		return s.Repo.ListAll()
	default:
		return s.Repo.ListForUser(userID)
	}
}

// Detail applies the same visibility partition as List to a single order.
// Orders outside the caller's partition read as not found.
func (s *OrderService) Detail(userID uint, role entity.Role, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(s.DB, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "order not found")
		}
		return nil, err
	}
	switch {
	case role == entity.RoleDeliveryCrew:
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != userID {
			return nil, apperr.Wrap(apperr.ErrNotFound, "order not found")
		}
	case role.IsManagerial():
	default:
		if o.UserID != userID {
			return nil, apperr.Wrap(apperr.ErrNotFound, "order not found")
		}
	}
	return o, nil
}

type UpdateOrderIn struct {
	Status         *string `json:"status"`
	DeliveryCrewID *uint   `json:"deliveryCrewId"`
}

// Transition acknowledgments, echoed so callers can tell which path ran.
const (
	AckStatusUpdated = "status updated"
	AckOrderUpdated  = "order updated"
)

// Update is the role-gated transition:
//   - customer: rejected outright.
//   - delivery crew: must supply status and may change nothing else.
//   - manager/admin: may assign delivery crew and/or set status.
//
// The whole mutation is applied inside one transaction; a bad crew id or a
// bad status leaves the order untouched.
func (s *OrderService) Update(actorID uint, role entity.Role, orderID uint, in *UpdateOrderIn) (string, error) {
	if !role.IsManagerial() && role != entity.RoleDeliveryCrew {
		return "", apperr.Wrap(apperr.ErrNotAuthorized, "not authorized")
	}

	ack := AckOrderUpdated
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetBare(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Wrap(apperr.ErrNotFound, "order not found")
			}
			return err
		}

		if role == entity.RoleDeliveryCrew {
			if in.Status == nil {
				return apperr.Wrap(apperr.ErrMissingField, "status not provided")
			}
			if err := applyStatus(order, *in.Status); err != nil {
				return err
			}
			ack = AckStatusUpdated
			return s.Repo.Save(tx, order)
		}

		if in.DeliveryCrewID != nil {
			crew, err := s.UserRepo.FindByIDTx(tx, *in.DeliveryCrewID)
			if err != nil || crew.Role != entity.RoleDeliveryCrew {
				return apperr.Wrap(apperr.ErrNotFound, "delivery crew user not found")
			}
			order.DeliveryCrewID = in.DeliveryCrewID
		}
		if in.Status != nil {
			if err := applyStatus(order, *in.Status); err != nil {
				return err
			}
		}
		return s.Repo.Save(tx, order)
	})
	if err != nil {
		return "", err
	}
	return ack, nil
}

// applyStatus validates the requested status and enforces that DELIVERED
// is terminal.
func applyStatus(order *entity.Order, raw string) error {
	st, ok := entity.ParseOrderStatus(raw)
	if !ok {
		return apperr.Wrap(apperr.ErrValidation, "unknown status %q", raw)
	}
	if order.Status == entity.StatusDelivered && st != entity.StatusDelivered {
		return apperr.Wrap(apperr.ErrValidation, "order is already delivered")
	}
	order.Status = st
	return nil
}
