package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

// GroupService manages membership of the manager and delivery-crew groups.
// Membership is the user's canonical role column; removal returns the user
// to plain customer.
type GroupService struct {
	Users *repository.UserRepository
}

func NewGroupService(ur *repository.UserRepository) *GroupService {
	return &GroupService{Users: ur}
}

func (s *GroupService) List(role entity.Role) ([]entity.User, error) {
	return s.Users.ListByRole(role)
}

func (s *GroupService) Add(userID uint, role entity.Role) (*entity.User, error) {
	u, err := s.find(userID)
	if err != nil {
		return nil, err
	}
	if err := s.Users.UpdateRole(u.ID, role); err != nil {
		return nil, err
	}
	u.Role = role
	return u, nil
}

func (s *GroupService) Remove(userID uint, role entity.Role) error {
	u, err := s.find(userID)
	if err != nil {
		return err
	}
	if u.Role != role {
		return apperr.Wrap(apperr.ErrNotFound, "user is not in the group")
	}
	return s.Users.UpdateRole(u.ID, entity.RoleCustomer)
}

func (s *GroupService) find(userID uint) (*entity.User, error) {
	u, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "user not found")
		}
		return nil, err
	}
	return u, nil
}
