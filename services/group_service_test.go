package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMembership(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewGroupService(users)

	u := createUser(t, db, "carol@example.com", entity.RoleCustomer)

	_, err := svc.Add(999, entity.RoleManager)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	promoted, err := svc.Add(u.ID, entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, promoted.Role)

	managers, err := svc.List(entity.RoleManager)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, u.ID, managers[0].ID)

	err = svc.Remove(u.ID, entity.RoleDeliveryCrew)
	assert.ErrorIs(t, err, apperr.ErrNotFound, "not a crew member")

	require.NoError(t, svc.Remove(u.ID, entity.RoleManager))
	got, err := users.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, got.Role, "removal returns the user to customer")
}
