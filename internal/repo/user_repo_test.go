package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

func TestUserLookups(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)

	role := domain.Role{ID: utils.NewID(), Name: domain.RoleUser}
	require.NoError(t, db.Create(&role).Error)
	u := &domain.User{
		ID:       utils.NewID(),
		Email:    "jane@example.com",
		UserName: "janedoe",
		Roles:    []domain.Role{role},
	}
	require.NoError(t, r.Create(u))

	byEmail, err := r.FindByEmail("jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, []string{domain.RoleUser}, byEmail.RoleNames())

	byName, err := r.FindByUserName("janedoe")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, u.ID, byName.ID)

	missing, err := r.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserUpdateFields(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)
	u := seedUser(t, db, "jane@example.com")

	require.NoError(t, r.UpdateFields(u.ID, map[string]any{
		"first_name":   "Jane",
		"phone_number": "555-0100",
	}))

	got, err := r.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "555-0100", got.PhoneNumber)
}

func TestUserSoftAndHardDelete(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)
	u := seedUser(t, db, "jane@example.com")

	require.NoError(t, r.SoftDelete(u.ID))
	got, err := r.FindByID(u.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "soft deleted users are hidden from lookups")

	var count int64
	require.NoError(t, db.Unscoped().Model(&domain.User{}).Where("id = ?", u.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "row survives a soft delete")

	require.NoError(t, r.HardDelete(u.ID))
	require.NoError(t, db.Unscoped().Model(&domain.User{}).Where("id = ?", u.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
