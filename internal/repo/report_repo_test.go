package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

func TestReportCreateWithItem(t *testing.T) {
	db := newTestDB(t)
	r := NewReportRepo(db)
	u := seedUser(t, db, "owner@example.com")

	item := &domain.Item{
		ID:       utils.NewID(),
		Name:     "backpack",
		Category: domain.CategoryAccessories,
		Status:   domain.ItemStatusLost,
		UserID:   u.ID,
	}
	rep := &domain.Report{
		ID:     utils.NewID(),
		Title:  "lost backpack",
		Type:   domain.ReportLost,
		UserID: u.ID,
	}
	require.NoError(t, r.CreateWithItem(item, rep))

	got, err := r.FindByID(rep.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.ItemID)
	assert.Equal(t, item.ID, *got.ItemID)
	require.NotNil(t, got.Item, "item is eager loaded")
	assert.Equal(t, "backpack", got.Item.Name)
	require.NotNil(t, got.User)
	assert.Equal(t, u.Email, got.User.Email)
}

func TestReportFindByIDMissing(t *testing.T) {
	db := newTestDB(t)
	r := NewReportRepo(db)

	got, err := r.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReportList(t *testing.T) {
	db := newTestDB(t)
	r := NewReportRepo(db)
	u := seedUser(t, db, "owner@example.com")

	for i := 0; i < 3; i++ {
		item := seedItem(t, db, u.ID, "thing", "desc")
		require.NoError(t, r.Create(&domain.Report{
			ID:     utils.NewID(),
			Title:  "report",
			Type:   domain.ReportFound,
			UserID: u.ID,
			ItemID: &item.ID,
		}))
	}

	reports, total, err := r.List(0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, reports, 2)
}

func TestReportSearch(t *testing.T) {
	db := newTestDB(t)
	r := NewReportRepo(db)
	u := seedUser(t, db, "owner@example.com")

	wallet := seedItem(t, db, u.ID, "wallet", "brown leather wallet")
	phone := seedItem(t, db, u.ID, "phone", "black smartphone")
	require.NoError(t, r.Create(&domain.Report{ID: utils.NewID(), Title: "a", Type: domain.ReportLost, UserID: u.ID, ItemID: &wallet.ID}))
	require.NoError(t, r.Create(&domain.Report{ID: utils.NewID(), Title: "b", Type: domain.ReportLost, UserID: u.ID, ItemID: &phone.ID}))

	// exact item name
	got, err := r.Search("wallet")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)

	// description substring
	got, err = r.Search("leather")
	require.NoError(t, err)
	require.Len(t, got, 1)

	// partial name does not match by name
	got, err = r.Search("wall")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.Search("bicycle")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReportDeleteIdempotent(t *testing.T) {
	db := newTestDB(t)
	r := NewReportRepo(db)
	u := seedUser(t, db, "owner@example.com")

	rep := &domain.Report{ID: utils.NewID(), Title: "x", Type: domain.ReportLost, UserID: u.ID}
	require.NoError(t, r.Create(rep))

	require.NoError(t, r.Delete(rep.ID))
	require.NoError(t, r.Delete(rep.ID), "second delete is a no-op")

	got, err := r.FindByID(rep.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
