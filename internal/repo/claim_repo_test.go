package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

func seedClaim(t *testing.T, r *ClaimRepo, userID, itemID, status string) *domain.Claim {
	t.Helper()
	c := &domain.Claim{
		ID:          utils.NewID(),
		UserID:      userID,
		ItemID:      itemID,
		ItemName:    "wallet",
		ClaimReason: "it is mine",
		ClaimDate:   time.Now().UTC().Truncate(24 * time.Hour),
		Status:      status,
	}
	require.NoError(t, r.Create(c))
	return c
}

func TestClaimListByStatus(t *testing.T) {
	db := newTestDB(t)
	r := NewClaimRepo(db)
	u := seedUser(t, db, "claimant@example.com")
	item := seedItem(t, db, u.ID, "wallet", "brown")

	seedClaim(t, r, u.ID, item.ID, domain.ClaimPending)
	seedClaim(t, r, u.ID, item.ID, domain.ClaimPending)
	seedClaim(t, r, u.ID, item.ID, domain.ClaimApproved)

	pending, total, err := r.ListByStatus(domain.ClaimPending, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, pending, 2)

	all, total, err := r.List(0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.NotEmpty(t, all)
	require.NotNil(t, all[0].Item, "item is eager loaded")
}

func TestClaimUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	r := NewClaimRepo(db)
	u := seedUser(t, db, "claimant@example.com")
	item := seedItem(t, db, u.ID, "wallet", "brown")
	c := seedClaim(t, r, u.ID, item.ID, domain.ClaimPending)

	require.NoError(t, r.UpdateStatus(c.ID, domain.ClaimApproved))
	got, err := r.FindByID(c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ClaimApproved, got.Status)

	err = r.UpdateStatus("missing", domain.ClaimRejected)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClaimDeleteReportsMissing(t *testing.T) {
	db := newTestDB(t)
	r := NewClaimRepo(db)
	u := seedUser(t, db, "claimant@example.com")
	item := seedItem(t, db, u.ID, "wallet", "brown")
	c := seedClaim(t, r, u.ID, item.ID, domain.ClaimPending)

	ok, err := r.Delete(c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Delete(c.ID)
	require.NoError(t, err)
	assert.False(t, ok, "deleting the same claim twice reports a miss")
}
