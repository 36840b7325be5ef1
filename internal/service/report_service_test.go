package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound-api/internal/apperr"
	"lostfound-api/internal/domain"
	"lostfound-api/internal/repo"
)

func newReportService(t *testing.T) (*ReportService, *fakeImageStore, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	images := &fakeImageStore{}
	svc := NewReportService(repo.NewReportRepo(db), repo.NewUserRepo(db), images, nil, zap.NewNop())
	return svc, images, db
}

func validReportInput(userID string) ReportCreateInput {
	return ReportCreateInput{
		Title:       "lost wallet",
		Description: "left it on the bus",
		Type:        domain.ReportLost,
		UserID:      userID,
		Item: ItemInput{
			Name:        "wallet",
			Category:    domain.CategoryAccessories,
			Description: "brown leather",
		},
	}
}

func TestReportCreateWithImage(t *testing.T) {
	svc, images, db := newReportService(t)
	u := seedUser(t, db, "owner@example.com")

	in := validReportInput(u.ID)
	in.Image = testImage()

	out, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, images.uploads)
	require.NotNil(t, out.Item)
	assert.Equal(t, "https://cdn.example.com/images/wallet.jpg", out.Item.ImageURL)
	assert.Equal(t, domain.ItemStatusLost, out.Item.Status)
	assert.NotNil(t, out.Item.DateLost)
	assert.Nil(t, out.Item.DateFound)

	var reports, items int64
	require.NoError(t, db.Model(&domain.Report{}).Count(&reports).Error)
	require.NoError(t, db.Model(&domain.Item{}).Count(&items).Error)
	assert.EqualValues(t, 1, reports)
	assert.EqualValues(t, 1, items)
}

func TestReportCreateWithoutImage(t *testing.T) {
	svc, images, db := newReportService(t)
	u := seedUser(t, db, "owner@example.com")

	in := validReportInput(u.ID)
	in.Type = domain.ReportFound

	out, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Zero(t, images.uploads)
	require.NotNil(t, out.Item)
	assert.Empty(t, out.Item.ImageURL)
	assert.Equal(t, domain.ItemStatusFound, out.Item.Status)
	assert.NotNil(t, out.Item.DateFound)

	var reports int64
	require.NoError(t, db.Model(&domain.Report{}).Count(&reports).Error)
	assert.EqualValues(t, 1, reports, "report persists without an image")
}

func TestReportCreateUploadFailure(t *testing.T) {
	svc, images, db := newReportService(t)
	u := seedUser(t, db, "owner@example.com")
	images.fail = true

	in := validReportInput(u.ID)
	in.Image = testImage()

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
	assert.Equal(t, "image upload failed", apperr.Message(err))

	var reports, items int64
	require.NoError(t, db.Model(&domain.Report{}).Count(&reports).Error)
	require.NoError(t, db.Model(&domain.Item{}).Count(&items).Error)
	assert.Zero(t, reports, "nothing persists when the upload fails")
	assert.Zero(t, items)
}

func TestReportCreateUnknownUser(t *testing.T) {
	svc, images, db := newReportService(t)

	in := validReportInput("no-such-user")
	in.Image = testImage()

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Zero(t, images.uploads, "nothing is uploaded for an unknown user")

	var reports int64
	require.NoError(t, db.Model(&domain.Report{}).Count(&reports).Error)
	assert.Zero(t, reports)
}

func TestReportCreateValidation(t *testing.T) {
	svc, _, db := newReportService(t)
	u := seedUser(t, db, "owner@example.com")

	cases := map[string]func(*ReportCreateInput){
		"missing title":    func(in *ReportCreateInput) { in.Title = "" },
		"missing userId":   func(in *ReportCreateInput) { in.UserID = "  " },
		"missing itemName": func(in *ReportCreateInput) { in.Item.Name = "" },
		"bad type":         func(in *ReportCreateInput) { in.Type = "misplaced" },
		"bad category":     func(in *ReportCreateInput) { in.Item.Category = "vehicles" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validReportInput(u.ID)
			mutate(&in)
			_, err := svc.Create(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
		})
	}

	var reports int64
	require.NoError(t, db.Model(&domain.Report{}).Count(&reports).Error)
	assert.Zero(t, reports, "rejected input leaves no rows behind")
}

func TestReportGetByID(t *testing.T) {
	svc, _, db := newReportService(t)
	u := seedUser(t, db, "owner@example.com")

	created, err := svc.Create(context.Background(), validReportInput(u.ID))
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.User)
	assert.Equal(t, u.Email, got.User.Email)

	_, err = svc.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestReportListEmpty(t *testing.T) {
	svc, _, _ := newReportService(t)

	out, err := svc.List(1, 20)
	require.NoError(t, err)
	assert.NotNil(t, out.List, "empty result is a list, not null")
	assert.Empty(t, out.List)
	assert.Zero(t, out.Total)
}

func TestReportUpdate(t *testing.T) {
	svc, _, db := newReportService(t)
	u := seedUser(t, db, "owner@example.com")
	created, err := svc.Create(context.Background(), validReportInput(u.ID))
	require.NoError(t, err)

	out, err := svc.Update(context.Background(), created.ID, ReportUpdateInput{
		Title:       "found wallet",
		Description: "handed in at reception",
		Type:        domain.ReportFound,
	})
	require.NoError(t, err)
	assert.Equal(t, "found wallet", out.Title)
	assert.Equal(t, domain.ReportFound, out.Type)

	_, err = svc.Update(context.Background(), "missing", ReportUpdateInput{
		Title: "x", Description: "y", Type: domain.ReportLost,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestReportDeleteIdempotent(t *testing.T) {
	svc, _, db := newReportService(t)
	u := seedUser(t, db, "owner@example.com")
	created, err := svc.Create(context.Background(), validReportInput(u.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.NoError(t, svc.Delete(context.Background(), created.ID))
}

func TestReportSearchContract(t *testing.T) {
	svc, _, db := newReportService(t)
	u := seedUser(t, db, "owner@example.com")
	_, err := svc.Create(context.Background(), validReportInput(u.ID))
	require.NoError(t, err)

	_, err = svc.Search("  ")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	assert.Equal(t, "keyword cannot be empty", apperr.Message(err))

	_, err = svc.Search("bicycle")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	got, err := svc.Search("wallet")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "lost wallet", got[0].Title)

	got, err = svc.Search("leather")
	require.NoError(t, err)
	assert.Len(t, got, 1, "description substring matches")
}
