package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:       utils.NewID(),
		Email:    email,
		UserName: strings.SplitN(email, "@", 2)[0],
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// fakeImageStore records uploads and serves a canned URL or failure.
type fakeImageStore struct {
	uploads int
	fail    bool
}

func (f *fakeImageStore) UploadImage(_ context.Context, name string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.fail {
		return "", errors.New("connection refused")
	}
	f.uploads++
	return "https://cdn.example.com/images/" + name, nil
}

func testImage() *ImageFile {
	return &ImageFile{
		Name:        "wallet.jpg",
		Reader:      strings.NewReader("jpeg-bytes"),
		Size:        10,
		ContentType: "image/jpeg",
	}
}
