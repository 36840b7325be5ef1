package repo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

// newTestDB opens a uniquely named in-memory database so parallel tests do
// not share state. cache=shared keeps the schema alive across the pooled
// connections gorm opens.
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

func seedItem(t *testing.T, db *gorm.DB, userID, name, desc string) *domain.Item {
	t.Helper()
	i := &domain.Item{
		ID:          utils.NewID(),
		Name:        name,
		Category:    domain.CategoryElectronics,
		Description: desc,
		Status:      domain.ItemStatusLost,
		UserID:      userID,
	}
	require.NoError(t, db.Create(i).Error)
	return i
}
