package services

import (
	"fmt"
	"testing"

	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/pkg/imagestore"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fakeImageStore records destroys and can be told to fail them.
type fakeImageStore struct {
	destroyed  []string
	destroyErr error
}

func (f *fakeImageStore) Upload(data []byte, contentType string) (*imagestore.Image, error) {
	return &imagestore.Image{URL: "/uploads/test.jpg", ID: "test.jpg"}, nil
}

func (f *fakeImageStore) Destroy(id string) error {
	f.destroyed = append(f.destroyed, id)
	return f.destroyErr
}
