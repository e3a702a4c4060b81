package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bookstore-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupServiceDB 打开测试数据库并接管全局 DB
func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Book{},
		&models.ShoppingCart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	prev := models.DB
	models.DB = db
	t.Cleanup(func() {
		models.DB = prev
	})
	return db
}
