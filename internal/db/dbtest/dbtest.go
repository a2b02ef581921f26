// Package dbtest abre bancos SQLite em memória para os testes.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/restaurant-api/internal/db"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

// New devolve um banco isolado por teste, já migrado.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb
}

func SeedUser(t testing.TB, gdb *gorm.DB, name, email string) models.User {
	t.Helper()

	u := models.User{Name: name, Surname: "Test", Email: email, PasswordHash: "x", Role: "user"}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func SeedTable(t testing.TB, gdb *gorm.DB, number, capacity int, location string) models.Table {
	t.Helper()

	tb := models.Table{Number: number, Capacity: capacity, Location: location}
	if err := gdb.Create(&tb).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return tb
}
