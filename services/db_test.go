package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/long-kr/Project-Restaurant-Reservation/models"
)

// newTestDB opens a private in-memory SQLite database. One connection keeps
// every query on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Reservation{}, &models.Table{}))
	return db
}

func createReservation(t *testing.T, db *gorm.DB, r models.Reservation) models.Reservation {
	t.Helper()
	if r.FirstName == "" {
		r.FirstName = "Rick"
	}
	if r.LastName == "" {
		r.LastName = "Sanchez"
	}
	if r.MobileNumber == "" {
		r.MobileNumber = "202-555-0164"
	}
	if r.People == 0 {
		r.People = 2
	}
	if r.ReservationDate == "" {
		r.ReservationDate = "2030-06-10"
	}
	if r.ReservationTime == "" {
		r.ReservationTime = "18:00"
	}
	if r.Status == "" {
		r.Status = models.StatusBooked
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func createTable(t *testing.T, db *gorm.DB, name string, capacity int) models.Table {
	t.Helper()
	table := models.Table{TableName: name, Capacity: capacity}
	require.NoError(t, db.Create(&table).Error)
	return table
}

func readReservation(t *testing.T, db *gorm.DB, id uint) models.Reservation {
	t.Helper()
	r, err := NewReservationService(db).Read(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, r)
	return *r
}

func readTable(t *testing.T, db *gorm.DB, id uint) *models.Table {
	t.Helper()
	table, err := NewTableService(db).Read(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, table)
	return table
}
