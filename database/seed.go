package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

var seedTables = []models.Table{
	{TableName: "Bar #1", Capacity: 1},
	{TableName: "Bar #2", Capacity: 1},
	{TableName: "#1", Capacity: 6},
	{TableName: "#2", Capacity: 6},
}

var seedReservations = []models.Reservation{
	{FirstName: "Rick", LastName: "Sanchez", MobileNumber: "202-555-0164", People: 6, ReservationDate: "2020-12-31", ReservationTime: "20:00", Status: models.StatusBooked},
	{FirstName: "Frank", LastName: "Palicky", MobileNumber: "202-555-0153", People: 1, ReservationDate: "2020-12-30", ReservationTime: "20:00", Status: models.StatusBooked},
	{FirstName: "Bird", LastName: "Person", MobileNumber: "808-555-0141", People: 1, ReservationDate: "2020-12-30", ReservationTime: "18:00", Status: models.StatusBooked},
	{FirstName: "Tiger", LastName: "Lion", MobileNumber: "808-555-0140", People: 3, ReservationDate: "2025-12-30", ReservationTime: "18:00", Status: models.StatusBooked},
}

// Seed inserts the demo tables and reservations. Each relation is seeded only
// when it is empty, so Seed is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedIfEmpty(tx, &models.Reservation{}, seedReservations); err != nil {
			return err
		}
		return seedIfEmpty(tx, &models.Table{}, seedTables)
	})
}

func seedIfEmpty[T any](tx *gorm.DB, model interface{}, rows []T) error {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("count %T: %w", model, err)
	}
	if count > 0 {
		return nil
	}

	// Create writes ids back into its argument; keep the package slice clean.
	batch := append([]T(nil), rows...)
	if err := tx.Create(&batch).Error; err != nil {
		return fmt.Errorf("seed %T: %w", model, err)
	}
	utils.InfoLogger.Infof("Seeded %d rows into %T", len(batch), model)
	return nil
}
