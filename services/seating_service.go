package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// SeatingService couples table occupancy with reservation status. Both
// writes of a seat or finish commit together or not at all.
type SeatingService struct {
	db *gorm.DB
}

func NewSeatingService(db *gorm.DB) *SeatingService {
	return &SeatingService{db: db}
}

// Seat assigns reservationID to tableID and marks the reservation seated.
// The writes are conditional on the table being free and the reservation
// being booked, so a concurrent seat on either side fails with
// ErrTableOccupied or ErrReservationNotBooked instead of double-assigning.
func (s *SeatingService) Seat(ctx context.Context, tableID, reservationID uint) (*models.Table, error) {
	var table models.Table

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTable(tx, tableID, &table); err != nil {
			return err
		}

		res := tx.Model(&models.Table{}).
			Where("table_id = ? AND reservation_id IS NULL", tableID).
			Update("reservation_id", reservationID)
		if res.Error != nil {
			return fmt.Errorf("assign reservation %d to table %d: %w", reservationID, tableID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTableOccupied
		}

		res = tx.Model(&models.Reservation{}).
			Where("reservation_id = ? AND status = ?", reservationID, models.StatusBooked).
			Update("status", models.StatusSeated)
		if res.Error != nil {
			return fmt.Errorf("mark reservation %d seated: %w", reservationID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrReservationNotBooked
		}

		table = models.Table{}
		return tx.First(&table, tableID).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"table_id":       tableID,
		"reservation_id": reservationID,
	}).Info("reservation seated")
	return &table, nil
}

// Finish frees tableID and marks the reservation it held as finished.
func (s *SeatingService) Finish(ctx context.Context, tableID uint) (*models.Table, error) {
	var (
		table         models.Table
		reservationID uint
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTable(tx, tableID, &table); err != nil {
			return err
		}
		if table.ReservationID == nil {
			return ErrTableNotOccupied
		}
		reservationID = *table.ReservationID

		res := tx.Model(&models.Table{}).
			Where("table_id = ? AND reservation_id = ?", tableID, reservationID).
			Update("reservation_id", nil)
		if res.Error != nil {
			return fmt.Errorf("free table %d: %w", tableID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTableNotOccupied
		}

		err := tx.Model(&models.Reservation{}).
			Where("reservation_id = ?", reservationID).
			Update("status", models.StatusFinished).Error
		if err != nil {
			return fmt.Errorf("mark reservation %d finished: %w", reservationID, err)
		}

		table = models.Table{}
		return tx.First(&table, tableID).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"table_id":       tableID,
		"reservation_id": reservationID,
	}).Info("table finished")
	return &table, nil
}

// lockTable reads the table row, holding a row lock where the dialect has one.
func lockTable(tx *gorm.DB, tableID uint, table *models.Table) error {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(table, tableID).Error; err != nil {
		return fmt.Errorf("lock table %d: %w", tableID, err)
	}
	return nil
}
