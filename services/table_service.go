package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/long-kr/Project-Restaurant-Reservation/dto"
	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// TableService is the data accessor for the tables relation.
type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	tables := []models.Table{}
	if err := s.db.WithContext(ctx).Order("table_name").Find(&tables).Error; err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// Read returns nil, nil when no table has the given id.
func (s *TableService) Read(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	err := s.db.WithContext(ctx).First(&table, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read table %d: %w", id, err)
	}
	return &table, nil
}

// ReadByReservation returns the table reservationID is seated at, or nil.
func (s *TableService) ReadByReservation(ctx context.Context, reservationID uint) (*models.Table, error) {
	var table models.Table
	err := s.db.WithContext(ctx).Where("reservation_id = ?", reservationID).First(&table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read table of reservation %d: %w", reservationID, err)
	}
	return &table, nil
}

func (s *TableService) Create(ctx context.Context, req dto.TableRequest) (*models.Table, error) {
	table := models.Table{
		TableName: req.TableName,
		Capacity:  req.Capacity,
	}
	if err := s.db.WithContext(ctx).Create(&table).Error; err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	utils.InfoLogger.WithField("table_id", table.TableID).Infof("table %q created (capacity=%d)", table.TableName, table.Capacity)
	return &table, nil
}

// Update replaces the table's name and capacity. Occupancy is owned by
// SeatingService and is never touched here.
func (s *TableService) Update(ctx context.Context, id uint, req dto.TableRequest) (*models.Table, error) {
	err := s.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("table_id = ?", id).
		Updates(map[string]interface{}{
			"table_name": req.TableName,
			"capacity":   req.Capacity,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("update table %d: %w", id, err)
	}
	return s.Read(ctx, id)
}

// Delete removes a free table. ErrTableOccupied is returned when the table
// holds a reservation at the time of the write, gorm.ErrRecordNotFound when
// it is already gone.
func (s *TableService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Where("table_id = ? AND reservation_id IS NULL", id).
		Delete(&models.Table{})
	if res.Error != nil {
		return fmt.Errorf("delete table %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		table, err := s.Read(ctx, id)
		if err != nil {
			return err
		}
		if table == nil {
			return gorm.ErrRecordNotFound
		}
		return ErrTableOccupied
	}

	utils.InfoLogger.WithField("table_id", id).Info("table deleted")
	return nil
}
