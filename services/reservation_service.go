package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/long-kr/Project-Restaurant-Reservation/dto"
	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// ReservationService is the data accessor for the reservations relation.
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// ListByDate returns the active (not finished, not cancelled) reservations on
// date, earliest first.
func (s *ReservationService) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := s.db.WithContext(ctx).
		Where("reservation_date = ?", date).
		Where("status NOT IN ?", []models.ReservationStatus{models.StatusFinished, models.StatusCancelled}).
		Order("reservation_time").
		Order("reservation_id").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations for %s: %w", date, err)
	}
	return reservations, nil
}

// SearchByPhone matches every reservation whose mobile number contains the
// digits of query, ignoring formatting on both sides.
func (s *ReservationService) SearchByPhone(ctx context.Context, query string) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	digits := utils.PhoneDigits(query)
	if digits == "" {
		return reservations, nil
	}

	err := s.db.WithContext(ctx).
		Where("REPLACE(REPLACE(REPLACE(REPLACE(mobile_number, '-', ''), ' ', ''), '(', ''), ')', '') LIKE ?", "%"+digits+"%").
		Order("reservation_date").
		Order("reservation_time").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("search reservations by %q: %w", digits, err)
	}
	return reservations, nil
}

// Read returns nil, nil when no reservation has the given id.
func (s *ReservationService) Read(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read reservation %d: %w", id, err)
	}
	return &reservation, nil
}

func (s *ReservationService) Create(ctx context.Context, req dto.ReservationRequest) (*models.Reservation, error) {
	reservation := models.Reservation{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MobileNumber:    req.MobileNumber,
		People:          req.People,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		Status:          req.Status,
	}
	if reservation.Status == "" {
		reservation.Status = models.StatusBooked
	}

	if err := s.db.WithContext(ctx).Create(&reservation).Error; err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	utils.InfoLogger.WithField("reservation_id", reservation.ReservationID).Info("reservation created")
	return s.Read(ctx, reservation.ReservationID)
}

// Update replaces every editable field of reservation id. An empty
// req.Status keeps the current status.
func (s *ReservationService) Update(ctx context.Context, id uint, req dto.ReservationRequest) (*models.Reservation, error) {
	fields := map[string]interface{}{
		"first_name":       req.FirstName,
		"last_name":        req.LastName,
		"mobile_number":    req.MobileNumber,
		"people":           req.People,
		"reservation_date": req.ReservationDate,
		"reservation_time": req.ReservationTime,
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}

	err := s.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("reservation_id = ?", id).
		Updates(fields).Error
	if err != nil {
		return nil, fmt.Errorf("update reservation %d: %w", id, err)
	}
	return s.Read(ctx, id)
}

func (s *ReservationService) UpdateStatus(ctx context.Context, id uint, status models.ReservationStatus) (*models.Reservation, error) {
	err := s.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("reservation_id = ?", id).
		Update("status", status).Error
	if err != nil {
		return nil, fmt.Errorf("update reservation %d status: %w", id, err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"reservation_id": id,
		"status":         status,
	}).Info("reservation status changed")
	return s.Read(ctx, id)
}

// Cancel is the soft delete: the row stays, the status becomes cancelled.
func (s *ReservationService) Cancel(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.UpdateStatus(ctx, id, models.StatusCancelled)
}
