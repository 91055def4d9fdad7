package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

type Reservation struct {
	ReservationID   uint              `gorm:"primaryKey" json:"reservation_id"`
	FirstName       string            `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName        string            `gorm:"type:varchar(100);not null" json:"last_name"`
	MobileNumber    string            `gorm:"type:varchar(20);not null;index" json:"mobile_number"`
	People          int               `gorm:"not null;check:chk_reservations_people,people >= 1" json:"people"`
	ReservationDate string            `gorm:"type:date;not null;index" json:"reservation_date"`
	ReservationTime string            `gorm:"type:time;not null" json:"reservation_time"`
	Status          ReservationStatus `gorm:"type:varchar(20);not null;default:'booked'" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// AfterFind normalizes values the driver may hand back in its own shape
// (timestamps for dates, HH:MM:SS for times).
func (r *Reservation) AfterFind(tx *gorm.DB) error {
	r.Normalize()
	return nil
}

func (r *Reservation) Normalize() {
	r.ReservationDate = utils.NormalizeDate(r.ReservationDate)
	r.ReservationTime = utils.NormalizeTime(r.ReservationTime)
	r.MobileNumber = utils.FormatPhone(r.MobileNumber)
}
