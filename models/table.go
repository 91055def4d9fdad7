package models

import "time"

type Table struct {
	TableID       uint         `gorm:"primaryKey" json:"table_id"`
	TableName     string       `gorm:"type:varchar(100);not null" json:"table_name"`
	Capacity      int          `gorm:"not null;check:chk_tables_capacity,capacity >= 1" json:"capacity"`
	ReservationID *uint        `gorm:"uniqueIndex" json:"reservation_id"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID;references:ReservationID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// IsOccupied is true while a reservation is assigned to the table.
func (t *Table) IsOccupied() bool {
	return t.ReservationID != nil
}
