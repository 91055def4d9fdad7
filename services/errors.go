package services

import "errors"

var (
	// ErrTableOccupied: the table gained a reservation between the guard and the write.
	ErrTableOccupied = errors.New("table is already occupied")
	// ErrTableNotOccupied: the table was freed between the guard and the write.
	ErrTableNotOccupied = errors.New("table is not occupied")
	// ErrReservationNotBooked: the reservation left the booked state before it could be seated.
	ErrReservationNotBooked = errors.New("reservation is no longer booked")
)
