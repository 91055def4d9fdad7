package dto

import "github.com/long-kr/Project-Restaurant-Reservation/models"

// ReservationRequest is the validated body of POST /reservations and
// PUT /reservations/:reservation_id.
type ReservationRequest struct {
	FirstName       string
	LastName        string
	MobileNumber    string
	People          int
	ReservationDate string
	ReservationTime string
	// Status is empty when the caller did not send one.
	Status models.ReservationStatus
}

// StatusRequest is the validated body of PUT /reservations/:reservation_id/status.
type StatusRequest struct {
	Status models.ReservationStatus
}

// ReservationQuery selects between the date listing and the phone search.
type ReservationQuery struct {
	Date         string
	MobileNumber string
}

// IsSearch reports whether the query is a phone-number search.
func (q ReservationQuery) IsSearch() bool {
	return q.MobileNumber != ""
}
