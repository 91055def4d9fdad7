package models

import "fmt"

type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusSeated    ReservationStatus = "seated"
	StatusFinished  ReservationStatus = "finished"
	StatusCancelled ReservationStatus = "cancelled"
)

var knownStatuses = []ReservationStatus{StatusBooked, StatusSeated, StatusFinished, StatusCancelled}

func ParseReservationStatus(value string) (ReservationStatus, bool) {
	for _, s := range knownStatuses {
		if string(s) == value {
			return s, true
		}
	}
	return "", false
}

// IsTerminal is true for finished and cancelled.
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// CheckTransition returns a client-facing reason when from -> to is not allowed.
// Staying in the same non-terminal state is always allowed.
func CheckTransition(from, to ReservationStatus) error {
	switch {
	case from == StatusFinished:
		return fmt.Errorf("a finished reservation cannot be updated")
	case from == StatusCancelled:
		return fmt.Errorf("a cancelled reservation cannot be updated")
	case from == to:
		return nil
	case to == StatusSeated && from != StatusBooked:
		return fmt.Errorf("only a booked reservation can be seated (current status: %s)", from)
	case to == StatusFinished && from != StatusSeated:
		return fmt.Errorf("only a seated reservation can be finished (current status: %s)", from)
	case to == StatusCancelled && from != StatusBooked:
		return fmt.Errorf("only a booked reservation can be cancelled (current status: %s)", from)
	case to == StatusBooked:
		return fmt.Errorf("a %s reservation cannot return to booked", from)
	}
	return nil
}
