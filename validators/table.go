package validators

import (
	"context"
	"sort"
	"strings"

	"github.com/long-kr/Project-Restaurant-Reservation/dto"
	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// TableReader loads a table, returning nil when it does not exist.
type TableReader interface {
	Read(ctx context.Context, id uint) (*models.Table, error)
}

// TableExists loads the table named by the :table_id path parameter.
func TableExists(reader TableReader) Guard {
	return func(s *Scope) error {
		param := s.Ctx.Param("table_id")
		id, ok := parseID(param)
		if !ok {
			return utils.NotFound("Table ID cannot be found: %s", param)
		}
		table, err := reader.Read(s.Ctx.Request.Context(), id)
		if err != nil {
			return utils.Internal(err)
		}
		if table == nil {
			return utils.NotFound("Table ID cannot be found: %s", param)
		}
		s.Table = table
		return nil
	}
}

func ValidTableName(s *Scope) error {
	return ValidName("table_name")(s)
}

// ValidCapacity requires a JSON integer of at least one.
func ValidCapacity(s *Scope) error {
	capacity, ok := s.Int("capacity")
	if !ok || capacity < 1 {
		return utils.BadRequest("capacity must be a positive integer")
	}
	return nil
}

// CapacityFitsSeatedParty keeps an occupied table from shrinking below the
// party currently at it.
func CapacityFitsSeatedParty(reader ReservationReader) Guard {
	return func(s *Scope) error {
		if !s.Table.IsOccupied() {
			return nil
		}
		reservation, err := reader.Read(s.Ctx.Request.Context(), *s.Table.ReservationID)
		if err != nil {
			return utils.Internal(err)
		}
		capacity, _ := s.Int("capacity")
		if reservation != nil && capacity < reservation.People {
			return utils.BadRequest("Table capacity (%d) is less than the seated party size (%d)", capacity, reservation.People)
		}
		return nil
	}
}

func HasReservationID(s *Scope) error {
	if !s.Has("reservation_id") {
		return utils.BadRequest("reservation_id is required")
	}
	if _, ok := s.ID("reservation_id"); !ok {
		return utils.BadRequest("reservation_id must be a positive integer")
	}
	return nil
}

// SeatReservationExists loads the reservation named by reservation_id in the body.
func SeatReservationExists(reader ReservationReader) Guard {
	return func(s *Scope) error {
		id, _ := s.ID("reservation_id")
		reservation, err := reader.Read(s.Ctx.Request.Context(), id)
		if err != nil {
			return utils.Internal(err)
		}
		if reservation == nil {
			return utils.NotFound("Reservation ID cannot be found: %d", id)
		}
		s.Reservation = reservation
		return nil
	}
}

// OnlyReservationID rejects any body field other than reservation_id.
func OnlyReservationID(s *Scope) error {
	var extra []string
	for field := range s.Data {
		if field != "reservation_id" {
			extra = append(extra, field)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return utils.BadRequest("invalid field(s): %s", strings.Join(extra, ", "))
	}
	return nil
}

func SufficientCapacity(s *Scope) error {
	if s.Table.Capacity < s.Reservation.People {
		return utils.BadRequest("Table capacity (%d) is less than the party size (%d)", s.Table.Capacity, s.Reservation.People)
	}
	return nil
}

func TableIsFree(s *Scope) error {
	if s.Table.IsOccupied() {
		return utils.BadRequest("Table is already occupied")
	}
	return nil
}

func TableIsOccupied(s *Scope) error {
	if !s.Table.IsOccupied() {
		return utils.BadRequest("Table is not occupied")
	}
	return nil
}

// ReservationNotSeated requires the reservation to be booked: seated, finished
// and cancelled parties cannot take a table.
func ReservationNotSeated(s *Scope) error {
	switch s.Reservation.Status {
	case models.StatusBooked:
		return nil
	case models.StatusSeated:
		return utils.BadRequest("Reservation is already being seated")
	default:
		return utils.BadRequest("Reservation is %s and cannot be seated", s.Reservation.Status)
	}
}

// CreateTableChain validates POST /tables.
func CreateTableChain() []Guard {
	return []Guard{
		HasData,
		HasRequiredFields("table_name", "capacity"),
		ValidTableName,
		ValidCapacity,
	}
}

// UpdateTableChain validates PUT /tables/:table_id.
func UpdateTableChain(tables TableReader, reservations ReservationReader) []Guard {
	return append([]Guard{TableExists(tables)}, append(CreateTableChain(), CapacityFitsSeatedParty(reservations))...)
}

// SeatChain validates PUT /tables/:table_id/seat.
func SeatChain(tables TableReader, reservations ReservationReader) []Guard {
	return []Guard{
		HasData,
		TableExists(tables),
		HasReservationID,
		SeatReservationExists(reservations),
		OnlyReservationID,
		SufficientCapacity,
		TableIsFree,
		ReservationNotSeated,
	}
}

// FinishChain validates DELETE /tables/:table_id/seat.
func FinishChain(tables TableReader) []Guard {
	return []Guard{TableExists(tables), TableIsOccupied}
}

// DeleteTableChain validates DELETE /tables/:table_id.
func DeleteTableChain(tables TableReader) []Guard {
	return []Guard{TableExists(tables), TableIsFree}
}

func TableRequest(s *Scope) dto.TableRequest {
	name, _ := s.String("table_name")
	capacity, _ := s.Int("capacity")
	return dto.TableRequest{TableName: name, Capacity: capacity}
}

func SeatRequest(s *Scope) dto.SeatRequest {
	id, _ := s.ID("reservation_id")
	return dto.SeatRequest{ReservationID: id}
}
