package validators

import (
	"context"
	"strings"
	"time"

	"github.com/long-kr/Project-Restaurant-Reservation/config"
	"github.com/long-kr/Project-Restaurant-Reservation/dto"
	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// ReservationReader loads a reservation, returning nil when it does not exist.
type ReservationReader interface {
	Read(ctx context.Context, id uint) (*models.Reservation, error)
}

// SeatedTableReader finds the table a reservation is seated at, nil when none.
type SeatedTableReader interface {
	ReadByReservation(ctx context.Context, reservationID uint) (*models.Table, error)
}

var reservationFields = []string{
	"first_name", "last_name", "mobile_number", "people", "reservation_date", "reservation_time",
}

func ValidMobileNumber(s *Scope) error {
	value, ok := s.String("mobile_number")
	if !ok {
		return utils.BadRequest("mobile_number must be a valid 10-digit phone number")
	}
	if _, valid := utils.NormalizePhone(value); !valid {
		return utils.BadRequest("mobile_number must be a valid 10-digit phone number")
	}
	return nil
}

// ValidPeople requires a JSON integer within the configured party size range.
func ValidPeople(rules config.BusinessRules) Guard {
	return func(s *Scope) error {
		if _, isString := s.Data["people"].(string); isString {
			return utils.BadRequest("people must be a number")
		}
		people, ok := s.Int("people")
		if !ok {
			return utils.BadRequest("people must be a number")
		}
		if people < rules.MinPartySize || people > rules.MaxPartySize {
			return utils.BadRequest("people must be between %d and %d", rules.MinPartySize, rules.MaxPartySize)
		}
		return nil
	}
}

func ValidReservationDate(s *Scope) error {
	value, ok := s.String("reservation_date")
	if !ok || !utils.IsValidDate(value) {
		return utils.BadRequest("reservation_date must be a valid date in YYYY-MM-DD format")
	}
	return nil
}

func ValidReservationTime(s *Scope) error {
	value, ok := s.String("reservation_time")
	if !ok || !utils.IsValidTime(value) {
		return utils.BadRequest("reservation_time must be a valid time in HH:MM format")
	}
	return nil
}

func DateNotInPast(s *Scope) error {
	date, _ := s.String("reservation_date")
	if !utils.IsFutureDate(date, s.Now) {
		return utils.BadRequest("Reservation date must be in the future")
	}
	return nil
}

func NotClosedDay(rules config.BusinessRules) Guard {
	closed := rules.ClosedWeekdays()
	return func(s *Scope) error {
		date, _ := s.String("reservation_date")
		if !utils.IsClosedDay(date, closed) {
			return nil
		}
		d, err := utils.ParseDate(date, time.UTC)
		if err != nil {
			return utils.BadRequest("reservation_date must be a valid date in YYYY-MM-DD format")
		}
		return utils.BadRequest("Restaurant is closed on %ss", d.Weekday())
	}
}

func WithinBusinessHours(rules config.BusinessRules) Guard {
	return func(s *Scope) error {
		clock, _ := s.String("reservation_time")
		if !utils.IsWithinBusinessHours(clock, rules.OpeningTime, rules.ClosingTime) {
			return utils.BadRequest("Reservation time must be during business hours (%s - %s)", rules.OpeningTime, rules.ClosingTime)
		}
		if !utils.IsBeforeLastSeating(clock, rules.LastSeatingTime) {
			return utils.BadRequest("Reservation time must be no later than %s, the last seating", rules.LastSeatingTime)
		}
		return nil
	}
}

// NotPastTimeToday rejects a reservation for today whose time has already gone by.
func NotPastTimeToday(s *Scope) error {
	date, _ := s.String("reservation_date")
	clock, _ := s.String("reservation_time")
	if utils.IsToday(date, s.Now) && utils.IsPastDateTime(date, clock, s.Now) {
		return utils.BadRequest("Reservation time must be in the future")
	}
	return nil
}

func statusField(s *Scope) (models.ReservationStatus, bool, error) {
	if !s.Has("status") {
		return "", false, nil
	}
	value, _ := s.String("status")
	status, ok := models.ParseReservationStatus(strings.ToLower(value))
	if !ok {
		return "", true, utils.BadRequest("status must be one of: booked, seated, finished, cancelled")
	}
	return status, true, nil
}

// KnownStatus rejects unknown status values. An absent status passes.
func KnownStatus(s *Scope) error {
	_, _, err := statusField(s)
	return err
}

// CreatableStatus allows only booked (or no status) on a new reservation.
func CreatableStatus(s *Scope) error {
	status, present, err := statusField(s)
	if err != nil || !present {
		return err
	}
	if status != models.StatusBooked {
		return utils.BadRequest("A new reservation cannot have status '%s'", status)
	}
	return nil
}

// UpdatableStatus checks the move from the loaded reservation's status to the
// requested one. Without a requested status the reservation must not be terminal.
func UpdatableStatus(s *Scope) error {
	current := s.Reservation.Status
	requested, present, err := statusField(s)
	if err != nil {
		return err
	}
	if !present {
		requested = current
	}
	if err := models.CheckTransition(current, requested); err != nil {
		return utils.BadRequest("%s", capitalize(err.Error()))
	}
	return nil
}

// NotSeatingStatus keeps seated and finished out of direct status edits: those
// states are entered only together with a table assignment.
func NotSeatingStatus(s *Scope) error {
	requested, present, err := statusField(s)
	if err != nil || !present || requested == s.Reservation.Status {
		return err
	}
	switch requested {
	case models.StatusSeated:
		return utils.BadRequest("A reservation is seated through PUT /tables/:table_id/seat")
	case models.StatusFinished:
		return utils.BadRequest("A reservation is finished through DELETE /tables/:table_id/seat")
	}
	return nil
}

func CancellableReservation(s *Scope) error {
	if err := models.CheckTransition(s.Reservation.Status, models.StatusCancelled); err != nil {
		return utils.BadRequest("%s", capitalize(err.Error()))
	}
	return nil
}

// ReservationExists loads the reservation named by the :reservation_id path
// parameter.
func ReservationExists(reader ReservationReader) Guard {
	return func(s *Scope) error {
		param := s.Ctx.Param("reservation_id")
		id, ok := parseID(param)
		if !ok {
			return utils.NotFound("Reservation ID cannot be found: %s", param)
		}
		reservation, err := reader.Read(s.Ctx.Request.Context(), id)
		if err != nil {
			return utils.Internal(err)
		}
		if reservation == nil {
			return utils.NotFound("Reservation ID cannot be found: %s", param)
		}
		s.Reservation = reservation
		return nil
	}
}

// PartyFitsSeatedTable keeps a seated party from growing past its table.
func PartyFitsSeatedTable(tables SeatedTableReader) Guard {
	return func(s *Scope) error {
		if s.Reservation == nil || s.Reservation.Status != models.StatusSeated {
			return nil
		}
		table, err := tables.ReadByReservation(s.Ctx.Request.Context(), s.Reservation.ReservationID)
		if err != nil {
			return utils.Internal(err)
		}
		people, _ := s.Int("people")
		if table != nil && people > table.Capacity {
			return utils.BadRequest("Table capacity (%d) is less than the party size (%d)", table.Capacity, people)
		}
		return nil
	}
}

// CreateReservationChain validates POST /reservations.
func CreateReservationChain(rules config.BusinessRules) []Guard {
	return append(reservationBodyChain(rules), CreatableStatus)
}

// UpdateReservationChain validates PUT /reservations/:reservation_id.
func UpdateReservationChain(reader ReservationReader, tables SeatedTableReader, rules config.BusinessRules) []Guard {
	chain := []Guard{ReservationExists(reader)}
	chain = append(chain, reservationBodyChain(rules, PartyFitsSeatedTable(tables))...)
	return append(chain, KnownStatus, UpdatableStatus, NotSeatingStatus)
}

// StatusChain validates PUT /reservations/:reservation_id/status.
func StatusChain(reader ReservationReader) []Guard {
	return []Guard{
		ReservationExists(reader),
		HasData,
		HasRequiredFields("status"),
		KnownStatus,
		UpdatableStatus,
		NotSeatingStatus,
	}
}

// CancelChain validates DELETE /reservations/:reservation_id.
func CancelChain(reader ReservationReader) []Guard {
	return []Guard{ReservationExists(reader), CancellableReservation}
}

// reservationBodyChain checks the reservation fields. afterPeople run once
// people is known to be valid.
func reservationBodyChain(rules config.BusinessRules, afterPeople ...Guard) []Guard {
	chain := []Guard{
		HasData,
		HasRequiredFields(reservationFields...),
		ValidName("first_name"),
		ValidName("last_name"),
		ValidMobileNumber,
		ValidPeople(rules),
	}
	chain = append(chain, afterPeople...)
	return append(chain,
		ValidReservationDate,
		ValidReservationTime,
		DateNotInPast,
		NotClosedDay(rules),
		WithinBusinessHours(rules),
		NotPastTimeToday,
	)
}

// ReservationRequest builds the request from a scope that passed a
// reservation chain.
func ReservationRequest(s *Scope) dto.ReservationRequest {
	first, _ := s.String("first_name")
	last, _ := s.String("last_name")
	mobile, _ := s.String("mobile_number")
	phone, _ := utils.NormalizePhone(mobile)
	people, _ := s.Int("people")
	date, _ := s.String("reservation_date")
	clock, _ := s.String("reservation_time")
	status, _, _ := statusField(s)

	return dto.ReservationRequest{
		FirstName:       first,
		LastName:        last,
		MobileNumber:    phone,
		People:          people,
		ReservationDate: date,
		ReservationTime: clock,
		Status:          status,
	}
}

// StatusRequest builds the request from a scope that passed StatusChain.
func StatusRequest(s *Scope) dto.StatusRequest {
	status, _, _ := statusField(s)
	return dto.StatusRequest{Status: status}
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
