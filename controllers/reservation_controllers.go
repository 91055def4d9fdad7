package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/long-kr/Project-Restaurant-Reservation/config"
	"github.com/long-kr/Project-Restaurant-Reservation/dto"
	"github.com/long-kr/Project-Restaurant-Reservation/services"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
	"github.com/long-kr/Project-Restaurant-Reservation/validators"
)

type ReservationController struct {
	Reservations *services.ReservationService
	Tables       *services.TableService
	Rules        config.BusinessRules
	Location     *time.Location
	// Now is replaceable in tests.
	Now func() time.Time
}

func NewReservationController(reservations *services.ReservationService, tables *services.TableService, rules config.BusinessRules, loc *time.Location) *ReservationController {
	if loc == nil {
		loc = time.Local
	}
	return &ReservationController{
		Reservations: reservations,
		Tables:       tables,
		Rules:        rules,
		Location:     loc,
		Now:          time.Now,
	}
}

func (rc *ReservationController) now() time.Time {
	return rc.Now().In(rc.Location)
}

// run builds the request scope and applies chain. On failure the error is
// already recorded and the caller must return.
func (rc *ReservationController) run(c *gin.Context, chain []validators.Guard) (*validators.Scope, bool) {
	s, err := validators.NewScope(c, rc.now())
	if err == nil {
		err = validators.Run(s, chain)
	}
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return s, true
}

// ListReservations -> ?mobile_number= searches by phone, otherwise lists the
// active reservations for ?date= (today when omitted).
func (rc *ReservationController) ListReservations(c *gin.Context) {
	query := dto.ReservationQuery{
		Date:         c.Query("date"),
		MobileNumber: c.Query("mobile_number"),
	}

	if query.IsSearch() {
		reservations, err := rc.Reservations.SearchByPhone(c.Request.Context(), query.MobileNumber)
		if err != nil {
			fail(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, reservations)
		return
	}

	if query.Date == "" {
		query.Date = rc.now().Format(utils.DateLayout)
	}
	if !utils.IsValidDate(query.Date) {
		fail(c, utils.BadRequest("date must be a valid date in YYYY-MM-DD format"))
		return
	}

	reservations, err := rc.Reservations.ListByDate(c.Request.Context(), query.Date)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) GetReservation(c *gin.Context) {
	s, ok := rc.run(c, []validators.Guard{validators.ReservationExists(rc.Reservations)})
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, s.Reservation)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	s, ok := rc.run(c, validators.CreateReservationChain(rc.Rules))
	if !ok {
		return
	}

	reservation, err := rc.Reservations.Create(c.Request.Context(), validators.ReservationRequest(s))
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, reservation)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	s, ok := rc.run(c, validators.UpdateReservationChain(rc.Reservations, rc.Tables, rc.Rules))
	if !ok {
		return
	}

	reservation, err := rc.Reservations.Update(c.Request.Context(), s.Reservation.ReservationID, validators.ReservationRequest(s))
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	s, ok := rc.run(c, validators.StatusChain(rc.Reservations))
	if !ok {
		return
	}

	req := validators.StatusRequest(s)
	reservation, err := rc.Reservations.UpdateStatus(c.Request.Context(), s.Reservation.ReservationID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

// CancelReservation -> DELETE keeps the row and marks it cancelled.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	s, ok := rc.run(c, validators.CancelChain(rc.Reservations))
	if !ok {
		return
	}

	reservation, err := rc.Reservations.Cancel(c.Request.Context(), s.Reservation.ReservationID)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}
