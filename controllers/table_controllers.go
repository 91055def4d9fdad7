package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/long-kr/Project-Restaurant-Reservation/metrics"
	"github.com/long-kr/Project-Restaurant-Reservation/services"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
	"github.com/long-kr/Project-Restaurant-Reservation/validators"
)

type TableController struct {
	Tables       *services.TableService
	Reservations *services.ReservationService
	Seating      *services.SeatingService
	// Metrics may be nil.
	Metrics *metrics.Metrics
}

func NewTableController(tables *services.TableService, reservations *services.ReservationService, seating *services.SeatingService) *TableController {
	return &TableController{Tables: tables, Reservations: reservations, Seating: seating}
}

func (tc *TableController) run(c *gin.Context, chain []validators.Guard) (*validators.Scope, bool) {
	s, err := validators.NewScope(c, time.Now())
	if err == nil {
		err = validators.Run(s, chain)
	}
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return s, true
}

// GetAllTables -> every table ordered by name
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, tables)
}

func (tc *TableController) GetTableByID(c *gin.Context) {
	s, ok := tc.run(c, []validators.Guard{validators.TableExists(tc.Tables)})
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, s.Table)
}

func (tc *TableController) CreateTable(c *gin.Context) {
	s, ok := tc.run(c, validators.CreateTableChain())
	if !ok {
		return
	}

	table, err := tc.Tables.Create(c.Request.Context(), validators.TableRequest(s))
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, table)
}

// UpdateTable -> edits name and capacity; occupancy changes go through seat/finish
func (tc *TableController) UpdateTable(c *gin.Context) {
	s, ok := tc.run(c, validators.UpdateTableChain(tc.Tables, tc.Reservations))
	if !ok {
		return
	}

	table, err := tc.Tables.Update(c.Request.Context(), s.Table.TableID, validators.TableRequest(s))
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, table)
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	s, ok := tc.run(c, validators.DeleteTableChain(tc.Tables))
	if !ok {
		return
	}

	if err := tc.Tables.Delete(c.Request.Context(), s.Table.TableID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = utils.NotFound("Table ID cannot be found: %d", s.Table.TableID)
		}
		fail(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"table_id": s.Table.TableID})
}

// SeatTable -> PUT /tables/:table_id/seat
func (tc *TableController) SeatTable(c *gin.Context) {
	s, ok := tc.run(c, validators.SeatChain(tc.Tables, tc.Reservations))
	if !ok {
		return
	}

	req := validators.SeatRequest(s)
	table, err := tc.Seating.Seat(c.Request.Context(), s.Table.TableID, req.ReservationID)
	if err != nil {
		tc.observeFailure(err)
		fail(c, err)
		return
	}
	tc.Metrics.ObserveSeating(metrics.OutcomeSeated)
	utils.RespondJSON(c, http.StatusOK, table)
}

// FinishTable -> DELETE /tables/:table_id/seat
func (tc *TableController) FinishTable(c *gin.Context) {
	s, ok := tc.run(c, validators.FinishChain(tc.Tables))
	if !ok {
		return
	}

	table, err := tc.Seating.Finish(c.Request.Context(), s.Table.TableID)
	if err != nil {
		tc.observeFailure(err)
		fail(c, err)
		return
	}
	tc.Metrics.ObserveSeating(metrics.OutcomeFinished)
	utils.RespondJSON(c, http.StatusOK, table)
}

// observeFailure counts the write-time races the guards could not catch.
func (tc *TableController) observeFailure(err error) {
	if toAppError(err).Status == http.StatusConflict {
		tc.Metrics.ObserveSeating(metrics.OutcomeConflict)
	}
}
