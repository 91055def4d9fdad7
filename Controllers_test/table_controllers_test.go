package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/long-kr/Project-Restaurant-Reservation/models"
)

func seatBody(reservationID interface{}) map[string]interface{} {
	return map[string]interface{}{"data": map[string]interface{}{"reservation_id": reservationID}}
}

func TestCreateAndListTables(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	code, resp := doRequest(t, router, http.MethodPost, "/tables",
		map[string]interface{}{"data": map[string]interface{}{"table_name": "Bar #3", "capacity": 1}})
	require.Equal(t, http.StatusCreated, code, resp.Error)
	created := decode[models.Table](t, resp.Data)
	assert.Equal(t, "Bar #3", created.TableName)
	assert.Nil(t, created.ReservationID)

	seedTable(t, db, "#1", 6)

	code, resp = doRequest(t, router, http.MethodGet, "/tables", nil)
	require.Equal(t, http.StatusOK, code)
	tables := decode[[]models.Table](t, resp.Data)
	require.Len(t, tables, 2)
	assert.Equal(t, "#1", tables[0].TableName)

	code, resp = doRequest(t, router, http.MethodPost, "/tables",
		map[string]interface{}{"data": map[string]interface{}{"table_name": "A", "capacity": 1}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "table_name must be at least 2 characters long", resp.Error)

	code, resp = doRequest(t, router, http.MethodPost, "/tables",
		map[string]interface{}{"data": map[string]interface{}{"table_name": "#9", "capacity": "1"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "capacity must be a positive integer", resp.Error)
}

func TestSeatAndFinishTable(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)
	r := seedReservation(t, db, models.Reservation{People: 6})
	seedTable(t, db, "#1", 6)

	code, resp := doRequest(t, router, http.MethodPut, "/tables/1/seat", seatBody(r.ReservationID))
	require.Equal(t, http.StatusOK, code, resp.Error)
	seated := decode[models.Table](t, resp.Data)
	require.NotNil(t, seated.ReservationID)
	assert.Equal(t, r.ReservationID, *seated.ReservationID)

	_, resp = doRequest(t, router, http.MethodGet, "/reservations/1", nil)
	assert.Equal(t, models.StatusSeated, decode[models.Reservation](t, resp.Data).Status)

	code, resp = doRequest(t, router, http.MethodPut, "/tables/1/seat", seatBody(r.ReservationID))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Table is already occupied", resp.Error)

	code, resp = doRequest(t, router, http.MethodDelete, "/tables/1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Table is already occupied", resp.Error)

	code, resp = doRequest(t, router, http.MethodDelete, "/tables/1/seat", nil)
	require.Equal(t, http.StatusOK, code, resp.Error)
	assert.Nil(t, decode[models.Table](t, resp.Data).ReservationID)

	_, resp = doRequest(t, router, http.MethodGet, "/reservations/1", nil)
	assert.Equal(t, models.StatusFinished, decode[models.Reservation](t, resp.Data).Status)

	code, resp = doRequest(t, router, http.MethodDelete, "/tables/1/seat", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp.Error, "not occupied")

	code, _ = doRequest(t, router, http.MethodDelete, "/tables/1", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestSeatTable_Rejections(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)
	seedReservation(t, db, models.Reservation{People: 6})
	seedTable(t, db, "Bar #1", 1)
	seedTable(t, db, "#1", 6)

	tests := []struct {
		name    string
		url     string
		body    interface{}
		code    int
		message string
	}{
		{"no data", "/tables/2/seat", map[string]interface{}{}, http.StatusBadRequest, "Request body must contain a data object"},
		{"missing table", "/tables/99/seat", seatBody(1), http.StatusNotFound, "Table ID cannot be found: 99"},
		{"missing reservation_id", "/tables/2/seat", map[string]interface{}{"data": map[string]interface{}{}}, http.StatusBadRequest, "reservation_id is required"},
		{"missing reservation", "/tables/2/seat", seatBody(99), http.StatusNotFound, "Reservation ID cannot be found: 99"},
		{"extra field", "/tables/2/seat", map[string]interface{}{"data": map[string]interface{}{"reservation_id": 1, "people": 2}}, http.StatusBadRequest, "invalid field(s): people"},
		{"capacity", "/tables/1/seat", seatBody(1), http.StatusBadRequest, "Table capacity (1) is less than the party size (6)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := doRequest(t, router, http.MethodPut, tt.url, tt.body)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestUpdateTable(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)
	r := seedReservation(t, db, models.Reservation{People: 4})
	seedTable(t, db, "#1", 6)

	code, resp := doRequest(t, router, http.MethodPut, "/tables/1",
		map[string]interface{}{"data": map[string]interface{}{"table_name": "Patio", "capacity": 8}})
	require.Equal(t, http.StatusOK, code, resp.Error)
	assert.Equal(t, "Patio", decode[models.Table](t, resp.Data).TableName)

	code, _ = doRequest(t, router, http.MethodPut, "/tables/1/seat", seatBody(r.ReservationID))
	require.Equal(t, http.StatusOK, code)

	code, resp = doRequest(t, router, http.MethodPut, "/tables/1",
		map[string]interface{}{"data": map[string]interface{}{"table_name": "Patio", "capacity": 2}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Table capacity (2) is less than the seated party size (4)", resp.Error)

	code, _ = doRequest(t, router, http.MethodGet, "/tables/99", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
