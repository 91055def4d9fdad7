package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/long-kr/Project-Restaurant-Reservation/config"
	"github.com/long-kr/Project-Restaurant-Reservation/controllers"
	"github.com/long-kr/Project-Restaurant-Reservation/middlewares"
	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/services"
)

// Monday 2030-06-03 at noon; 2030-06-04 is a Tuesday.
var fixedNow = time.Date(2030, 6, 3, 12, 0, 0, 0, time.UTC)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// setupTestDB uses SQLite in-memory with a single connection per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Reservation{}, &models.Table{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares.ErrorHandler(false))

	reservationService := services.NewReservationService(db)
	tableService := services.NewTableService(db)
	reservationCtrl := controllers.NewReservationController(reservationService, tableService, config.DefaultBusinessRules(), time.UTC)
	reservationCtrl.Now = func() time.Time { return fixedNow }
	tableCtrl := controllers.NewTableController(tableService, reservationService, services.NewSeatingService(db))

	r.GET("/reservations", reservationCtrl.ListReservations)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservation)
	r.PUT("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	r.DELETE("/reservations/:reservation_id", reservationCtrl.CancelReservation)
	r.PUT("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)

	r.GET("/tables", tableCtrl.GetAllTables)
	r.POST("/tables", tableCtrl.CreateTable)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)
	r.PUT("/tables/:table_id", tableCtrl.UpdateTable)
	r.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	r.PUT("/tables/:table_id/seat", tableCtrl.SeatTable)
	r.DELETE("/tables/:table_id/seat", tableCtrl.FinishTable)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, url string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func reservationBody(overrides map[string]interface{}) map[string]interface{} {
	data := map[string]interface{}{
		"first_name":       "Rick",
		"last_name":        "Sanchez",
		"mobile_number":    "202-555-0164",
		"people":           2,
		"reservation_date": "2030-06-10",
		"reservation_time": "18:00",
	}
	for k, v := range overrides {
		if v == nil {
			delete(data, k)
			continue
		}
		data[k] = v
	}
	return map[string]interface{}{"data": data}
}

func seedReservation(t *testing.T, db *gorm.DB, r models.Reservation) models.Reservation {
	t.Helper()
	if r.FirstName == "" {
		r.FirstName, r.LastName = "Rick", "Sanchez"
	}
	if r.MobileNumber == "" {
		r.MobileNumber = "202-555-0164"
	}
	if r.People == 0 {
		r.People = 2
	}
	if r.ReservationDate == "" {
		r.ReservationDate = "2030-06-10"
	}
	if r.ReservationTime == "" {
		r.ReservationTime = "18:00"
	}
	if r.Status == "" {
		r.Status = models.StatusBooked
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func seedTable(t *testing.T, db *gorm.DB, name string, capacity int) models.Table {
	t.Helper()
	table := models.Table{TableName: name, Capacity: capacity}
	require.NoError(t, db.Create(&table).Error)
	return table
}
