package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/long-kr/Project-Restaurant-Reservation/dto"
	"github.com/long-kr/Project-Restaurant-Reservation/models"
)

func TestTableService_ListOrdersByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	ctx := context.Background()

	for _, name := range []string{"#2", "Bar #1", "#1"} {
		_, err := svc.Create(ctx, dto.TableRequest{TableName: name, Capacity: 4})
		require.NoError(t, err)
	}

	tables, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 3)
	assert.Equal(t, "#1", tables[0].TableName)
	assert.Equal(t, "#2", tables[1].TableName)
	assert.Equal(t, "Bar #1", tables[2].TableName)
}

func TestTableService_Update(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := createTable(t, db, "#1", 6)

	updated, err := svc.Update(context.Background(), table.TableID, dto.TableRequest{TableName: "Patio", Capacity: 8})
	require.NoError(t, err)
	assert.Equal(t, "Patio", updated.TableName)
	assert.Equal(t, 8, updated.Capacity)
	assert.False(t, updated.IsOccupied())
}

func TestTableService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	ctx := context.Background()

	free := createTable(t, db, "#1", 6)
	require.NoError(t, svc.Delete(ctx, free.TableID))
	gone, err := svc.Read(ctx, free.TableID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	r := createReservation(t, db, models.Reservation{})
	busy := createTable(t, db, "#2", 6)
	_, err = NewSeatingService(db).Seat(ctx, busy.TableID, r.ReservationID)
	require.NoError(t, err)

	err = svc.Delete(ctx, busy.TableID)
	assert.ErrorIs(t, err, ErrTableOccupied)
	assert.True(t, readTable(t, db, busy.TableID).IsOccupied())
}

func TestTableService_DeleteMissingTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := createTable(t, db, "#1", 6)
	require.NoError(t, db.Delete(&models.Table{}, table.TableID).Error)

	err := svc.Delete(context.Background(), table.TableID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NotErrorIs(t, err, ErrTableOccupied)
}

func TestTableService_ReadByReservation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	ctx := context.Background()

	r := createReservation(t, db, models.Reservation{})
	table := createTable(t, db, "#1", 6)

	found, err := svc.ReadByReservation(ctx, r.ReservationID)
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = NewSeatingService(db).Seat(ctx, table.TableID, r.ReservationID)
	require.NoError(t, err)

	found, err = svc.ReadByReservation(ctx, r.ReservationID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, table.TableID, found.TableID)
}

func TestTableFreedWhenReservationDeleted(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Reservation{}, &models.Table{}))

	ctx := context.Background()
	r := createReservation(t, db, models.Reservation{})
	table := createTable(t, db, "#1", 6)
	_, err = NewSeatingService(db).Seat(ctx, table.TableID, r.ReservationID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Reservation{}, r.ReservationID).Error)

	kept := readTable(t, db, table.TableID)
	assert.False(t, kept.IsOccupied())
	assert.Equal(t, "#1", kept.TableName)
}
