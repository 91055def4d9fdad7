package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/long-kr/Project-Restaurant-Reservation/services"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// fail records err for the error middleware and stops the handler chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(toAppError(err))
	c.Abort()
}

// toAppError maps service sentinels to client errors. Anything unknown is a 500.
func toAppError(err error) *utils.AppError {
	if appErr, ok := utils.AsAppError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, services.ErrTableOccupied):
		return utils.Conflict("Table is already occupied")
	case errors.Is(err, services.ErrTableNotOccupied):
		return utils.Conflict("Table is not occupied")
	case errors.Is(err, services.ErrReservationNotBooked):
		return utils.Conflict("Reservation is no longer booked")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.NotFound("Record not found")
	}
	return utils.Internal(err)
}
