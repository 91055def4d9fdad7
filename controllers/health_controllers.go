package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/long-kr/Project-Restaurant-Reservation/config"
	"github.com/long-kr/Project-Restaurant-Reservation/dto"
)

type HealthController struct {
	App     config.AppConfig
	started time.Time
}

func NewHealthController(app config.AppConfig) *HealthController {
	return &HealthController{App: app, started: time.Now()}
}

// Health is not wrapped in the data envelope so that probes can read it directly.
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Name:        hc.App.Name,
		Status:      "OK",
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(hc.started).Seconds(),
		Environment: hc.App.Env,
		Version:     hc.App.Version,
	})
}
