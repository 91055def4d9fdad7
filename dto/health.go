package dto

import "time"

type HealthResponse struct {
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      float64   `json:"uptime"`
	Environment string    `json:"environment"`
	Version     string    `json:"version"`
}
