package models

import (
	"time"

	"github.com/google/uuid"
)

// Report представляет сообщение о встрече кота, привязанное ровно к одному коту
type Report struct {
	ID          uuid.UUID  `json:"id"`
	CatID       uuid.UUID  `json:"cat_id"`
	ReporterID  *uuid.UUID `json:"reporter_id,omitempty"`
	Description string     `json:"description"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Photos      []string   `json:"photos"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// ReporterName заполняется только при выборке репортов с данными автора
	ReporterName string `json:"reporter_name,omitempty"`
}
