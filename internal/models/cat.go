package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы кота. Других значений в БД быть не может (enum cat_status).
const (
	StatusHome  = "home"
	StatusLost  = "lost"
	StatusFound = "found"
)

// LastSeen - последнее известное местоположение кота.
// Обновляется при каждом новом репорте о встрече.
type LastSeen struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Cat представляет карточку пропавшего/найденного кота
type Cat struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Photos      []string   `json:"photos"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
	LastSeen    LastSeen   `json:"last_seen"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
