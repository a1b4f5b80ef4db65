package models

import (
	"time"
)

// Model is the base model for all entities in the backend.
type Model struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
