package models

import (
	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// State represents the lifecycle state a profile or account is in,
// e.g. active or suspended.
type State struct {
	Model
	Name string `json:"name" gorm:"uniqueIndex"`
	Slug string `json:"slug"`
}

func (s *State) DeriveSlug() {
	s.Slug = slug.Make(s.Name)
}

func (s *State) checkUnique(tx *gorm.DB) error {
	return checkNameUnique[State](tx, "name", s.Name, s.ID, ErrStateNameNotUnique)
}

func (s *State) checkIntegrity(_ *gorm.DB) error {
	return nil
}
