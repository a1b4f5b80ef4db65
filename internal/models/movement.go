package models

import (
	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// Movement classifies the direction of a transaction, e.g. income or
// expense. Unlike the other lookup resources its name is not unique.
type Movement struct {
	Model
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (m *Movement) DeriveSlug() {
	m.Slug = slug.Make(m.Name)
}

func (m *Movement) checkUnique(_ *gorm.DB) error {
	return nil
}

func (m *Movement) checkIntegrity(_ *gorm.DB) error {
	return nil
}
