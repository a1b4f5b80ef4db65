package models

import (
	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// Type classifies accounts, e.g. checking or savings.
type Type struct {
	Model
	Name string `json:"name" gorm:"uniqueIndex"`
	Slug string `json:"slug"`
}

func (t *Type) DeriveSlug() {
	t.Slug = slug.Make(t.Name)
}

func (t *Type) checkUnique(tx *gorm.DB) error {
	return checkNameUnique[Type](tx, "name", t.Name, t.ID, ErrTypeNameNotUnique)
}

func (t *Type) checkIntegrity(_ *gorm.DB) error {
	return nil
}
