package models

import (
	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// Phase groups budgets into a lifecycle stage.
type Phase struct {
	Model
	Name string `json:"name" gorm:"uniqueIndex"`
	Slug string `json:"slug"`
}

func (p *Phase) DeriveSlug() {
	p.Slug = slug.Make(p.Name)
}

func (p *Phase) checkUnique(tx *gorm.DB) error {
	return checkNameUnique[Phase](tx, "name", p.Name, p.ID, ErrPhaseNameNotUnique)
}

func (p *Phase) checkIntegrity(_ *gorm.DB) error {
	return nil
}
