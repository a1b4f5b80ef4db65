package models

import (
	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// Category tags transactions, e.g. groceries or rent.
type Category struct {
	Model
	Name string `json:"name" gorm:"uniqueIndex"`
	Slug string `json:"slug"`
}

func (c *Category) DeriveSlug() {
	c.Slug = slug.Make(c.Name)
}

func (c *Category) checkUnique(tx *gorm.DB) error {
	return checkNameUnique[Category](tx, "name", c.Name, c.ID, ErrCategoryNameNotUnique)
}

func (c *Category) checkIntegrity(_ *gorm.DB) error {
	return nil
}
