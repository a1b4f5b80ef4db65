package models

import (
	"time"

	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// Budget represents a spending allotment for a profile within a phase.
type Budget struct {
	Model
	Name      string     `json:"name" gorm:"uniqueIndex"`
	Balance   int64      `json:"balance"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	PhaseID   uint64     `json:"phase_id"`
	Phase     Phase      `json:"-"`
	ProfileID uint64     `json:"profile_id"`
	Profile   Profile    `json:"-"`
	Slug      string     `json:"slug"`
}

// DeriveSlug combines the name slug with the start date in YYYYMMDD
// format. The start date defaults to the current day when unset.
func (b *Budget) DeriveSlug() {
	if b.StartDate.IsZero() {
		b.StartDate = time.Now().In(time.UTC)
	}

	b.Slug = slug.MakeWithDate(b.Name, b.StartDate)
}

func (b *Budget) checkUnique(tx *gorm.DB) error {
	return checkNameUnique[Budget](tx, "name", b.Name, b.ID, ErrBudgetNameNotUnique)
}

// checkIntegrity verifies references to other resources
func (b *Budget) checkIntegrity(tx *gorm.DB) error {
	if err := tx.First(&Phase{}, b.PhaseID).Error; err != nil {
		return err
	}

	return tx.First(&Profile{}, b.ProfileID).Error
}
