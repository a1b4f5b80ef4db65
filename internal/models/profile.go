package models

import (
	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// Profile represents an end user of the backend.
//
// The password is stored as a bcrypt hash and never serialized.
type Profile struct {
	Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	StateID  uint64 `json:"state_id"`
	State    State  `json:"-"`
	Slug     string `json:"slug"`
}

func (p *Profile) DeriveSlug() {
	p.Slug = slug.Make(p.Email)
}

func (p *Profile) checkUnique(tx *gorm.DB) error {
	return checkNameUnique[Profile](tx, "email", p.Email, p.ID, ErrProfileEmailNotUnique)
}

// checkIntegrity verifies references to other resources
func (p *Profile) checkIntegrity(tx *gorm.DB) error {
	return tx.First(&State{}, p.StateID).Error
}

// ProfileByEmail returns the profile registered with the email.
func ProfileByEmail(db *gorm.DB, email string) (Profile, error) {
	var profile Profile
	err := db.Where(&Profile{Email: email}).First(&profile).Error
	return profile, err
}
