package models

import (
	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// Account represents a named balance holder belonging to a profile.
//
// The balance is an integer in the smallest currency unit so that no
// precision is lost.
type Account struct {
	Model
	Name      string  `json:"name" gorm:"uniqueIndex"`
	Balance   int64   `json:"balance"`
	StateID   uint64  `json:"state_id"`
	State     State   `json:"-"`
	ProfileID uint64  `json:"profile_id"`
	Profile   Profile `json:"-"`
	TypeID    uint64  `json:"type_id"`
	Type      Type    `json:"-"`
	Slug      string  `json:"slug"`
}

func (a *Account) DeriveSlug() {
	a.Slug = slug.Make(a.Name)
}

func (a *Account) checkUnique(tx *gorm.DB) error {
	return checkNameUnique[Account](tx, "name", a.Name, a.ID, ErrAccountNameNotUnique)
}

// checkIntegrity verifies references to other resources. Checks run in
// a fixed order so that error messages are deterministic: state, type,
// profile.
func (a *Account) checkIntegrity(tx *gorm.DB) error {
	if err := tx.First(&State{}, a.StateID).Error; err != nil {
		return err
	}

	if err := tx.First(&Type{}, a.TypeID).Error; err != nil {
		return err
	}

	return tx.First(&Profile{}, a.ProfileID).Error
}

// Transactions returns all transactions for this account, as sender
// or as recipient.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction
	err := db.Where(Transaction{SenderID: a.ID}).Or(Transaction{RecipientID: a.ID}).Find(&transactions).Error
	return transactions, err
}
