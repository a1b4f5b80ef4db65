package models

import (
	"strconv"
	"time"

	"github.com/proyect-bank/backend/internal/slug"
	"gorm.io/gorm"
)

// Transaction records a transfer of amount from the sender account to
// the recipient account.
type Transaction struct {
	Model
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	SenderID    uint64    `json:"sender_id"`
	Sender      Account   `json:"-" gorm:"foreignKey:SenderID"`
	RecipientID uint64    `json:"recipient_id"`
	Recipient   Account   `json:"-" gorm:"foreignKey:RecipientID"`
	BudgetID    uint64    `json:"budget_id"`
	Budget      Budget    `json:"-"`
	CategoryID  uint64    `json:"category_id"`
	Category    Category  `json:"-"`
	MovementID  uint64    `json:"movement_id"`
	Movement    Movement  `json:"-"`
	Slug        string    `json:"slug"`
}

func (t *Transaction) DeriveSlug() {
	t.Slug = slug.Make(strconv.FormatInt(t.Amount, 10))
}

func (t *Transaction) checkUnique(_ *gorm.DB) error {
	return nil
}

// checkIntegrity verifies the transfer invariants and the references
// to other resources. Reference checks run in a fixed order so that
// error messages are deterministic: recipient, sender, category,
// budget, movement.
//
// Running these here means updates are held to the same invariants as
// the transfer that created the row.
func (t *Transaction) checkIntegrity(tx *gorm.DB) error {
	if t.Amount <= 0 {
		return ErrAmountNotPositive
	}

	if t.SenderID == t.RecipientID {
		return ErrSameAccount
	}

	if err := tx.First(&Account{}, t.RecipientID).Error; err != nil {
		return err
	}

	if err := tx.First(&Account{}, t.SenderID).Error; err != nil {
		return err
	}

	if err := tx.First(&Category{}, t.CategoryID).Error; err != nil {
		return err
	}

	if err := tx.First(&Budget{}, t.BudgetID).Error; err != nil {
		return err
	}

	return tx.First(&Movement{}, t.MovementID).Error
}

// TransferRequest holds the validated input for a transfer.
type TransferRequest struct {
	Amount      int64
	SenderID    uint64
	RecipientID uint64
	BudgetID    uint64
	CategoryID  uint64
	MovementID  uint64
}

// Transfer moves Amount from the sender account to the recipient
// account and records the transaction.
//
// The reference checks, both balance changes and the insert run in one
// database transaction: either all of it is committed or none of it.
// The sender is debited with a conditional update so that two
// concurrent transfers cannot overdraw the account.
func Transfer(db *gorm.DB, request TransferRequest) (Transaction, error) {
	transaction := Transaction{
		Amount:      request.Amount,
		Date:        time.Now().In(time.UTC),
		SenderID:    request.SenderID,
		RecipientID: request.RecipientID,
		BudgetID:    request.BudgetID,
		CategoryID:  request.CategoryID,
		MovementID:  request.MovementID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := transaction.checkIntegrity(tx); err != nil {
			return err
		}

		// The balance guard is part of the WHERE clause: when the row
		// no longer holds enough funds, no row is updated and the
		// transfer is rejected.
		debit := tx.Model(&Account{}).
			Where("id = ? AND balance >= ?", request.SenderID, request.Amount).
			Update("balance", gorm.Expr("balance - ?", request.Amount))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return ErrBalanceInsufficient
		}

		err := tx.Model(&Account{}).
			Where("id = ?", request.RecipientID).
			Update("balance", gorm.Expr("balance + ?", request.Amount)).Error
		if err != nil {
			return err
		}

		transaction.DeriveSlug()
		return tx.Create(&transaction).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}
