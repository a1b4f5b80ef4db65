package models

import (
	"gorm.io/gorm"
)

// Resource is implemented by every persisted entity. The methods are
// the explicit per-entity steps that Create and Update run before
// writing: uniqueness and reference checks, then slug derivation.
type Resource interface {
	// DeriveSlug sets the slug from the entity's basis field.
	DeriveSlug()

	// checkUnique verifies that no other row holds the entity's
	// unique field, returning the resource's conflict error if one does.
	checkUnique(tx *gorm.DB) error

	// checkIntegrity verifies references to other resources.
	checkIntegrity(tx *gorm.DB) error
}

// Create persists a resource.
//
// The uniqueness and reference checks and the write run in a single
// database transaction so that a concurrent delete cannot invalidate a
// check after it passed. Nothing is written when any check fails.
func Create(db *gorm.DB, resource Resource) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := resource.checkUnique(tx); err != nil {
			return err
		}

		if err := resource.checkIntegrity(tx); err != nil {
			return err
		}

		resource.DeriveSlug()
		return tx.Create(resource).Error
	})
}

// Update persists changes to an already loaded resource, re-running
// the same checks and slug derivation as Create.
func Update(db *gorm.DB, resource Resource) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := resource.checkUnique(tx); err != nil {
			return err
		}

		if err := resource.checkIntegrity(tx); err != nil {
			return err
		}

		resource.DeriveSlug()
		return tx.Save(resource).Error
	})
}

// One returns the resource with the given ID.
func One[T any](db *gorm.DB, id uint64) (T, error) {
	var resource T
	err := db.First(&resource, id).Error
	return resource, err
}

// All returns all resources of the type, ordered by ID descending.
func All[T any](db *gorm.DB) ([]T, error) {
	resources := make([]T, 0)
	err := db.Order("id DESC").Find(&resources).Error
	return resources, err
}

// Delete removes the resource with the given ID. The row is deleted
// for good, there is no tombstone.
func Delete[T any](db *gorm.DB, id uint64) error {
	resource, err := One[T](db, id)
	if err != nil {
		return err
	}

	return db.Delete(&resource).Error
}

// checkNameUnique reports the conflict error when another row of T
// already uses the name. The entity's own row is excluded so that
// updates do not conflict with themselves.
func checkNameUnique[T any](tx *gorm.DB, column, value string, excludeID uint64, conflict error) error {
	var count int64

	var resource T
	err := tx.Model(&resource).Where(column+" = ? AND id <> ?", value, excludeID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return conflict
	}

	return nil
}
