package migrations

import (
	"blog_api/internal/models"

	"gorm.io/gorm"
)

// All returns the revision chain, oldest first.
func All() []Revision {
	return []Revision{
		addUserPhoneNumber,
	}
}

// Table names are kept exactly as first written ("Users" up, "users" down).
// Unquoted identifiers fold to the same table on postgres and sqlite; a quoted
// or case-sensitive backend would break the downgrade.
var addUserPhoneNumber = Revision{
	ID:           "4ee56d53d8b5",
	DownRevision: "",
	Message:      "create phone number for user column",
	Upgrade: func(tx *gorm.DB) error {
		if tx.Migrator().HasColumn(&models.User{}, "phone_number") {
			return nil
		}
		return tx.Exec("ALTER TABLE Users ADD COLUMN phone_number VARCHAR").Error
	},
	Downgrade: func(tx *gorm.DB) error {
		if !tx.Migrator().HasColumn(&models.User{}, "phone_number") {
			return nil
		}
		return tx.Exec("ALTER TABLE users DROP COLUMN phone_number").Error
	},
}
