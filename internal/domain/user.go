// Package domain defines the database models shared across the application.
package domain

import "time"

// User is an account that can log in and own sightings.
// Username uniqueness is not enforced by the schema; signup does not
// check for an existing name.
type User struct {
	ID            uint   `gorm:"primaryKey"`
	FirstName     string `gorm:"type:varchar(191)"`
	LastName      string `gorm:"type:varchar(191)"`
	Address       string `gorm:"type:text"`
	ZipCode       string `gorm:"type:varchar(20)"`
	ContactNumber string `gorm:"type:varchar(50)"`
	EmailAddress  string `gorm:"type:varchar(191)"`
	Username      string `gorm:"type:varchar(191);index:idx_username;not null"`
	// Password holds the hex SHA-512 digest of the password, never plaintext.
	Password  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
