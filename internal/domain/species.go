package domain

import "time"

// Species is an independent catalog entry. It is intentionally not
// foreign-keyed to Note; the sighting form records species by name.
type Species struct {
	ID               uint      `gorm:"primaryKey"`
	Name             string    `gorm:"type:varchar(191);not null"`
	ScientificName   string    `gorm:"type:varchar(191)"`
	FamilyName       string    `gorm:"type:varchar(191)"`
	OtherInformation string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}
