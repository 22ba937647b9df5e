package domain

import "time"

// Note is a single bird-sighting record owned by one user.
type Note struct {
	ID            uint      `gorm:"primaryKey"`
	SpeciesName   string    `gorm:"type:varchar(191);index;not null"`
	Habitat       string    `gorm:"type:text"`
	DateSeen      time.Time `gorm:"type:date;not null"`
	Appearance    string    `gorm:"type:text"`
	Vocalizations string    `gorm:"type:text"`
	FlockSize     int       `gorm:"not null;default:1"`
	UserID        uint      `gorm:"index;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// NoteWithAuthor is the read shape for listing pages: a note joined with
// its author's username.
type NoteWithAuthor struct {
	Note
	Username string
}
