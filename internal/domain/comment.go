package domain

import "time"

// Comment is a free-text remark a user leaves on a note. Comments are
// append-only: never edited, never deleted except when their note goes.
type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	NoteID    uint      `gorm:"index;not null"`
	UserID    uint      `gorm:"index;not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName pins the comment table name the deployed schema uses.
func (Comment) TableName() string { return "users_notes" }

// CommentWithAuthor is the read shape for rendering: comment text joined
// with the commenting user's username.
type CommentWithAuthor struct {
	Username string
	Comment  string
}
