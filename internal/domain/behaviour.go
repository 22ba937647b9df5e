package domain

// Behaviour is one entry of the fixed behaviour vocabulary that sightings
// can be tagged with.
type Behaviour struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(191);not null"`
}

// NoteBehaviour links a note to a behaviour (many-to-many). The schema
// carries no uniqueness constraint on the pair; replacement on edit is
// what keeps the set duplicate-free.
type NoteBehaviour struct {
	NoteID      uint `gorm:"index;not null"`
	BehaviourID uint `gorm:"index;not null"`
}

// TableName pins the join table name the deployed schema uses.
func (NoteBehaviour) TableName() string { return "notes_behaviours" }
