package models

import "time"

type Todo struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"-"`
	Title     string    `gorm:"not null" json:"title"`
	Deadline  time.Time `json:"deadline"`
	Done      bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt time.Time `json:"created_at"`

	// Seq keeps insertion order within the owner's list.
	Seq int64 `gorm:"not null;index" json:"-"`
}
