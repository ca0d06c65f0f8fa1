package models

type User struct {
	ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Pro      bool   `gorm:"not null;default:false" json:"pro"`

	// Relations
	Todos []Todo `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"todos"`
}

// FindTodo returns the user's todo with the given ID.
func (u *User) FindTodo(id string) (*Todo, bool) {
	for i := range u.Todos {
		if u.Todos[i].ID == id {
			return &u.Todos[i], true
		}
	}
	return nil, false
}

// Clone returns a copy that shares no todo storage with u.
func (u *User) Clone() *User {
	clone := *u
	clone.Todos = make([]Todo, len(u.Todos))
	copy(clone.Todos, u.Todos)
	return &clone
}
