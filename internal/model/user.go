package model

// swagger:model User
type User struct {
	ID       string `gorm:"primaryKey;size:32" json:"user_id"`
	Name     string `gorm:"size:100" json:"name"`
	Subjects string `gorm:"type:text" json:"-"` // JSON-encoded list, stored as a text blob
	Level    int    `gorm:"default:1" json:"level"`
	XP       int    `gorm:"default:0" json:"xp"`
}

func (User) TableName() string {
	return "users"
}
